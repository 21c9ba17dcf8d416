package main

// @title Clínica Veterinaria API
// @version 1.0
// @description Gestión de dueños, mascotas y citas de una clínica veterinaria.
// @BasePath /
func main() {
	Execute()
}
