package stats

// SpeciesCount es una fila del reparto de mascotas por especie.
type SpeciesCount struct {
	Species string
	Total   int64
}

// Summary es el panel de indicadores de la clínica.
type Summary struct {
	Owners            int64
	Pets              int64
	Appointments      int64
	AppointmentsToday int64
	// Upcoming cuenta citas programadas con fecha_hora >= ahora.
	Upcoming  int64
	BySpecies []SpeciesCount
}
