package pets

import (
	"net/http"

	"vetclinic/internal/domain/appointments"
	"vetclinic/internal/platform/httpx"
	"vetclinic/internal/platform/validation"
	"vetclinic/internal/record"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service, v *validation.Validator) {
	r.Route("/mascotas", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc, v))

		pr.Get("/{id}", getPetHandler(svc))
		pr.Patch("/{id}", updatePetHandler(svc))
		pr.Delete("/{id}", deletePetHandler(svc))
	})
}

// createPetRequest es el cuerpo para registrar una mascota.
// dueno_id solo tiene que venir: si no existe, la alta responde 404.
type createPetRequest struct {
	OwnerID     *int64           `json:"dueno_id" validate:"required"`
	Name        string           `json:"nombre" validate:"required"`
	Species     string           `json:"especie" validate:"required" example:"perro"`
	Breed       *string          `json:"raza"`
	BirthDate   *record.Date     `json:"fecha_nac" swaggertype:"string" example:"2020-05-01"`
	WeightKg    *decimal.Decimal `json:"peso_kg" swaggertype:"number" example:"25.5"`
	MedicalInfo *MedicalInfo     `json:"info_medica"`
}

// PetResponse es la fila de mascotas tal como sale por la API.
// Se exporta porque la ficha del dueño anida sus mascotas.
type PetResponse struct {
	ID          int64            `json:"id"`
	OwnerID     int64            `json:"dueno_id"`
	Name        string           `json:"nombre"`
	Species     string           `json:"especie"`
	Breed       *string          `json:"raza"`
	BirthDate   *record.Date     `json:"fecha_nac" swaggertype:"string"`
	WeightKg    *float64         `json:"peso_kg"`
	MedicalInfo MedicalInfo      `json:"info_medica"`
	CreatedAt   record.Timestamp `json:"creado_en" swaggertype:"string"`
}

type petListingResponse struct {
	PetResponse
	OwnerName string `json:"nombre_dueno"`
}

type petDetailResponse struct {
	PetResponse
	OwnerName  string                             `json:"nombre_dueno"`
	OwnerPhone *string                            `json:"telefono_dueno"`
	History    []appointments.AppointmentResponse `json:"historial_citas"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista las mascotas con el nombre del dueño, de la más nueva a la más antigua.
// @Tags mascotas
// @Produce json
// @Param especie query string false "Filtra por especie (contiene, sin distinguir mayúsculas)"
// @Param dueno_id query int false "Filtra por dueño"
// @Success 200 {array} petListingResponse
// @Failure 400 {string} string "dueno_id inválido"
// @Failure 500 {string} string "internal error"
// @Router /mascotas [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := httpx.QueryInt64(r, "dueno_id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), ListFilter{
			Species: r.URL.Query().Get("especie"),
			OwnerID: ownerID,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, record.List(items, toListingResponse))
	}
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Registra una mascota. El dueño debe existir.
// @Tags mascotas
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} PetResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "El dueño especificado no existe"
// @Router /mascotas [post]
func createPetHandler(svc *Service, v *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if err := v.Validate(&req); err != nil {
			http.Error(w, v.Summary(err), http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			OwnerID:     *req.OwnerID,
			Name:        req.Name,
			Species:     req.Species,
			Breed:       req.Breed,
			BirthDate:   req.BirthDate,
			WeightKg:    req.WeightKg,
			MedicalInfo: req.MedicalInfo,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, ToPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Ficha de mascota
// @Description Devuelve la mascota con nombre y teléfono del dueño y su historial de citas (más recientes primero).
// @Tags mascotas
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} petDetailResponse
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "Mascota no encontrada"
// @Router /mascotas/{id} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		d, err := svc.Get(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, petDetailResponse{
			PetResponse: ToPetResponse(d.Pet),
			OwnerName:   d.OwnerName,
			OwnerPhone:  d.OwnerPhone,
			History:     record.List(d.History, appointments.ToAppointmentResponse),
		})
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Actualiza solo los campos enviados. Permitidos: nombre, raza, fecha_nac, peso_kg, info_medica. El resto de claves se ignora; si no queda ninguno devuelve la mascota sin cambios.
// @Tags mascotas
// @Accept json
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param payload body Patch true "Campos a cambiar"
// @Success 200 {object} PetResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "Mascota no encontrada"
// @Router /mascotas/{id} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		// Patch solo conoce columnas permitidas: cualquier otra clave se pierde aquí.
		var p Patch
		if err := httpx.DecodeJSON(r, &p); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, p)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToPetResponse(updated))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota y, en cascada, sus citas.
// @Tags mascotas
// @Param id path int true "ID de la mascota"
// @Success 204
// @Failure 404 {string} string "Mascota no encontrada"
// @Router /mascotas/{id} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ToPetResponse(p Pet) PetResponse {
	var weight *float64
	if p.WeightKg.Valid {
		f := p.WeightKg.Decimal.InexactFloat64()
		weight = &f
	}
	return PetResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		BirthDate:   p.BirthDate,
		WeightKg:    weight,
		MedicalInfo: p.MedicalInfo.normalized(),
		CreatedAt:   p.CreatedAt,
	}
}

func toListingResponse(l Listing) petListingResponse {
	return petListingResponse{
		PetResponse: ToPetResponse(l.Pet),
		OwnerName:   l.OwnerName,
	}
}
