package appointments

import (
	"net/http"

	"vetclinic/internal/platform/httpx"
	"vetclinic/internal/platform/validation"
	"vetclinic/internal/record"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, v *validation.Validator) {
	r.Route("/citas", func(cr chi.Router) {
		cr.Get("/", listAppointmentsHandler(svc))
		cr.Get("/hoy", listTodayHandler(svc))
		cr.Post("/", createAppointmentHandler(svc, v))

		cr.Patch("/{id}/estado", setStatusHandler(svc))
		cr.Delete("/{id}", deleteAppointmentHandler(svc))
	})
}

// createAppointmentRequest es el cuerpo para agendar una cita.
// Los ids solo tienen que venir; su existencia la resuelve el repositorio.
type createAppointmentRequest struct {
	PetID       *int64               `json:"mascota_id" validate:"required"`
	OwnerID     *int64               `json:"dueno_id" validate:"required"`
	ScheduledAt *record.Timestamp    `json:"fecha_hora" validate:"required" swaggertype:"string" example:"2025-03-15T10:30:00"`
	Reason      string               `json:"motivo" validate:"required"`
	Notes       *string              `json:"notas"`
	Details     *ConsultationDetails `json:"datos_cita"`
}

// AppointmentResponse es la fila de citas tal como sale por la API.
// Se exporta porque la ficha de la mascota anida su historial.
type AppointmentResponse struct {
	ID          int64               `json:"id"`
	PetID       int64               `json:"mascota_id"`
	OwnerID     int64               `json:"dueno_id"`
	ScheduledAt record.Timestamp    `json:"fecha_hora" swaggertype:"string"`
	Reason      string              `json:"motivo"`
	Status      Status              `json:"estado" enums:"programada,completada,cancelada,no_asistio"`
	Notes       *string             `json:"notas"`
	Details     ConsultationDetails `json:"datos_cita"`
	CreatedAt   record.Timestamp    `json:"creado_en" swaggertype:"string"`
}

type listingResponse struct {
	AppointmentResponse
	PetName    string  `json:"nombre_mascota"`
	Species    string  `json:"especie"`
	OwnerName  string  `json:"nombre_dueno"`
	OwnerPhone *string `json:"telefono_dueno"`
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Description Lista las citas con datos de mascota y dueño, de la más próxima a la más lejana.
// @Tags citas
// @Produce json
// @Param estado query string false "Estado exacto" Enums(programada, completada, cancelada, no_asistio)
// @Param mascota_id query int false "Filtra por mascota"
// @Success 200 {array} listingResponse
// @Failure 400 {string} string "mascota_id inválido"
// @Router /citas [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := httpx.QueryInt64(r, "mascota_id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), ListFilter{
			Status: Status(r.URL.Query().Get("estado")),
			PetID:  petID,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, record.List(items, toListingResponse))
	}
}

// listTodayHandler godoc
// @Summary Citas de hoy
// @Description Agenda del día: citas cuya fecha es la de hoy, ordenadas por hora.
// @Tags citas
// @Produce json
// @Success 200 {array} listingResponse
// @Router /citas/hoy [get]
func listTodayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListToday(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, record.List(items, toListingResponse))
	}
}

// createAppointmentHandler godoc
// @Summary Agendar cita
// @Description Crea una cita en estado programada. La mascota debe existir.
// @Tags citas
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Datos de la cita"
// @Success 201 {object} AppointmentResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "La mascota no existe"
// @Router /citas [post]
func createAppointmentHandler(svc *Service, v *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if err := v.Validate(&req); err != nil {
			http.Error(w, v.Summary(err), http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PetID:       *req.PetID,
			OwnerID:     *req.OwnerID,
			ScheduledAt: *req.ScheduledAt,
			Reason:      req.Reason,
			Notes:       req.Notes,
			Details:     req.Details,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, ToAppointmentResponse(a))
	}
}

// setStatusHandler godoc
// @Summary Cambiar estado de una cita
// @Description Cambia solo el estado. Valores: programada, completada, cancelada, no_asistio.
// @Tags citas
// @Produce json
// @Param id path int true "ID de la cita"
// @Param nuevo_estado query string true "Nuevo estado" Enums(programada, completada, cancelada, no_asistio)
// @Success 200 {object} AppointmentResponse
// @Failure 400 {string} string "Estado no válido"
// @Failure 404 {string} string "Cita no encontrada"
// @Router /citas/{id}/estado [patch]
func setStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		a, err := svc.SetStatus(r.Context(), id, r.URL.Query().Get("nuevo_estado"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToAppointmentResponse(a))
	}
}

// deleteAppointmentHandler godoc
// @Summary Borrar cita
// @Tags citas
// @Param id path int true "ID de la cita"
// @Success 204
// @Failure 404 {string} string "Cita no encontrada"
// @Router /citas/{id} [delete]
func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
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

func ToAppointmentResponse(a Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		PetID:       a.PetID,
		OwnerID:     a.OwnerID,
		ScheduledAt: a.ScheduledAt,
		Reason:      a.Reason,
		Status:      a.Status,
		Notes:       a.Notes,
		Details:     a.Details.normalized(),
		CreatedAt:   a.CreatedAt,
	}
}

func toListingResponse(l Listing) listingResponse {
	return listingResponse{
		AppointmentResponse: ToAppointmentResponse(l.Appointment),
		PetName:             l.PetName,
		Species:             l.Species,
		OwnerName:           l.OwnerName,
		OwnerPhone:          l.OwnerPhone,
	}
}
