package stats

import (
	"net/http"

	"vetclinic/internal/platform/httpx"
	"vetclinic/internal/record"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/estadisticas", getStatsHandler(svc))
}

type speciesCountResponse struct {
	Species string `json:"especie"`
	Total   int64  `json:"total"`
}

type summaryResponse struct {
	Owners            int64                  `json:"total_duenos"`
	Pets              int64                  `json:"total_mascotas"`
	Appointments      int64                  `json:"total_citas"`
	AppointmentsToday int64                  `json:"citas_hoy"`
	Upcoming          int64                  `json:"proximas_citas"`
	BySpecies         []speciesCountResponse `json:"mascotas_por_especie"`
}

// getStatsHandler godoc
// @Summary Estadísticas
// @Description Totales de dueños, mascotas y citas; citas de hoy; próximas citas programadas; mascotas por especie.
// @Tags estadisticas
// @Produce json
// @Success 200 {object} summaryResponse
// @Failure 500 {string} string "internal error"
// @Router /estadisticas [get]
func getStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Get(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, summaryResponse{
			Owners:            sum.Owners,
			Pets:              sum.Pets,
			Appointments:      sum.Appointments,
			AppointmentsToday: sum.AppointmentsToday,
			Upcoming:          sum.Upcoming,
			BySpecies: record.List(sum.BySpecies, func(c SpeciesCount) speciesCountResponse {
				return speciesCountResponse{Species: c.Species, Total: c.Total}
			}),
		})
	}
}
