package owners

import (
	"net/http"

	"vetclinic/internal/domain/pets"
	"vetclinic/internal/platform/httpx"
	"vetclinic/internal/platform/validation"
	"vetclinic/internal/record"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, v *validation.Validator) {
	r.Route("/duenos", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc, v))

		or.Get("/{id}", getOwnerHandler(svc))
		or.Patch("/{id}", updateOwnerHandler(svc))
		or.Delete("/{id}", deleteOwnerHandler(svc))
	})
}

// createOwnerRequest es el cuerpo para dar de alta un dueño.
type createOwnerRequest struct {
	Name        string       `json:"nombre" validate:"required"`
	Email       string       `json:"email" validate:"required,email"`
	Phone       *string      `json:"telefono"`
	Address     *string      `json:"direccion"`
	ContactInfo *ContactInfo `json:"info_contacto"`
}

type ownerResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"nombre"`
	Email       string           `json:"email"`
	Phone       *string          `json:"telefono"`
	Address     *string          `json:"direccion"`
	ContactInfo ContactInfo      `json:"info_contacto"`
	CreatedAt   record.Timestamp `json:"creado_en" swaggertype:"string"`
}

type ownerDetailResponse struct {
	ownerResponse
	Pets []pets.PetResponse `json:"mascotas"`
}

// listOwnersHandler godoc
// @Summary Listar dueños
// @Description Lista los dueños del más nuevo al más antiguo. buscar filtra por nombre o email (contiene, sin distinguir mayúsculas).
// @Tags duenos
// @Produce json
// @Param buscar query string false "Texto a buscar en nombre o email"
// @Success 200 {array} ownerResponse
// @Failure 500 {string} string "internal error"
// @Router /duenos [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("buscar"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, record.List(items, toOwnerResponse))
	}
}

// createOwnerHandler godoc
// @Summary Registrar dueño
// @Description Da de alta un dueño. El email debe ser único.
// @Tags duenos
// @Accept json
// @Produce json
// @Param payload body createOwnerRequest true "Datos del dueño"
// @Success 201 {object} ownerResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 409 {string} string "Ya existe un dueño registrado con ese email"
// @Router /duenos [post]
func createOwnerHandler(svc *Service, v *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if err := v.Validate(&req); err != nil {
			http.Error(w, v.Summary(err), http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			Address:     req.Address,
			ContactInfo: req.ContactInfo,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// getOwnerHandler godoc
// @Summary Ficha de dueño
// @Description Devuelve el dueño con sus mascotas.
// @Tags duenos
// @Produce json
// @Param id path int true "ID del dueño"
// @Success 200 {object} ownerDetailResponse
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "Dueño no encontrado"
// @Router /duenos/{id} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
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

		httpx.WriteJSON(w, http.StatusOK, ownerDetailResponse{
			ownerResponse: toOwnerResponse(d.Owner),
			Pets:          record.List(d.Pets, pets.ToPetResponse),
		})
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar dueño
// @Description Actualiza solo los campos enviados: nombre, email, telefono, direccion, info_contacto.
// @Tags duenos
// @Accept json
// @Produce json
// @Param id path int true "ID del dueño"
// @Param payload body Patch true "Campos a cambiar"
// @Success 200 {object} ownerResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "Dueño no encontrado"
// @Failure 409 {string} string "Ya existe un dueño registrado con ese email"
// @Router /duenos/{id} [patch]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

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

		httpx.WriteJSON(w, http.StatusOK, toOwnerResponse(updated))
	}
}

// deleteOwnerHandler godoc
// @Summary Borrar dueño
// @Description Borra el dueño y, en cascada, sus mascotas y citas.
// @Tags duenos
// @Param id path int true "ID del dueño"
// @Success 204
// @Failure 404 {string} string "Dueño no encontrado"
// @Router /duenos/{id} [delete]
func deleteOwnerHandler(svc *Service) http.HandlerFunc {
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

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:          o.ID,
		Name:        o.Name,
		Email:       o.Email,
		Phone:       o.Phone,
		Address:     o.Address,
		ContactInfo: o.ContactInfo,
		CreatedAt:   o.CreatedAt,
	}
}
