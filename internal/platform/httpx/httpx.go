// Package httpx reúne los helpers HTTP que comparten los handlers.
package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"vetclinic/internal/apperr"
	"vetclinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError traduce err con apperr.HTTPStatus. Los 5xx se loguean con la
// causa real; al cliente solo le llega el mensaje genérico.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"err":    err,
		})
	}
	http.Error(w, msg, status)
}

// PathID lee un parámetro de ruta entero. Cero o negativo no es un error
// de formato: el recurso simplemente no existe y el repositorio responde 404.
func PathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.BadRequest(name + " must be an integer")
	}
	return id, nil
}

// QueryInt64 lee un query param entero opcional; ausente o vacío => nil.
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperr.BadRequest(name + " must be an integer")
	}
	return &n, nil
}

// DecodeJSON decodifica el body. Las claves desconocidas se ignoran.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperr.BadRequest("invalid json")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest("invalid json: " + err.Error())
	}
	return nil
}
