package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"vetclinic/internal/apperr"
	"vetclinic/internal/domain/appointments"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// serialID indica si id cabe en una columna SERIAL (int4). Fuera de ese
// rango ninguna fila puede coincidir y Postgres respondería 22003.
func serialID(id int64) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool     { return pgCode(err) == uniqueViolation }
func isForeignKeyViolation(err error) bool { return pgCode(err) == foreignKeyViolation }

// appointmentFKError elige el error según la constraint violada en citas.
func appointmentFKError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.Contains(pgErr.ConstraintName, "mascota") {
		return appointments.ErrPetMissing
	}
	return appointments.ErrOwnerMissing
}

// notFoundOr traduce sql.ErrNoRows al NotFound del recurso; el resto pasa tal cual.
func notFoundOr(err, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return err
}

// wrapUnlessApp añade contexto a errores de infraestructura. Los errores
// de apperr se devuelven tal cual: su mensaje es para el cliente.
func wrapUnlessApp(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

// execAffecting ejecuta un DELETE/UPDATE y devuelve notFound si no tocó filas.
func execAffecting(ctx context.Context, conn *sql.Conn, query string, notFound error, args ...any) error {
	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
