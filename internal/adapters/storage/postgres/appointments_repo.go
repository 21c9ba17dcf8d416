package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"vetclinic/internal/domain/appointments"
)

const (
	appointmentColumns       = `id, mascota_id, dueno_id, fecha_hora, motivo, estado, notas, datos_cita, creado_en`
	appointmentColumnsJoined = `c.id, c.mascota_id, c.dueno_id, c.fecha_hora, c.motivo, c.estado, c.notas, c.datos_cita, c.creado_en`
)

const appointmentListingSelect = `
	SELECT ` + appointmentColumnsJoined + `,
		m.nombre, m.especie, d.nombre, d.telefono
	FROM citas c
	JOIN mascotas m ON m.id = c.mascota_id
	JOIN duenos d ON d.id = c.dueno_id
`

type AppointmentsRepo struct {
	db *DB
}

func NewAppointmentsRepo(db *DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) List(ctx context.Context, filter appointments.ListFilter) ([]appointments.Listing, error) {
	if filter.PetID != nil && !serialID(*filter.PetID) {
		return []appointments.Listing{}, nil
	}
	sb := strings.Builder{}
	sb.WriteString(appointmentListingSelect)
	sb.WriteString(" WHERE 1=1")

	var args []any
	argN := 1

	if filter.Status != "" {
		sb.WriteString(" AND c.estado = $" + strconv.Itoa(argN))
		args = append(args, string(filter.Status))
		argN++
	}
	if filter.PetID != nil {
		sb.WriteString(" AND c.mascota_id = $" + strconv.Itoa(argN))
		args = append(args, *filter.PetID)
		argN++
	}

	sb.WriteString(" ORDER BY c.fecha_hora ASC")

	out, err := r.listings(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return out, nil
}

func (r *AppointmentsRepo) ListToday(ctx context.Context) ([]appointments.Listing, error) {
	out, err := r.listings(ctx, appointmentListingSelect+`
		WHERE DATE(c.fecha_hora) = CURRENT_DATE
		ORDER BY c.fecha_hora ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list today appointments: %w", err)
	}
	return out, nil
}

func (r *AppointmentsRepo) listings(ctx context.Context, query string, args ...any) ([]appointments.Listing, error) {
	out := make([]appointments.Listing, 0)
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var l appointments.Listing
			dest := append(appointmentDest(&l.Appointment), &l.PetName, &l.Species, &l.OwnerName, &l.OwnerPhone)
			if err := rows.Scan(dest...); err != nil {
				return err
			}
			out = append(out, l)
		}
		return rows.Err()
	})
	return out, err
}

// Create comprueba la mascota antes de insertar. La cita nace programada
// por el DEFAULT de la columna.
func (r *AppointmentsRepo) Create(ctx context.Context, in appointments.CreateInput) (appointments.Appointment, error) {
	if !serialID(in.PetID) {
		return appointments.Appointment{}, appointments.ErrPetMissing
	}
	if !serialID(in.OwnerID) {
		return appointments.Appointment{}, appointments.ErrOwnerMissing
	}
	details, err := jsonArg(in.Details)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}

	var a appointments.Appointment
	err = r.db.WithConn(ctx, func(conn *sql.Conn) error {
		ok, err := exists(ctx, conn, `SELECT EXISTS (SELECT 1 FROM mascotas WHERE id = $1)`, in.PetID)
		if err != nil {
			return err
		}
		if !ok {
			return appointments.ErrPetMissing
		}

		row := conn.QueryRowContext(ctx, `
			INSERT INTO citas (mascota_id, dueno_id, fecha_hora, motivo, notas, datos_cita)
			VALUES ($1, $2, $3, $4, $5, $6::jsonb)
			RETURNING `+appointmentColumns,
			in.PetID,
			in.OwnerID,
			in.ScheduledAt.Time,
			in.Reason,
			stringArg(in.Notes),
			details,
		)
		a, err = scanAppointment(row)
		return err
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return appointments.Appointment{}, appointmentFKError(err)
		}
		return appointments.Appointment{}, wrapUnlessApp(err, "create appointment")
	}
	return a, nil
}

func (r *AppointmentsRepo) SetStatus(ctx context.Context, id int64, status appointments.Status) (appointments.Appointment, error) {
	if !serialID(id) {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	var a appointments.Appointment
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx,
			`UPDATE citas SET estado = $1 WHERE id = $2 RETURNING `+appointmentColumns,
			string(status), id,
		)
		var err error
		a, err = scanAppointment(row)
		return notFoundOr(err, appointments.ErrNotFound)
	})
	if err != nil {
		return appointments.Appointment{}, wrapUnlessApp(err, "set appointment status")
	}
	return a, nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	if !serialID(id) {
		return appointments.ErrNotFound
	}
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		return execAffecting(ctx, conn, `DELETE FROM citas WHERE id = $1`, appointments.ErrNotFound, id)
	})
	return wrapUnlessApp(err, "delete appointment")
}

func appointmentDest(a *appointments.Appointment) []any {
	return []any{
		&a.ID,
		&a.PetID,
		&a.OwnerID,
		&a.ScheduledAt,
		&a.Reason,
		&a.Status,
		&a.Notes,
		&a.Details,
		&a.CreatedAt,
	}
}

func scanAppointment(s rowScanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	err := s.Scan(appointmentDest(&a)...)
	return a, err
}
