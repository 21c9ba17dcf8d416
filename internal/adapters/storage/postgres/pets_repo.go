package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"vetclinic/internal/domain/appointments"
	"vetclinic/internal/domain/pets"
)

const (
	petColumns       = `id, dueno_id, nombre, especie, raza, fecha_nac, peso_kg, info_medica, creado_en`
	petColumnsJoined = `m.id, m.dueno_id, m.nombre, m.especie, m.raza, m.fecha_nac, m.peso_kg, m.info_medica, m.creado_en`
)

// Columnas que un PATCH puede tocar. Cualquier otra queda fuera.
var (
	colPetName        = column{name: "nombre"}
	colPetBreed       = column{name: "raza"}
	colPetBirthDate   = column{name: "fecha_nac"}
	colPetWeight      = column{name: "peso_kg"}
	colPetMedicalInfo = column{name: "info_medica", cast: "::jsonb"}
)

type PetsRepo struct {
	db *DB
}

func NewPetsRepo(db *DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Listing, error) {
	if filter.OwnerID != nil && !serialID(*filter.OwnerID) {
		return []pets.Listing{}, nil
	}
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT ` + petColumnsJoined + `, d.nombre
		FROM mascotas m
		JOIN duenos d ON d.id = m.dueno_id
		WHERE 1=1
	`)

	var args []any
	argN := 1

	if filter.Species != "" {
		sb.WriteString(" AND m.especie ILIKE $" + strconv.Itoa(argN))
		args = append(args, "%"+filter.Species+"%")
		argN++
	}
	if filter.OwnerID != nil {
		sb.WriteString(" AND m.dueno_id = $" + strconv.Itoa(argN))
		args = append(args, *filter.OwnerID)
		argN++
	}

	sb.WriteString(" ORDER BY m.id DESC")

	out := make([]pets.Listing, 0)
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, sb.String(), args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var l pets.Listing
			if err := rows.Scan(append(petDest(&l.Pet), &l.OwnerName)...); err != nil {
				return err
			}
			out = append(out, l)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return out, nil
}

// Create comprueba el dueño en la misma conexión antes de insertar.
func (r *PetsRepo) Create(ctx context.Context, in pets.CreateInput) (pets.Pet, error) {
	if !serialID(in.OwnerID) {
		return pets.Pet{}, pets.ErrOwnerMissing
	}
	medical, err := jsonArg(in.MedicalInfo)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("create pet: %w", err)
	}

	var p pets.Pet
	err = r.db.WithConn(ctx, func(conn *sql.Conn) error {
		ok, err := exists(ctx, conn, `SELECT EXISTS (SELECT 1 FROM duenos WHERE id = $1)`, in.OwnerID)
		if err != nil {
			return err
		}
		if !ok {
			return pets.ErrOwnerMissing
		}

		row := conn.QueryRowContext(ctx, `
			INSERT INTO mascotas (dueno_id, nombre, especie, raza, fecha_nac, peso_kg, info_medica)
			VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
			RETURNING `+petColumns,
			in.OwnerID,
			in.Name,
			in.Species,
			stringArg(in.Breed),
			dateArg(in.BirthDate),
			decimalArg(in.WeightKg),
			medical,
		)
		p, err = scanPet(row)
		return err
	})
	if err != nil {
		// el dueño pudo borrarse entre el EXISTS y el INSERT
		if isForeignKeyViolation(err) {
			return pets.Pet{}, pets.ErrOwnerMissing
		}
		return pets.Pet{}, wrapUnlessApp(err, "create pet")
	}
	return p, nil
}

func (r *PetsRepo) Get(ctx context.Context, id int64) (pets.Detail, error) {
	if !serialID(id) {
		return pets.Detail{}, pets.ErrNotFound
	}
	var d pets.Detail
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, `
			SELECT `+petColumnsJoined+`, d.nombre, d.telefono
			FROM mascotas m
			JOIN duenos d ON d.id = m.dueno_id
			WHERE m.id = $1
		`, id)
		if err := row.Scan(append(petDest(&d.Pet), &d.OwnerName, &d.OwnerPhone)...); err != nil {
			return notFoundOr(err, pets.ErrNotFound)
		}

		rows, err := conn.QueryContext(ctx, `
			SELECT `+appointmentColumns+`
			FROM citas
			WHERE mascota_id = $1
			ORDER BY fecha_hora DESC
		`, id)
		if err != nil {
			return err
		}
		defer rows.Close()

		d.History = make([]appointments.Appointment, 0)
		for rows.Next() {
			a, err := scanAppointment(rows)
			if err != nil {
				return err
			}
			d.History = append(d.History, a)
		}
		return rows.Err()
	})
	if err != nil {
		return pets.Detail{}, wrapUnlessApp(err, "get pet")
	}
	return d, nil
}

// Update escribe solo las columnas presentes en el patch. Sin columnas,
// devuelve la fila actual.
func (r *PetsRepo) Update(ctx context.Context, id int64, p pets.Patch) (pets.Pet, error) {
	if !serialID(id) {
		return pets.Pet{}, pets.ErrNotFound
	}
	sets, err := petAssignments(p)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("update pet: %w", err)
	}

	var out pets.Pet
	err = r.db.WithConn(ctx, func(conn *sql.Conn) error {
		var row *sql.Row
		if len(sets) == 0 {
			row = conn.QueryRowContext(ctx, `SELECT `+petColumns+` FROM mascotas WHERE id = $1`, id)
		} else {
			query, args := buildUpdate("mascotas", id, sets, petColumns)
			row = conn.QueryRowContext(ctx, query, args...)
		}
		out, err = scanPet(row)
		return notFoundOr(err, pets.ErrNotFound)
	})
	if err != nil {
		return pets.Pet{}, wrapUnlessApp(err, "update pet")
	}
	return out, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	if !serialID(id) {
		return pets.ErrNotFound
	}
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		return execAffecting(ctx, conn, `DELETE FROM mascotas WHERE id = $1`, pets.ErrNotFound, id)
	})
	return wrapUnlessApp(err, "delete pet")
}

func petAssignments(p pets.Patch) ([]assignment, error) {
	var sets []assignment
	if p.Name.Set {
		sets = append(sets, assignment{col: colPetName, value: p.Name.Value})
	}
	if p.Breed.Set {
		sets = append(sets, assignment{col: colPetBreed, value: stringArg(p.Breed.Ptr())})
	}
	if p.BirthDate.Set {
		sets = append(sets, assignment{col: colPetBirthDate, value: dateArg(p.BirthDate.Ptr())})
	}
	if p.WeightKg.Set {
		sets = append(sets, assignment{col: colPetWeight, value: decimalArg(p.WeightKg.Ptr())})
	}
	if p.MedicalInfo.Set {
		v, err := jsonArg(p.MedicalInfo.Value)
		if err != nil {
			return nil, err
		}
		sets = append(sets, assignment{col: colPetMedicalInfo, value: v})
	}
	return sets, nil
}

func petDest(p *pets.Pet) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.BirthDate,
		&p.WeightKg,
		&p.MedicalInfo,
		&p.CreatedAt,
	}
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var p pets.Pet
	err := s.Scan(petDest(&p)...)
	return p, err
}

func exists(ctx context.Context, conn *sql.Conn, query string, args ...any) (bool, error) {
	var ok bool
	if err := conn.QueryRowContext(ctx, query, args...).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
