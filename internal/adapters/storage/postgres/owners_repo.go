package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vetclinic/internal/domain/owners"
	"vetclinic/internal/domain/pets"
)

const ownerColumns = `id, nombre, email, telefono, direccion, info_contacto, creado_en`

var (
	colOwnerName        = column{name: "nombre"}
	colOwnerEmail       = column{name: "email"}
	colOwnerPhone       = column{name: "telefono"}
	colOwnerAddress     = column{name: "direccion"}
	colOwnerContactInfo = column{name: "info_contacto", cast: "::jsonb"}
)

type OwnersRepo struct {
	db *DB
}

func NewOwnersRepo(db *DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) List(ctx context.Context, search string) ([]owners.Owner, error) {
	out := make([]owners.Owner, 0)
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		query := `SELECT ` + ownerColumns + ` FROM duenos ORDER BY id DESC`
		var args []any
		if search != "" {
			query = `SELECT ` + ownerColumns + ` FROM duenos
				WHERE nombre ILIKE $1 OR email ILIKE $1
				ORDER BY id DESC`
			args = append(args, "%"+search+"%")
		}

		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			o, err := scanOwner(rows)
			if err != nil {
				return err
			}
			out = append(out, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	return out, nil
}

func (r *OwnersRepo) Create(ctx context.Context, in owners.CreateInput) (owners.Owner, error) {
	var o owners.Owner
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		contact, err := jsonArg(in.ContactInfo)
		if err != nil {
			return err
		}

		row := conn.QueryRowContext(ctx, `
			INSERT INTO duenos (nombre, email, telefono, direccion, info_contacto)
			VALUES ($1, $2, $3, $4, $5::jsonb)
			RETURNING `+ownerColumns,
			in.Name,
			in.Email,
			stringArg(in.Phone),
			stringArg(in.Address),
			contact,
		)
		o, err = scanOwner(row)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return owners.Owner{}, owners.ErrDuplicateEmail
		}
		return owners.Owner{}, fmt.Errorf("create owner: %w", err)
	}
	return o, nil
}

func (r *OwnersRepo) Get(ctx context.Context, id int64) (owners.Detail, error) {
	if !serialID(id) {
		return owners.Detail{}, owners.ErrNotFound
	}
	var d owners.Detail
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, `SELECT `+ownerColumns+` FROM duenos WHERE id = $1`, id)
		o, err := scanOwner(row)
		if err != nil {
			return notFoundOr(err, owners.ErrNotFound)
		}
		d.Owner = o

		rows, err := conn.QueryContext(ctx, `
			SELECT `+petColumns+`
			FROM mascotas
			WHERE dueno_id = $1
			ORDER BY id ASC
		`, id)
		if err != nil {
			return err
		}
		defer rows.Close()

		d.Pets = make([]pets.Pet, 0)
		for rows.Next() {
			p, err := scanPet(rows)
			if err != nil {
				return err
			}
			d.Pets = append(d.Pets, p)
		}
		return rows.Err()
	})
	if err != nil {
		return owners.Detail{}, wrapUnlessApp(err, "get owner")
	}
	return d, nil
}

func (r *OwnersRepo) Update(ctx context.Context, id int64, p owners.Patch) (owners.Owner, error) {
	if !serialID(id) {
		return owners.Owner{}, owners.ErrNotFound
	}
	sets, err := ownerAssignments(p)
	if err != nil {
		return owners.Owner{}, fmt.Errorf("update owner: %w", err)
	}

	var o owners.Owner
	err = r.db.WithConn(ctx, func(conn *sql.Conn) error {
		var row *sql.Row
		if len(sets) == 0 {
			row = conn.QueryRowContext(ctx, `SELECT `+ownerColumns+` FROM duenos WHERE id = $1`, id)
		} else {
			query, args := buildUpdate("duenos", id, sets, ownerColumns)
			row = conn.QueryRowContext(ctx, query, args...)
		}
		o, err = scanOwner(row)
		return notFoundOr(err, owners.ErrNotFound)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return owners.Owner{}, owners.ErrDuplicateEmail
		}
		return owners.Owner{}, wrapUnlessApp(err, "update owner")
	}
	return o, nil
}

func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	if !serialID(id) {
		return owners.ErrNotFound
	}
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		return execAffecting(ctx, conn, `DELETE FROM duenos WHERE id = $1`, owners.ErrNotFound, id)
	})
	return wrapUnlessApp(err, "delete owner")
}

func ownerAssignments(p owners.Patch) ([]assignment, error) {
	var sets []assignment
	if p.Name.Set {
		sets = append(sets, assignment{col: colOwnerName, value: p.Name.Value})
	}
	if p.Email.Set {
		sets = append(sets, assignment{col: colOwnerEmail, value: p.Email.Value})
	}
	if p.Phone.Set {
		sets = append(sets, assignment{col: colOwnerPhone, value: stringArg(p.Phone.Ptr())})
	}
	if p.Address.Set {
		sets = append(sets, assignment{col: colOwnerAddress, value: stringArg(p.Address.Ptr())})
	}
	if p.ContactInfo.Set {
		v, err := jsonArg(p.ContactInfo.Value)
		if err != nil {
			return nil, err
		}
		sets = append(sets, assignment{col: colOwnerContactInfo, value: v})
	}
	return sets, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOwner(s rowScanner) (owners.Owner, error) {
	var o owners.Owner
	err := s.Scan(
		&o.ID,
		&o.Name,
		&o.Email,
		&o.Phone,
		&o.Address,
		&o.ContactInfo,
		&o.CreatedAt,
	)
	return o, err
}
