package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vetclinic/internal/domain/stats"
)

type StatsRepo struct {
	db *DB
}

func NewStatsRepo(db *DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Summary lanza las seis consultas sobre una sola conexión.
func (r *StatsRepo) Summary(ctx context.Context) (stats.Summary, error) {
	var s stats.Summary
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		counts := []struct {
			query string
			dest  *int64
		}{
			{`SELECT COUNT(*) FROM duenos`, &s.Owners},
			{`SELECT COUNT(*) FROM mascotas`, &s.Pets},
			{`SELECT COUNT(*) FROM citas`, &s.Appointments},
			{`SELECT COUNT(*) FROM citas WHERE DATE(fecha_hora) = CURRENT_DATE`, &s.AppointmentsToday},
			{`SELECT COUNT(*) FROM citas WHERE estado = 'programada' AND fecha_hora >= NOW()`, &s.Upcoming},
		}
		for _, c := range counts {
			if err := conn.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
				return err
			}
		}

		rows, err := conn.QueryContext(ctx, `
			SELECT especie, COUNT(*) AS total
			FROM mascotas
			GROUP BY especie
			ORDER BY total DESC, especie
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		s.BySpecies = make([]stats.SpeciesCount, 0)
		for rows.Next() {
			var c stats.SpeciesCount
			if err := rows.Scan(&c.Species, &c.Total); err != nil {
				return err
			}
			s.BySpecies = append(s.BySpecies, c)
		}
		return rows.Err()
	})
	if err != nil {
		return stats.Summary{}, fmt.Errorf("stats summary: %w", err)
	}
	return s, nil
}
