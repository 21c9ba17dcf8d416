package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vetclinic/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB es el pool compartido. Se crea una vez en serve y se pasa a cada repo.
type DB struct {
	sql *sql.DB
}

// Open abre un pool a Postgres usando pgx (database/sql) y lo verifica con un ping.
func Open(ctx context.Context, cfg config.DBConfig) (*DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &DB{sql: db}, nil
}

// WithConn reserva una conexión del pool para una unidad de trabajo y la
// devuelve al salir, también si fn entra en pánico.
func (d *DB) WithConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := d.sql.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

// Close cierra el pool. Admite un *DB nil.
func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// SQL expone el pool para el collector de métricas de Prometheus.
func (d *DB) SQL() *sql.DB {
	return d.sql
}
