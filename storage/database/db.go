package database

import (
	"context"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core"
)

// Open returns a pooled handle to the configured database. With TLS enabled
// we run under sslmode=require: the driver encrypts but accepts the server
// certificate without chain verification, which is what managed poolers with
// self-signed certs (the original deployment target) need.
func Open(conf *core.Config) (*sqlx.DB, error) {
	if conf.Database.URL != "" {
		return sqlx.Open(conf.Database.Engine, conf.Database.URL)
	}

	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.Database.Engine,
		User:     url.UserPassword(conf.Database.User, conf.Database.Password),
		Host:     conf.Database.Address(),
		Path:     conf.Database.Name,
		RawQuery: q.Encode(),
	}
	return sqlx.Open(conf.Database.Engine, u.String())
}

// Ping waits for the database to be ready. Waits 100ms longer between each attempt.
func Ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// Probe runs the startup connectivity check and returns the server clock,
// mirroring what operators are used to seeing in the startup logs.
func Probe(ctx context.Context, db *sqlx.DB) (time.Time, error) {
	var now time.Time
	if err := db.GetContext(ctx, &now, "SELECT NOW()"); err != nil {
		return time.Time{}, errors.Wrap(err, "probing database")
	}
	return now, nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		id     serial PRIMARY KEY,
		cedula text   NOT NULL UNIQUE,
		nombre text   NOT NULL,
		clave  text   NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS asignatura (
		codigo   text PRIMARY KEY,
		nombre   text NOT NULL,
		creditos integer
	)`,
	`CREATE TABLE IF NOT EXISTS estudiantes (
		id       serial PRIMARY KEY,
		cedula   text   NOT NULL,
		nombre   text   NOT NULL,
		apellido text   NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notas (
		id             serial  PRIMARY KEY,
		estudiante_id  integer NOT NULL REFERENCES estudiantes (id),
		materia_codigo text    NOT NULL REFERENCES asignatura (codigo),
		calificacion   numeric NOT NULL,
		observacion    text
	)`,
}

// CreateTablesIfNotExist bootstraps the four tables on a fresh database so the
// service can serve immediately. Not a migration tool: statements are
// idempotent DDL, nothing is versioned and nothing is ever altered.
func CreateTablesIfNotExist(db *sqlx.DB) error {
	for _, q := range schemaStatements {
		if _, err := db.Exec(q); err != nil {
			return errors.Wrap(err, "creating tables")
		}
	}
	return nil
}
