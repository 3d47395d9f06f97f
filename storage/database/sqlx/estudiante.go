package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core"
	"github.com/sistemaescolar/backend/core/estudiante"
)

type estudianteRepository struct {
	db core.DBExecutor
}

var _ estudiante.Repository = (*estudianteRepository)(nil) // interface compliance check

func NewEstudianteRepository(db core.DBExecutor) *estudianteRepository {
	return &estudianteRepository{db: db}
}

func (repo estudianteRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return estudiante.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo estudianteRepository) CreateEstudiante(ctx context.Context, ne estudiante.NuevoEstudiante) (estudiante.Estudiante, error) {
	var est estudiante.Estudiante
	err := repo.db.GetContext(
		ctx, &est,
		`INSERT INTO estudiantes (cedula, nombre, apellido) VALUES ($1, $2, $3) RETURNING *`,
		ne.Cedula, ne.Nombre, ne.Apellido,
	)
	if err != nil {
		return estudiante.Estudiante{}, errors.Wrap(err, "inserting estudiante")
	}
	return est, nil
}

func (repo estudianteRepository) QueryAllEstudiantes(ctx context.Context) ([]estudiante.Estudiante, error) {
	ests := make([]estudiante.Estudiante, 0)
	err := repo.db.SelectContext(ctx, &ests, `SELECT * FROM estudiantes ORDER BY apellido ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying estudiantes")
	}
	return ests, nil
}

func (repo estudianteRepository) UpdateEstudiante(ctx context.Context, id int, ae estudiante.ActualizarEstudiante) (estudiante.Estudiante, error) {
	var est estudiante.Estudiante
	err := repo.db.GetContext(
		ctx, &est,
		`UPDATE estudiantes SET cedula=$1, nombre=$2, apellido=$3 WHERE id=$4 RETURNING *`,
		ae.Cedula, ae.Nombre, ae.Apellido, id,
	)
	if err != nil {
		return estudiante.Estudiante{}, repo.trapNoRowsErr(err, "updating estudiante")
	}
	return est, nil
}

func (repo estudianteRepository) DeleteEstudianteByID(ctx context.Context, id int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM estudiantes WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "deleting estudiante")
	}
	return nil
}
