package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core"
	"github.com/sistemaescolar/backend/core/materia"
)

type materiaRepository struct {
	db core.DBExecutor
}

var _ materia.Repository = (*materiaRepository)(nil) // interface compliance check

func NewMateriaRepository(db core.DBExecutor) *materiaRepository {
	return &materiaRepository{db: db}
}

func (repo materiaRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return materia.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo materiaRepository) CreateMateria(ctx context.Context, nm materia.NuevaMateria) (materia.Materia, error) {
	var mat materia.Materia
	err := repo.db.GetContext(
		ctx, &mat,
		`INSERT INTO asignatura (codigo, nombre, creditos) VALUES ($1, $2, $3) RETURNING *`,
		nm.Codigo, nm.Nombre, nm.Creditos,
	)
	if err != nil {
		return materia.Materia{}, errors.Wrap(err, "inserting materia")
	}
	return mat, nil
}

func (repo materiaRepository) QueryAllMaterias(ctx context.Context) ([]materia.Materia, error) {
	mats := make([]materia.Materia, 0)
	err := repo.db.SelectContext(ctx, &mats, `SELECT * FROM asignatura ORDER BY nombre ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying materias")
	}
	return mats, nil
}

func (repo materiaRepository) UpdateMateria(ctx context.Context, codigo string, am materia.ActualizarMateria) (materia.Materia, error) {
	var mat materia.Materia
	err := repo.db.GetContext(
		ctx, &mat,
		`UPDATE asignatura SET nombre=$1, creditos=$2 WHERE codigo=$3 RETURNING *`,
		am.Nombre, am.Creditos, codigo,
	)
	if err != nil {
		return materia.Materia{}, repo.trapNoRowsErr(err, "updating materia")
	}
	return mat, nil
}

func (repo materiaRepository) DeleteMateriaByCodigo(ctx context.Context, codigo string) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM asignatura WHERE codigo = $1`, codigo); err != nil {
		return errors.Wrap(err, "deleting materia")
	}
	return nil
}
