package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core"
	"github.com/sistemaescolar/backend/core/nota"
)

type notaRepository struct {
	db core.DBExecutor
}

var _ nota.Repository = (*notaRepository)(nil) // interface compliance check

func NewNotaRepository(db core.DBExecutor) *notaRepository {
	return &notaRepository{db: db}
}

func (repo notaRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return nota.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo notaRepository) CreateNota(ctx context.Context, nn nota.NuevaNota) (nota.Nota, error) {
	var nt nota.Nota
	err := repo.db.GetContext(
		ctx, &nt,
		`INSERT INTO notas (estudiante_id, materia_codigo, calificacion, observacion)
		 VALUES ($1, $2, $3, $4) RETURNING *`,
		nn.EstudianteID, nn.MateriaCodigo, nn.Calificacion, nn.Observacion,
	)
	if err != nil {
		return nota.Nota{}, errors.Wrap(err, "inserting nota")
	}
	return nt, nil
}

func (repo notaRepository) GetNotaByID(ctx context.Context, id int) (nota.Nota, error) {
	var nt nota.Nota
	err := repo.db.GetContext(ctx, &nt, `SELECT * FROM notas WHERE id = $1`, id)
	if err != nil {
		return nota.Nota{}, repo.trapNoRowsErr(err, "getting nota")
	}
	return nt, nil
}

func (repo notaRepository) QueryDetalle(ctx context.Context) ([]nota.Detalle, error) {
	dets := make([]nota.Detalle, 0)
	err := repo.db.SelectContext(
		ctx, &dets,
		`SELECT n.id,
		        e.nombre || ' ' || e.apellido AS estudiante,
		        a.nombre AS materia,
		        n.calificacion,
		        n.observacion
		 FROM notas n
		 JOIN estudiantes e ON n.estudiante_id = e.id
		 JOIN asignatura a ON n.materia_codigo = a.codigo
		 ORDER BY n.id DESC`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying notas detalle")
	}
	return dets, nil
}

func (repo notaRepository) UpdateNota(ctx context.Context, id int, an nota.ActualizarNota) (nota.Nota, error) {
	var nt nota.Nota
	err := repo.db.GetContext(
		ctx, &nt,
		`UPDATE notas
		 SET estudiante_id=$1, materia_codigo=$2, calificacion=$3, observacion=$4
		 WHERE id=$5 RETURNING *`,
		an.EstudianteID, an.MateriaCodigo, an.Calificacion, an.Observacion, id,
	)
	if err != nil {
		return nota.Nota{}, repo.trapNoRowsErr(err, "updating nota")
	}
	return nt, nil
}

func (repo notaRepository) DeleteNotaByID(ctx context.Context, id int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM notas WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "deleting nota")
	}
	return nil
}
