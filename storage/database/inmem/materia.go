package inmemdb

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core/materia"
)

type materiaRepository struct {
	db *DB
}

var _ materia.Repository = (*materiaRepository)(nil)

func NewMateriaRepository(db *DB) *materiaRepository {
	return &materiaRepository{db: db}
}

func (repo materiaRepository) CreateMateria(_ context.Context, nm materia.NuevaMateria) (materia.Materia, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if !nm.Codigo.Valid {
		return materia.Materia{}, errors.New(`pq: null value in column "codigo" violates not-null constraint`)
	}
	if !nm.Nombre.Valid {
		return materia.Materia{}, errors.New(`pq: null value in column "nombre" violates not-null constraint`)
	}
	if _, ok := repo.db.materias[nm.Codigo.String]; ok {
		return materia.Materia{}, errors.New(`pq: duplicate key value violates unique constraint "asignatura_pkey"`)
	}

	mat := materia.Materia{
		Codigo:   nm.Codigo.String,
		Nombre:   nm.Nombre.String,
		Creditos: nm.Creditos,
	}
	repo.db.materias[mat.Codigo] = mat
	return mat, nil
}

func (repo materiaRepository) QueryAllMaterias(_ context.Context) ([]materia.Materia, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	mats := make([]materia.Materia, 0, len(repo.db.materias))
	for _, mat := range repo.db.materias {
		mats = append(mats, mat)
	}
	sort.Slice(mats, func(i, j int) bool { return mats[i].Nombre < mats[j].Nombre })
	return mats, nil
}

func (repo materiaRepository) UpdateMateria(_ context.Context, codigo string, am materia.ActualizarMateria) (materia.Materia, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	mat, ok := repo.db.materias[codigo]
	if !ok {
		return materia.Materia{}, materia.ErrNotFound
	}
	if !am.Nombre.Valid {
		return materia.Materia{}, errors.New(`pq: null value in column "nombre" violates not-null constraint`)
	}
	mat.Nombre = am.Nombre.String
	mat.Creditos = am.Creditos
	repo.db.materias[codigo] = mat
	return mat, nil
}

func (repo materiaRepository) DeleteMateriaByCodigo(_ context.Context, codigo string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	delete(repo.db.materias, codigo)
	return nil
}
