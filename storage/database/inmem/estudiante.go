package inmemdb

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core/estudiante"
)

type estudianteRepository struct {
	db *DB
}

var _ estudiante.Repository = (*estudianteRepository)(nil)

func NewEstudianteRepository(db *DB) *estudianteRepository {
	return &estudianteRepository{db: db}
}

func (repo estudianteRepository) CreateEstudiante(_ context.Context, ne estudiante.NuevoEstudiante) (estudiante.Estudiante, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.estudianteSeq++
	est := estudiante.Estudiante{
		ID:       repo.db.estudianteSeq,
		Cedula:   ne.Cedula,
		Nombre:   ne.Nombre,
		Apellido: ne.Apellido,
	}
	repo.db.estudiantes[est.ID] = est
	return est, nil
}

func (repo estudianteRepository) QueryAllEstudiantes(_ context.Context) ([]estudiante.Estudiante, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	ests := make([]estudiante.Estudiante, 0, len(repo.db.estudiantes))
	for _, est := range repo.db.estudiantes {
		ests = append(ests, est)
	}
	sort.Slice(ests, func(i, j int) bool { return ests[i].Apellido < ests[j].Apellido })
	return ests, nil
}

func (repo estudianteRepository) UpdateEstudiante(_ context.Context, id int, ae estudiante.ActualizarEstudiante) (estudiante.Estudiante, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	est, ok := repo.db.estudiantes[id]
	if !ok {
		return estudiante.Estudiante{}, estudiante.ErrNotFound
	}
	if ae.Cedula == nil || ae.Nombre == nil || ae.Apellido == nil {
		return estudiante.Estudiante{}, errors.New(`pq: null value in column "cedula" violates not-null constraint`)
	}
	est.Cedula, est.Nombre, est.Apellido = *ae.Cedula, *ae.Nombre, *ae.Apellido
	repo.db.estudiantes[id] = est
	return est, nil
}

func (repo estudianteRepository) DeleteEstudianteByID(_ context.Context, id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	delete(repo.db.estudiantes, id)
	return nil
}
