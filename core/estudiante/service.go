package estudiante

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("estudiante not found")

type (
	Repository interface {
		CreateEstudiante(ctx context.Context, ne NuevoEstudiante) (Estudiante, error)
		// QueryAllEstudiantes returns listings ordered by family name.
		QueryAllEstudiantes(ctx context.Context) ([]Estudiante, error)
		UpdateEstudiante(ctx context.Context, id int, ae ActualizarEstudiante) (Estudiante, error)
		DeleteEstudianteByID(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ne NuevoEstudiante) (Estudiante, error) {
	return svc.repo.CreateEstudiante(ctx, ne)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Estudiante, error) {
	return svc.repo.QueryAllEstudiantes(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, ae ActualizarEstudiante) (Estudiante, error) {
	return svc.repo.UpdateEstudiante(ctx, id, ae)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteEstudianteByID(ctx, id)
}
