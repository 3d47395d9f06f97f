package materia

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("materia not found")

type (
	Repository interface {
		CreateMateria(ctx context.Context, nm NuevaMateria) (Materia, error)
		QueryAllMaterias(ctx context.Context) ([]Materia, error)
		UpdateMateria(ctx context.Context, codigo string, am ActualizarMateria) (Materia, error)
		DeleteMateriaByCodigo(ctx context.Context, codigo string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nm NuevaMateria) (Materia, error) {
	return svc.repo.CreateMateria(ctx, nm)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Materia, error) {
	return svc.repo.QueryAllMaterias(ctx)
}

func (svc *Service) Update(ctx context.Context, codigo string, am ActualizarMateria) (Materia, error) {
	return svc.repo.UpdateMateria(ctx, codigo, am)
}

func (svc *Service) Delete(ctx context.Context, codigo string) error {
	return svc.repo.DeleteMateriaByCodigo(ctx, codigo)
}
