package nota

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("nota not found")

type (
	Repository interface {
		CreateNota(ctx context.Context, nn NuevaNota) (Nota, error)
		GetNotaByID(ctx context.Context, id int) (Nota, error)
		// QueryDetalle inner-joins notas with estudiantes and asignatura,
		// most recent grade first.
		QueryDetalle(ctx context.Context) ([]Detalle, error)
		UpdateNota(ctx context.Context, id int, an ActualizarNota) (Nota, error)
		DeleteNotaByID(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nn NuevaNota) (Nota, error) {
	return svc.repo.CreateNota(ctx, nn)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Nota, error) {
	return svc.repo.GetNotaByID(ctx, id)
}

func (svc *Service) QueryDetalle(ctx context.Context) ([]Detalle, error) {
	return svc.repo.QueryDetalle(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, an ActualizarNota) (Nota, error) {
	return svc.repo.UpdateNota(ctx, id, an)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteNotaByID(ctx, id)
}
