package usuario

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("usuario not found")

type (
	Repository interface {
		CreateUsuario(ctx context.Context, nu NuevoUsuario) (Usuario, error)
		QueryAllUsuarios(ctx context.Context) ([]Usuario, error)
		// GetUsuarioByLogin matches cedula AND clave in a single lookup so an
		// unknown cedula and a wrong clave are indistinguishable to the caller.
		GetUsuarioByLogin(ctx context.Context, cedula, clave string) (Usuario, error)
		UpdateUsuario(ctx context.Context, id int, au ActualizarUsuario) (Usuario, error)
		DeleteUsuarioByID(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Login(ctx context.Context, creds Credenciales) (Usuario, error) {
	return svc.repo.GetUsuarioByLogin(ctx, creds.Cedula, creds.Clave)
}

func (svc *Service) Create(ctx context.Context, nu NuevoUsuario) (Usuario, error) {
	return svc.repo.CreateUsuario(ctx, nu)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Usuario, error) {
	return svc.repo.QueryAllUsuarios(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, au ActualizarUsuario) (Usuario, error) {
	return svc.repo.UpdateUsuario(ctx, id, au)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteUsuarioByID(ctx, id)
}
