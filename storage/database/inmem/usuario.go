package inmemdb

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core/usuario"
)

type usuarioRepository struct {
	db *DB
}

var _ usuario.Repository = (*usuarioRepository)(nil)

func NewUsuarioRepository(db *DB) *usuarioRepository {
	return &usuarioRepository{db: db}
}

func (repo usuarioRepository) CreateUsuario(_ context.Context, nu usuario.NuevoUsuario) (usuario.Usuario, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for _, usr := range repo.db.usuarios {
		if usr.Cedula == nu.Cedula {
			return usuario.Usuario{}, errors.New(`pq: duplicate key value violates unique constraint "usuarios_cedula_key"`)
		}
	}

	repo.db.usuarioSeq++
	usr := usuario.Usuario{
		ID:     repo.db.usuarioSeq,
		Cedula: nu.Cedula,
		Nombre: nu.Nombre,
		Clave:  nu.Clave,
	}
	repo.db.usuarios[usr.ID] = usr
	return usr, nil
}

func (repo usuarioRepository) QueryAllUsuarios(_ context.Context) ([]usuario.Usuario, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	usrs := make([]usuario.Usuario, 0, len(repo.db.usuarios))
	for _, usr := range repo.db.usuarios {
		usrs = append(usrs, usr)
	}
	sort.Slice(usrs, func(i, j int) bool { return usrs[i].ID < usrs[j].ID })
	return usrs, nil
}

func (repo usuarioRepository) GetUsuarioByLogin(_ context.Context, cedula, clave string) (usuario.Usuario, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for _, usr := range repo.db.usuarios {
		if usr.Cedula == cedula && usr.Clave == clave {
			return usr, nil
		}
	}
	return usuario.Usuario{}, usuario.ErrNotFound
}

func (repo usuarioRepository) UpdateUsuario(_ context.Context, id int, au usuario.ActualizarUsuario) (usuario.Usuario, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	usr, ok := repo.db.usuarios[id]
	if !ok {
		return usuario.Usuario{}, usuario.ErrNotFound
	}
	if au.Cedula == nil || au.Nombre == nil || au.Clave == nil {
		return usuario.Usuario{}, errors.New(`pq: null value in column "cedula" violates not-null constraint`)
	}
	usr.Cedula, usr.Nombre, usr.Clave = *au.Cedula, *au.Nombre, *au.Clave
	repo.db.usuarios[id] = usr
	return usr, nil
}

func (repo usuarioRepository) DeleteUsuarioByID(_ context.Context, id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	delete(repo.db.usuarios, id)
	return nil
}
