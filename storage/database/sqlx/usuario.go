package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core"
	"github.com/sistemaescolar/backend/core/usuario"
)

type usuarioRepository struct {
	db core.DBExecutor
}

var _ usuario.Repository = (*usuarioRepository)(nil) // interface compliance check

func NewUsuarioRepository(db core.DBExecutor) *usuarioRepository {
	return &usuarioRepository{db: db}
}

// trapNoRowsErr maps psql "no rows" err to usuario.ErrNotFound
func (repo usuarioRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return usuario.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo usuarioRepository) CreateUsuario(ctx context.Context, nu usuario.NuevoUsuario) (usuario.Usuario, error) {
	var usr usuario.Usuario
	err := repo.db.GetContext(
		ctx, &usr,
		`INSERT INTO usuarios (cedula, nombre, clave) VALUES ($1, $2, $3) RETURNING *`,
		nu.Cedula, nu.Nombre, nu.Clave,
	)
	if err != nil {
		return usuario.Usuario{}, errors.Wrap(err, "inserting usuario")
	}
	return usr, nil
}

func (repo usuarioRepository) QueryAllUsuarios(ctx context.Context) ([]usuario.Usuario, error) {
	usrs := make([]usuario.Usuario, 0)
	err := repo.db.SelectContext(ctx, &usrs, `SELECT * FROM usuarios ORDER BY id ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying usuarios")
	}
	return usrs, nil
}

func (repo usuarioRepository) GetUsuarioByLogin(ctx context.Context, cedula, clave string) (usuario.Usuario, error) {
	var usr usuario.Usuario
	err := repo.db.GetContext(
		ctx, &usr,
		`SELECT * FROM usuarios WHERE cedula = $1 AND clave = $2`,
		cedula, clave,
	)
	if err != nil {
		return usuario.Usuario{}, repo.trapNoRowsErr(err, "getting usuario by login")
	}
	return usr, nil
}

func (repo usuarioRepository) UpdateUsuario(ctx context.Context, id int, au usuario.ActualizarUsuario) (usuario.Usuario, error) {
	var usr usuario.Usuario
	err := repo.db.GetContext(
		ctx, &usr,
		`UPDATE usuarios SET cedula=$1, nombre=$2, clave=$3 WHERE id=$4 RETURNING *`,
		au.Cedula, au.Nombre, au.Clave, id,
	)
	if err != nil {
		return usuario.Usuario{}, repo.trapNoRowsErr(err, "updating usuario")
	}
	return usr, nil
}

func (repo usuarioRepository) DeleteUsuarioByID(ctx context.Context, id int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "deleting usuario")
	}
	return nil
}
