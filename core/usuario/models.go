package usuario

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core"
)

const msgCamposObligatorios = "Todos los campos son obligatorios"

// Usuario is a row of the "usuarios" table. Clave is stored and compared in
// plain text: that is the contract existing rows were written under, and
// hashing would make them unreadable without a migration. Known weakness.
type Usuario struct {
	ID     int    `json:"id" db:"id"`
	Cedula string `json:"cedula" db:"cedula"`
	Nombre string `json:"nombre" db:"nombre"`
	Clave  string `json:"clave,omitempty" db:"clave"`
}

// Sanitize strips the credential before the row goes out on the wire.
func (u *Usuario) Sanitize() {
	u.Clave = ""
}

type Credenciales struct {
	Cedula string `json:"cedula"`
	Clave  string `json:"clave"`
}

type NuevoUsuario struct {
	Cedula string `json:"cedula" validate:"required"`
	Nombre string `json:"nombre" validate:"required"`
	Clave  string `json:"clave" validate:"required"`
}

func (nu *NuevoUsuario) Validate(validate *validator.Validate) error {
	if err := validate.Struct(nu); err != nil {
		return core.NewValidationError(errors.New(msgCamposObligatorios))
	}
	return nil
}

// ActualizarUsuario replaces all mutable fields. Fields are pointers on
// purpose: an absent field becomes SQL NULL, exactly as the previous
// implementation sent it, and the database decides whether that flies.
type ActualizarUsuario struct {
	Cedula *string `json:"cedula"`
	Nombre *string `json:"nombre"`
	Clave  *string `json:"clave"`
}
