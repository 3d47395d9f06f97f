package estudiante

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core"
)

const msgCamposObligatorios = "Todos los campos son obligatorios"

type Estudiante struct {
	ID       int    `json:"id" db:"id"`
	Cedula   string `json:"cedula" db:"cedula"`
	Nombre   string `json:"nombre" db:"nombre"`
	Apellido string `json:"apellido" db:"apellido"`
}

type NuevoEstudiante struct {
	Cedula   string `json:"cedula" validate:"required"`
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
}

func (ne *NuevoEstudiante) Validate(validate *validator.Validate) error {
	if err := validate.Struct(ne); err != nil {
		return core.NewValidationError(errors.New(msgCamposObligatorios))
	}
	return nil
}

type ActualizarEstudiante struct {
	Cedula   *string `json:"cedula"`
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
}
