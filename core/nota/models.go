package nota

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/sistemaescolar/backend/core"
)

const msgCamposObligatorios = "Estudiante, materia y calificación son obligatorios"

// Nota references an estudiante by surrogate id and a materia by its code.
// Referential integrity is the database's job, not ours.
type Nota struct {
	ID            int         `json:"id" db:"id"`
	EstudianteID  int         `json:"estudiante_id" db:"estudiante_id"`
	MateriaCodigo string      `json:"materia_codigo" db:"materia_codigo"`
	Calificacion  float64     `json:"calificacion" db:"calificacion"`
	Observacion   null.String `json:"observacion" db:"observacion"`
}

// Detalle is the denormalized read model for the grade report: the student's
// full name and the course name joined onto each grade row.
type Detalle struct {
	ID           int         `json:"id" db:"id"`
	Estudiante   string      `json:"estudiante" db:"estudiante"`
	Materia      string      `json:"materia" db:"materia"`
	Calificacion float64     `json:"calificacion" db:"calificacion"`
	Observacion  null.String `json:"observacion" db:"observacion"`
}

// NuevaNota requires estudiante, materia and calificación; a zero score is a
// legitimate score, hence the pointer. Observación defaults to NULL.
type NuevaNota struct {
	EstudianteID  int         `json:"estudiante_id" validate:"required"`
	MateriaCodigo string      `json:"materia_codigo" validate:"required"`
	Calificacion  *float64    `json:"calificacion" validate:"required"`
	Observacion   null.String `json:"observacion"`
}

func (nn *NuevaNota) Validate(validate *validator.Validate) error {
	if err := validate.Struct(nn); err != nil {
		return core.NewValidationError(errors.New(msgCamposObligatorios))
	}
	return nil
}

// ActualizarNota is unvalidated like the original update; absent fields reach
// the database as NULL and its constraints have the last word.
type ActualizarNota struct {
	EstudianteID  *int        `json:"estudiante_id"`
	MateriaCodigo *string     `json:"materia_codigo"`
	Calificacion  *float64    `json:"calificacion"`
	Observacion   null.String `json:"observacion"`
}
