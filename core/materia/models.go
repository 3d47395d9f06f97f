package materia

import (
	"github.com/volatiletech/null/v8"
)

// Materia is a row of the "asignatura" table; the course code is the natural
// key and is what update/delete endpoints are addressed by.
type Materia struct {
	Codigo   string   `json:"codigo" db:"codigo"`
	Nombre   string   `json:"nombre" db:"nombre"`
	Creditos null.Int `json:"creditos" db:"creditos"`
}

// NuevaMateria carries the create payload as-is; there is deliberately no
// presence validation here — the existing contract inserts whatever arrives
// and lets the table constraints answer.
type NuevaMateria struct {
	Codigo   null.String `json:"codigo"`
	Nombre   null.String `json:"nombre"`
	Creditos null.Int    `json:"creditos"`
}

type ActualizarMateria struct {
	Nombre   null.String `json:"nombre"`
	Creditos null.Int    `json:"creditos"`
}
