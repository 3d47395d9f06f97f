// Package inmemdb provides map-backed repositories for handler tests: same
// interfaces, same observable behavior (orderings, not-found and constraint
// errors) as the Postgres repositories, no running database required.
package inmemdb

import (
	"sync"

	"github.com/sistemaescolar/backend/core/estudiante"
	"github.com/sistemaescolar/backend/core/materia"
	"github.com/sistemaescolar/backend/core/nota"
	"github.com/sistemaescolar/backend/core/usuario"
)

type DB struct {
	mu sync.Mutex

	usuarios   map[int]usuario.Usuario
	usuarioSeq int

	materias map[string]materia.Materia

	estudiantes   map[int]estudiante.Estudiante
	estudianteSeq int

	notas   map[int]nota.Nota
	notaSeq int
}

func Open() (*DB, error) {
	return &DB{
		usuarios:    make(map[int]usuario.Usuario),
		materias:    make(map[string]materia.Materia),
		estudiantes: make(map[int]estudiante.Estudiante),
		notas:       make(map[int]nota.Nota),
	}, nil
}
