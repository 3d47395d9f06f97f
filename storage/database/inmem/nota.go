package inmemdb

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core/nota"
)

type notaRepository struct {
	db *DB
}

var _ nota.Repository = (*notaRepository)(nil)

func NewNotaRepository(db *DB) *notaRepository {
	return &notaRepository{db: db}
}

func (repo notaRepository) CreateNota(_ context.Context, nn nota.NuevaNota) (nota.Nota, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, ok := repo.db.estudiantes[nn.EstudianteID]; !ok {
		return nota.Nota{}, errors.New(`pq: insert or update on table "notas" violates foreign key constraint "notas_estudiante_id_fkey"`)
	}
	if _, ok := repo.db.materias[nn.MateriaCodigo]; !ok {
		return nota.Nota{}, errors.New(`pq: insert or update on table "notas" violates foreign key constraint "notas_materia_codigo_fkey"`)
	}
	if nn.Calificacion == nil {
		return nota.Nota{}, errors.New(`pq: null value in column "calificacion" violates not-null constraint`)
	}

	repo.db.notaSeq++
	nt := nota.Nota{
		ID:            repo.db.notaSeq,
		EstudianteID:  nn.EstudianteID,
		MateriaCodigo: nn.MateriaCodigo,
		Calificacion:  *nn.Calificacion,
		Observacion:   nn.Observacion,
	}
	repo.db.notas[nt.ID] = nt
	return nt, nil
}

func (repo notaRepository) GetNotaByID(_ context.Context, id int) (nota.Nota, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	nt, ok := repo.db.notas[id]
	if !ok {
		return nota.Nota{}, nota.ErrNotFound
	}
	return nt, nil
}

func (repo notaRepository) QueryDetalle(_ context.Context) ([]nota.Detalle, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	dets := make([]nota.Detalle, 0, len(repo.db.notas))
	for _, nt := range repo.db.notas {
		est, okE := repo.db.estudiantes[nt.EstudianteID]
		mat, okM := repo.db.materias[nt.MateriaCodigo]
		if !okE || !okM { // inner join semantics
			continue
		}
		dets = append(dets, nota.Detalle{
			ID:           nt.ID,
			Estudiante:   est.Nombre + " " + est.Apellido,
			Materia:      mat.Nombre,
			Calificacion: nt.Calificacion,
			Observacion:  nt.Observacion,
		})
	}
	sort.Slice(dets, func(i, j int) bool { return dets[i].ID > dets[j].ID })
	return dets, nil
}

func (repo notaRepository) UpdateNota(_ context.Context, id int, an nota.ActualizarNota) (nota.Nota, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	nt, ok := repo.db.notas[id]
	if !ok {
		return nota.Nota{}, nota.ErrNotFound
	}
	if an.EstudianteID == nil || an.MateriaCodigo == nil || an.Calificacion == nil {
		return nota.Nota{}, errors.New(`pq: null value in column "estudiante_id" violates not-null constraint`)
	}
	if _, ok := repo.db.estudiantes[*an.EstudianteID]; !ok {
		return nota.Nota{}, errors.New(`pq: insert or update on table "notas" violates foreign key constraint "notas_estudiante_id_fkey"`)
	}
	if _, ok := repo.db.materias[*an.MateriaCodigo]; !ok {
		return nota.Nota{}, errors.New(`pq: insert or update on table "notas" violates foreign key constraint "notas_materia_codigo_fkey"`)
	}
	nt.EstudianteID = *an.EstudianteID
	nt.MateriaCodigo = *an.MateriaCodigo
	nt.Calificacion = *an.Calificacion
	nt.Observacion = an.Observacion
	repo.db.notas[id] = nt
	return nt, nil
}

func (repo notaRepository) DeleteNotaByID(_ context.Context, id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	delete(repo.db.notas, id)
	return nil
}
