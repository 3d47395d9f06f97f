package echoapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sistemaescolar/backend/core/nota"
)

func Test_notaApi_create(t *testing.T) {
	srv, db := setup(t)
	est := createEstudiante(t, db, "001", "Ana", "Diaz")
	createMateria(t, db, "MAT101", "Matemáticas", 4)

	t.Run("observacion defaults to null", func(t *testing.T) {
		body := []byte(fmt.Sprintf(`{"estudiante_id":%d,"materia_codigo":"MAT101","calificacion":95}`, est.ID))
		req, rec := newRequest(http.MethodPost, "/notas", body)
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp createNotaResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		assert.Equal(t, "Nota registrada", resp.Msg)
		assert.Equal(t, float64(95), resp.Data.Calificacion)
		assert.False(t, resp.Data.Observacion.Valid)

		raw := decodeBody(t, rec)
		assert.Nil(t, raw["data"].(map[string]interface{})["observacion"])
	})

	t.Run("zero is a legitimate score", func(t *testing.T) {
		body := []byte(fmt.Sprintf(`{"estudiante_id":%d,"materia_codigo":"MAT101","calificacion":0,"observacion":"no rindió"}`, est.ID))
		req, rec := newRequest(http.MethodPost, "/notas", body)
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp createNotaResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		assert.Equal(t, float64(0), resp.Data.Calificacion)
		assert.Equal(t, "no rindió", resp.Data.Observacion.String)
	})

	t.Run("missing calificacion performs no write", func(t *testing.T) {
		before := listDetalle(t, srv)

		tt := httpTest{
			method:   http.MethodPost,
			path:     "/notas",
			body:     []byte(fmt.Sprintf(`{"estudiante_id":%d,"materia_codigo":"MAT101"}`, est.ID)),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"msg":"Estudiante, materia y calificación son obligatorios"}`),
		}
		req, rec := newRequest(tt.method, tt.path, tt.body)
		srv.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)

		assert.Len(t, listDetalle(t, srv), len(before))
	})

	t.Run("unknown estudiante surfaces the constraint", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/notas", []byte(`{"estudiante_id":424242,"materia_codigo":"MAT101","calificacion":10}`))
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Contains(t, body, "error")
		assert.Contains(t, body["error"], "foreign key")
	})
}

func Test_notaApi_retrieve(t *testing.T) {
	srv, db := setup(t)
	est := createEstudiante(t, db, "001", "Ana", "Diaz")
	createMateria(t, db, "MAT101", "Matemáticas", 4)
	nt := createNota(t, db, est.ID, "MAT101", 88, "")

	t.Run("existing returns the bare row", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, fmt.Sprintf("/notas/%d", nt.ID))
		srv.ServeHTTP(rec, req)

		tt := httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, nt)}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("missing is the one explicit 404", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/notas/999999")
		srv.ServeHTTP(rec, req)

		tt := httpTest{wantCode: http.StatusNotFound, wantData: []byte(`{"msg":"Nota no encontrada"}`)}
		checkCodeAndData(t, tt, rec)
	})
}

func Test_notaApi_queryDetalle(t *testing.T) {
	srv, db := setup(t)
	ana := createEstudiante(t, db, "001", "Ana", "Diaz")
	luis := createEstudiante(t, db, "002", "Luis", "Vega")
	createMateria(t, db, "MAT101", "Matemáticas", 4)
	createMateria(t, db, "FIS201", "Física", 5)
	createNota(t, db, luis.ID, "FIS201", 70, "supletorio")
	createNota(t, db, ana.ID, "MAT101", 95, "")

	req, rec := newRequest(http.MethodGet, "/notas-detalle")
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var dets []nota.Detalle
	if err := json.Unmarshal(rec.Body.Bytes(), &dets); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(dets) != 2 {
		t.Fatalf("detalle rows = %d; want 2", len(dets))
	}

	// most recent grade first, student full name concatenated
	assert.True(t, dets[0].ID > dets[1].ID)
	assert.Equal(t, "Ana Diaz", dets[0].Estudiante)
	assert.Equal(t, "Matemáticas", dets[0].Materia)
	assert.Equal(t, float64(95), dets[0].Calificacion)
	assert.False(t, dets[0].Observacion.Valid)
	assert.Equal(t, "Luis Vega", dets[1].Estudiante)
	assert.Equal(t, "supletorio", dets[1].Observacion.String)
}

// Test_notaApi_scenario walks the registration flow end to end the way the
// front-end does: create the student over HTTP, grade them, read the report.
func Test_notaApi_scenario(t *testing.T) {
	srv, db := setup(t)
	createMateria(t, db, "MAT101", "Matemáticas", 4)

	req, rec := newRequest(http.MethodPost, "/estudiantes", []byte(`{"cedula":"001","nombre":"Ana","apellido":"Diaz"}`))
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var created createEstudianteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	assert.Equal(t, "Ana", created.Data.Nombre)

	body := []byte(fmt.Sprintf(`{"estudiante_id":%d,"materia_codigo":"MAT101","calificacion":95}`, created.Data.ID))
	req, rec = newRequest(http.MethodPost, "/notas", body)
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var graded createNotaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &graded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	assert.Equal(t, float64(95), graded.Data.Calificacion)

	dets := listDetalle(t, srv)
	if len(dets) == 0 {
		t.Fatal("detalle came back empty")
	}
	assert.Equal(t, "Ana Diaz", dets[0].Estudiante)
	assert.Equal(t, float64(95), dets[0].Calificacion)
}

func Test_notaApi_update(t *testing.T) {
	srv, db := setup(t)
	est := createEstudiante(t, db, "001", "Ana", "Diaz")
	createMateria(t, db, "MAT101", "Matemáticas", 4)
	nt := createNota(t, db, est.ID, "MAT101", 60, "")

	t.Run("existing row returned", func(t *testing.T) {
		body := []byte(fmt.Sprintf(`{"estudiante_id":%d,"materia_codigo":"MAT101","calificacion":75,"observacion":"recuperación"}`, est.ID))
		req, rec := newRequest(http.MethodPut, fmt.Sprintf("/notas/%d", nt.ID), body)
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body2 := decodeBody(t, rec)
		assert.Equal(t, "Nota actualizada", body2["msg"])
		updated := body2["nota"].(map[string]interface{})
		assert.Equal(t, float64(75), updated["calificacion"])
		assert.Equal(t, "recuperación", updated["observacion"])
	})

	t.Run("nonexistent id still succeeds without payload", func(t *testing.T) {
		body := []byte(fmt.Sprintf(`{"estudiante_id":%d,"materia_codigo":"MAT101","calificacion":75}`, est.ID))
		req, rec := newRequest(http.MethodPut, "/notas/999999", body)
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody(t, rec)
		assert.Equal(t, "Nota actualizada", resp["msg"])
		assert.NotContains(t, resp, "nota")
	})
}

func Test_notaApi_destroy(t *testing.T) {
	srv, db := setup(t)
	est := createEstudiante(t, db, "001", "Ana", "Diaz")
	createMateria(t, db, "MAT101", "Matemáticas", 4)
	nt := createNota(t, db, est.ID, "MAT101", 50, "")

	tests := []httpTest{
		{"existing", http.MethodDelete, fmt.Sprintf("/notas/%d", nt.ID), nil, http.StatusOK, []byte(`{"msg":"Nota eliminada"}`)},
		{"nonexistent gets the same answer", http.MethodDelete, "/notas/999999", nil, http.StatusOK, []byte(`{"msg":"Nota eliminada"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	assert.Len(t, listDetalle(t, srv), 0)
}

func listDetalle(t *testing.T, srv Server) []nota.Detalle {
	req, rec := newRequest(http.MethodGet, "/notas-detalle")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("listDetalle() failed: %v", rec.Body.String())
	}
	var dets []nota.Detalle
	if err := json.Unmarshal(rec.Body.Bytes(), &dets); err != nil {
		t.Fatalf("listDetalle() failed: %v", err)
	}
	return dets
}
