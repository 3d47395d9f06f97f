package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/sistemaescolar/backend/core"
	"github.com/sistemaescolar/backend/core/estudiante"
	"github.com/sistemaescolar/backend/core/materia"
	"github.com/sistemaescolar/backend/core/nota"
	"github.com/sistemaescolar/backend/core/usuario"
	inmemdb "github.com/sistemaescolar/backend/storage/database/inmem"
)

// testLogger keeps handler error logs inside the test output.
type testLogger struct {
	t *testing.T
}

var _ core.Logger = (*testLogger)(nil)

func (l testLogger) Enable(bool) {}
func (l testLogger) Debug(msg string, args ...interface{}) { l.t.Logf("DEBUG: %s %v", msg, args) }
func (l testLogger) Info(msg string, args ...interface{}) { l.t.Logf("INFO: %s %v", msg, args) }
func (l testLogger) Warn(msg string, args ...interface{}) { l.t.Logf("WARN: %s %v", msg, args) }
func (l testLogger) Error(msg string, args ...interface{}) { l.t.Logf("ERROR: %s %v", msg, args) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.t.Fatalf("FATAL: %s %v", msg, args) }

func setup(t *testing.T) (Server, *inmemdb.DB) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)

	conf := &core.Config{TestMode: true}
	conf.Server.CORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

	srv := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         testLogger{t: t},
		UsuarioSvc:     usuario.NewService(inmemdb.NewUsuarioRepository(db)),
		MateriaSvc:     materia.NewService(inmemdb.NewMateriaRepository(db)),
		EstudianteSvc:  estudiante.NewService(inmemdb.NewEstudianteRepository(db)),
		NotaSvc:        nota.NewService(inmemdb.NewNotaRepository(db)),
		Validate:       validate,
		DisableReqLogs: true,
	})
	return srv, db
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

// decodeBody unmarshals the response into a generic map for key-presence checks.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decodeBody() failed: %v; body %s", err, rec.Body.String())
	}
	return body
}

// seed helpers going straight through the repositories

func createUsuario(t *testing.T, db *inmemdb.DB, cedula, nombre, clave string) usuario.Usuario {
	usr, err := inmemdb.NewUsuarioRepository(db).CreateUsuario(context.Background(), usuario.NuevoUsuario{
		Cedula: cedula,
		Nombre: nombre,
		Clave:  clave,
	})
	if err != nil {
		t.Fatalf("createUsuario() failed: %v", err)
	}
	return usr
}

func createEstudiante(t *testing.T, db *inmemdb.DB, cedula, nombre, apellido string) estudiante.Estudiante {
	est, err := inmemdb.NewEstudianteRepository(db).CreateEstudiante(context.Background(), estudiante.NuevoEstudiante{
		Cedula:   cedula,
		Nombre:   nombre,
		Apellido: apellido,
	})
	if err != nil {
		t.Fatalf("createEstudiante() failed: %v", err)
	}
	return est
}

func createMateria(t *testing.T, db *inmemdb.DB, codigo, nombre string, creditos int64) materia.Materia {
	nm := materia.NuevaMateria{}
	nm.Codigo.SetValid(codigo)
	nm.Nombre.SetValid(nombre)
	nm.Creditos.SetValid(int(creditos))
	mat, err := inmemdb.NewMateriaRepository(db).CreateMateria(context.Background(), nm)
	if err != nil {
		t.Fatalf("createMateria() failed: %v", err)
	}
	return mat
}

func createNota(t *testing.T, db *inmemdb.DB, estudianteID int, materiaCodigo string, calificacion float64, observacion string) nota.Nota {
	nn := nota.NuevaNota{
		EstudianteID:  estudianteID,
		MateriaCodigo: materiaCodigo,
		Calificacion:  &calificacion,
	}
	if observacion != "" {
		nn.Observacion.SetValid(observacion)
	}
	nt, err := inmemdb.NewNotaRepository(db).CreateNota(context.Background(), nn)
	if err != nil {
		t.Fatalf("createNota() failed: %v", err)
	}
	return nt
}
