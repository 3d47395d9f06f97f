package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/sistemaescolar/backend/apps/api/echo"
	"github.com/sistemaescolar/backend/core"
	"github.com/sistemaescolar/backend/core/estudiante"
	"github.com/sistemaescolar/backend/core/materia"
	"github.com/sistemaescolar/backend/core/nota"
	"github.com/sistemaescolar/backend/core/usuario"
	logsvc "github.com/sistemaescolar/backend/services/logger"
	"github.com/sistemaescolar/backend/storage/database"
	sqlxrepos "github.com/sistemaescolar/backend/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			dbLogger.Error("Failed to close", err)
		}
	}()

	if err = database.Ping(db); err != nil {
		logger.Fatal(fmt.Sprintf("pinging database: %v", err), err)
	}

	// startup connectivity probe; failures are logged, not fatal — the pool
	// retries per request and the operator sees why requests 500 meanwhile
	if now, err := database.Probe(context.Background(), db); err != nil {
		dbLogger.Error(fmt.Sprintf("database probe failed: %v", err), err)
	} else {
		dbLogger.Info(fmt.Sprintf("database connection OK, server time %v", now))
	}

	if err = database.CreateTablesIfNotExist(db); err != nil {
		logger.Fatal(fmt.Sprintf("bootstrapping tables: %v", err), err)
	}

	// set up services
	usrSvc := usuario.NewService(sqlxrepos.NewUsuarioRepository(db))
	matSvc := materia.NewService(sqlxrepos.NewMateriaRepository(db))
	estSvc := estudiante.NewService(sqlxrepos.NewEstudianteRepository(db))
	notaSvc := nota.NewService(sqlxrepos.NewNotaRepository(db))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	core.InitValidators(validate, newTranslator())

	// =========================================================================
	// Start Debug Service
	//
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	if conf.Debug {
		go func() {
			if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
				logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
			}
		}()
	}

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			UsuarioSvc:    usrSvc,
			MateriaSvc:    matSvc,
			EstudianteSvc: estSvc,
			NotaSvc:       notaSvc,
			Validate:      validate,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
