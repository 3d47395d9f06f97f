package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core/estudiante"
)

type estudianteApi struct {
	svc      *estudiante.Service
	validate *validator.Validate
}

func registerEstudianteAPI(e *echo.Echo, svc *estudiante.Service, validate *validator.Validate) {
	api := estudianteApi{svc: svc, validate: validate}

	e.GET("/estudiantes", api.query)
	e.POST("/estudiantes", api.create)
	e.PUT("/estudiantes/:id", api.update)
	e.DELETE("/estudiantes/:id", api.destroy)
}

type createEstudianteResponse struct {
	Msg  string                `json:"msg"`
	Data estudiante.Estudiante `json:"data"`
}

type updateEstudianteResponse struct {
	Msg        string                 `json:"msg"`
	Estudiante *estudiante.Estudiante `json:"estudiante,omitempty"`
}

// Handlers

func (api *estudianteApi) query(ctx echo.Context) error {
	ests, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying estudiantes")
	}
	return ctx.JSON(http.StatusOK, ests)
}

func (api *estudianteApi) create(ctx echo.Context) error {
	var data estudiante.NuevoEstudiante
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NuevoEstudiante")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	est, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating estudiante")
	}

	return ctx.JSON(http.StatusOK, createEstudianteResponse{Msg: "Estudiante creado", Data: est})
}

func (api *estudianteApi) update(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "parsing estudiante id")
	}
	var data estudiante.ActualizarEstudiante
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ActualizarEstudiante")
	}

	resp := updateEstudianteResponse{Msg: "Estudiante actualizado"}
	est, err := api.svc.Update(ctx.Request().Context(), id, data)
	switch {
	case err == nil:
		resp.Estudiante = &est
	case errors.Cause(err) == estudiante.ErrNotFound:
	default:
		return errors.Wrap(err, "updating estudiante")
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (api *estudianteApi) destroy(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "parsing estudiante id")
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting estudiante")
	}
	return ctx.JSON(http.StatusOK, msgResponse{Msg: "Estudiante eliminado"})
}
