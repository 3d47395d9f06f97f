package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core/nota"
)

var errNotaNotFound = echo.NewHTTPError(http.StatusNotFound, "Nota no encontrada")

type notaApi struct {
	svc      *nota.Service
	validate *validator.Validate
}

func registerNotaAPI(e *echo.Echo, svc *nota.Service, validate *validator.Validate) {
	api := notaApi{svc: svc, validate: validate}

	e.GET("/notas-detalle", api.queryDetalle)
	e.GET("/notas/:id", api.retrieve)
	e.POST("/notas", api.create)
	e.PUT("/notas/:id", api.update)
	e.DELETE("/notas/:id", api.destroy)
}

type createNotaResponse struct {
	Msg  string    `json:"msg"`
	Data nota.Nota `json:"data"`
}

type updateNotaResponse struct {
	Msg  string     `json:"msg"`
	Nota *nota.Nota `json:"nota,omitempty"`
}

// Handlers

func (api *notaApi) queryDetalle(ctx echo.Context) error {
	dets, err := api.svc.QueryDetalle(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying notas detalle")
	}
	return ctx.JSON(http.StatusOK, dets)
}

// retrieve is the one handler that reports a missing row explicitly; the
// front-end edit form depends on the 404.
func (api *notaApi) retrieve(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "parsing nota id")
	}

	nt, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == nota.ErrNotFound {
			return errNotaNotFound
		}
		return errors.Wrap(err, "getting nota")
	}
	return ctx.JSON(http.StatusOK, nt)
}

func (api *notaApi) create(ctx echo.Context) error {
	var data nota.NuevaNota
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NuevaNota")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	nt, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating nota")
	}

	return ctx.JSON(http.StatusOK, createNotaResponse{Msg: "Nota registrada", Data: nt})
}

func (api *notaApi) update(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "parsing nota id")
	}
	var data nota.ActualizarNota
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ActualizarNota")
	}

	resp := updateNotaResponse{Msg: "Nota actualizada"}
	nt, err := api.svc.Update(ctx.Request().Context(), id, data)
	switch {
	case err == nil:
		resp.Nota = &nt
	case errors.Cause(err) == nota.ErrNotFound:
	default:
		return errors.Wrap(err, "updating nota")
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (api *notaApi) destroy(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "parsing nota id")
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting nota")
	}
	return ctx.JSON(http.StatusOK, msgResponse{Msg: "Nota eliminada"})
}
