package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core/materia"
)

type materiaApi struct {
	svc *materia.Service
}

func registerMateriaAPI(e *echo.Echo, svc *materia.Service) {
	api := materiaApi{svc: svc}

	e.POST("/materias", api.create)
	e.GET("/materias", api.query)
	e.PUT("/materias/:codigo", api.update)
	e.DELETE("/materias/:codigo", api.destroy)
}

type createMateriaResponse struct {
	Msg     string          `json:"msg"`
	Materia materia.Materia `json:"materia"`
}

type updateMateriaResponse struct {
	Msg     string           `json:"msg"`
	Materia *materia.Materia `json:"materia,omitempty"`
}

// Handlers

func (api *materiaApi) create(ctx echo.Context) error {
	var data materia.NuevaMateria
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NuevaMateria")
	}

	mat, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating materia")
	}

	return ctx.JSON(http.StatusOK, createMateriaResponse{Msg: "Materia agregada", Materia: mat})
}

func (api *materiaApi) query(ctx echo.Context) error {
	mats, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying materias")
	}
	return ctx.JSON(http.StatusOK, mats)
}

func (api *materiaApi) update(ctx echo.Context) error {
	codigo := ctx.Param("codigo")
	var data materia.ActualizarMateria
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ActualizarMateria")
	}

	resp := updateMateriaResponse{Msg: "Materia actualizada"}
	mat, err := api.svc.Update(ctx.Request().Context(), codigo, data)
	switch {
	case err == nil:
		resp.Materia = &mat
	case errors.Cause(err) == materia.ErrNotFound:
	default:
		return errors.Wrap(err, "updating materia")
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (api *materiaApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("codigo")); err != nil {
		return errors.Wrap(err, "deleting materia")
	}
	return ctx.JSON(http.StatusOK, msgResponse{Msg: "Materia eliminada"})
}
