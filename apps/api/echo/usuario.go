package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core/usuario"
)

var errBadCredentials = echo.NewHTTPError(http.StatusUnauthorized, "Cédula o contraseña incorrecta")

// msgResponse is the bare success envelope shared by the delete handlers.
type msgResponse struct {
	Msg string `json:"msg"`
}

type usuarioApi struct {
	svc      *usuario.Service
	validate *validator.Validate
}

func registerUsuarioAPI(e *echo.Echo, svc *usuario.Service, validate *validator.Validate) {
	api := usuarioApi{svc: svc, validate: validate}

	e.POST("/login", api.login)
	e.POST("/usuarios", api.create)
	e.GET("/usuarios", api.query)
	e.PUT("/usuarios/:id", api.update)
	e.DELETE("/usuarios/:id", api.destroy)
}

type loginResponse struct {
	Msg     string          `json:"msg"`
	Usuario usuario.Usuario `json:"usuario"`
}

type createUsuarioResponse struct {
	Msg  string          `json:"msg"`
	Data usuario.Usuario `json:"data"`
}

type updateUsuarioResponse struct {
	Msg     string           `json:"msg"`
	Usuario *usuario.Usuario `json:"usuario,omitempty"`
}

// Handlers

func (api *usuarioApi) login(ctx echo.Context) error {
	var data usuario.Credenciales
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credenciales")
	}

	usr, err := api.svc.Login(ctx.Request().Context(), data)
	if err != nil {
		// unknown cedula and wrong clave are deliberately the same answer
		if errors.Cause(err) == usuario.ErrNotFound {
			return errBadCredentials
		}
		return errors.Wrap(err, "authenticating")
	}
	usr.Sanitize()

	return ctx.JSON(http.StatusOK, loginResponse{Msg: "Bienvenido", Usuario: usr})
}

func (api *usuarioApi) create(ctx echo.Context) error {
	var data usuario.NuevoUsuario
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NuevoUsuario")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating usuario")
	}

	return ctx.JSON(http.StatusOK, createUsuarioResponse{Msg: "Usuario registrado", Data: usr})
}

func (api *usuarioApi) query(ctx echo.Context) error {
	usrs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying usuarios")
	}
	return ctx.JSON(http.StatusOK, usrs)
}

func (api *usuarioApi) update(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "parsing usuario id")
	}
	var data usuario.ActualizarUsuario
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ActualizarUsuario")
	}

	resp := updateUsuarioResponse{Msg: "Usuario actualizado"}
	usr, err := api.svc.Update(ctx.Request().Context(), id, data)
	switch {
	case err == nil:
		resp.Usuario = &usr
	case errors.Cause(err) == usuario.ErrNotFound:
		// zero rows affected still reports success, payload-less
	default:
		return errors.Wrap(err, "updating usuario")
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (api *usuarioApi) destroy(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "parsing usuario id")
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting usuario")
	}
	return ctx.JSON(http.StatusOK, msgResponse{Msg: "Usuario eliminado"})
}
