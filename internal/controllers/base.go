package controllers

import (
	"context"
	"net/http"
	"strings"

	rootcontrollers "github.com/udistrital/agua_mid/controllers"
	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/internal/clients"
	internaldto "github.com/udistrital/agua_mid/internal/dto"
	internalhelpers "github.com/udistrital/agua_mid/internal/helpers"
	"github.com/udistrital/agua_mid/internal/middlewares"
	internalservices "github.com/udistrital/agua_mid/internal/services"
	rootservices "github.com/udistrital/agua_mid/services"
)

// servicesFn y defaultOrganization permiten reemplazar dependencias en pruebas.
var (
	servicesFn          = internalservices.Default
	defaultOrganization = func() string { return rootservices.GetConfig().OrganizationID }
)

// apiController reúne la lectura de parámetros y la escritura de respuestas comunes.
type apiController struct {
	rootcontrollers.BaseController
}

// Prepare rechaza las peticiones cuyo token vino pero no se pudo leer.
func (c *apiController) Prepare() {
	if err, ok := c.Ctx.Input.GetData(middlewares.AuthErrorKey).(error); ok && err != nil {
		c.RespondError(helpers.NewAppError(http.StatusUnauthorized, "Token inválido", err), "")
		c.StopRun()
	}
}

func (c *apiController) svc() *internalservices.Services {
	return servicesFn()
}

// requestContext propaga cancelación y headers de correlación hacia el gateway.
func (c *apiController) requestContext() context.Context {
	return clients.WithHeaders(c.Ctx.Request.Context(), internalhelpers.ForwardHeaders(c.Ctx))
}

func (c *apiController) listQuery() internaldto.ListQuery {
	page, size := internalhelpers.ParsePageSize(c.GetString("page"), c.GetString("size"))
	return internaldto.ListQuery{
		Estado:     strings.TrimSpace(c.GetString("estado")),
		Q:          strings.TrimSpace(c.GetString("q")),
		Desde:      strings.TrimSpace(c.GetString("desde")),
		Hasta:      strings.TrimSpace(c.GetString("hasta")),
		Eliminados: internalhelpers.QueryBool(c.Ctx, "eliminados"),
		Page:       page,
		Size:       size,
	}
}

// actor toma la organización del query (organization_id), del token o de la configuración,
// y el usuario del token.
func (c *apiController) actor() internaldto.Actor {
	a := internaldto.Actor{OrganizationID: strings.TrimSpace(c.GetString("organization_id"))}
	if a.OrganizationID == "" {
		a.OrganizationID, _ = internalhelpers.GetOrganizationID(c.Ctx)
	}
	if a.OrganizationID == "" {
		a.OrganizationID = defaultOrganization()
	}
	a.UserID, _ = internalhelpers.GetUserID(c.Ctx)
	return a
}

func (c *apiController) requireOrganization() (string, bool) {
	org := c.actor().OrganizationID
	if org == "" {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "organization_id requerido", nil), "")
		return "", false
	}
	return org, true
}

func (c *apiController) pathID() (string, bool) {
	id, err := internalhelpers.ParamID(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "id inválido", err), "id inválido")
		return "", false
	}
	return id, true
}

func (c *apiController) parseBody(out interface{}) bool {
	if err := c.ParseJSONBody(out); err != nil {
		c.WriteJSON(internalhelpers.Fail(http.StatusBadRequest, "JSON inválido"))
		return false
	}
	return true
}

func (c *apiController) ok(data interface{}) {
	c.WriteJSON(internalhelpers.Ok(data))
}
