package controllers

import (
	internaldto "github.com/udistrital/agua_mid/internal/dto"
	internalhelpers "github.com/udistrital/agua_mid/internal/helpers"
)

// HorariosController expone los horarios semanales de distribución.
type HorariosController struct {
	apiController
}

// GetAll lista los horarios filtrados por estado y por código o nombre.
func (c *HorariosController) GetAll() {
	page, err := c.svc().Horarios.Listar(c.requestContext(), c.listQuery())
	if err != nil {
		c.RespondError(err, "error consultando horarios")
		return
	}
	c.ok(page)
}

// GetActivos lista los horarios activos.
func (c *HorariosController) GetActivos() {
	items, err := c.svc().Horarios.Activos(c.requestContext())
	if err != nil {
		c.RespondError(err, "error consultando horarios activos")
		return
	}
	c.ok(items)
}

// GetReferencias carga organización (zonas y calles) y rutas para el formulario.
// @Summary Datos de referencia del formulario de horarios
// @Description Reintenta hasta 2 veces con espera fija ante fallos del gateway.
// @Tags Horarios
// @Produce json
// @Param organization_id query string false "Id de la organización; por defecto el del token"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *HorariosController) GetReferencias() {
	org, ok := c.requireOrganization()
	if !ok {
		return
	}
	refs, err := c.svc().Horarios.Referencias(c.requestContext(), org)
	if err != nil {
		c.RespondError(err, "error consultando datos de referencia")
		return
	}
	c.ok(refs)
}

func (c *HorariosController) GetOne() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	view, err := c.svc().Horarios.Obtener(c.requestContext(), id)
	if err != nil {
		c.RespondError(err, "error consultando horario")
		return
	}
	c.ok(view)
}

// Post crea el horario calculando durationHours.
func (c *HorariosController) Post() {
	var req internaldto.HorarioRequest
	if !c.parseBody(&req) {
		return
	}
	view, err := c.svc().Horarios.Crear(c.requestContext(), req, c.actor())
	if err != nil {
		c.RespondError(err, "error creando horario")
		return
	}
	c.WriteJSON(internalhelpers.Created(view))
}

func (c *HorariosController) Put() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	var req internaldto.HorarioRequest
	if !c.parseBody(&req) {
		return
	}
	view, err := c.svc().Horarios.Actualizar(c.requestContext(), id, req)
	if err != nil {
		c.RespondError(err, "error actualizando horario")
		return
	}
	c.ok(view)
}

func (c *HorariosController) Delete() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.svc().Horarios.Eliminar(c.requestContext(), id); err != nil {
		c.RespondError(err, "error eliminando horario")
		return
	}
	c.ok(map[string]string{"id": id})
}

func (c *HorariosController) PutActivar() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.svc().Horarios.Activar(c.requestContext(), id); err != nil {
		c.RespondError(err, "error activando horario")
		return
	}
	c.ok(map[string]string{"id": id})
}

func (c *HorariosController) PutDesactivar() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.svc().Horarios.Desactivar(c.requestContext(), id); err != nil {
		c.RespondError(err, "error desactivando horario")
		return
	}
	c.ok(map[string]string{"id": id})
}
