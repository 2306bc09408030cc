package controllers

import (
	internaldto "github.com/udistrital/agua_mid/internal/dto"
	internalhelpers "github.com/udistrital/agua_mid/internal/helpers"
)

// RutasController expone las rutas de distribución.
type RutasController struct {
	apiController
}

// GetAll lista las rutas filtradas por estado y por código o nombre.
func (c *RutasController) GetAll() {
	page, err := c.svc().Rutas.Listar(c.requestContext(), c.listQuery())
	if err != nil {
		c.RespondError(err, "error consultando rutas")
		return
	}
	c.ok(page)
}

// GetActivas lista las rutas activas.
func (c *RutasController) GetActivas() {
	items, err := c.svc().Rutas.Activas(c.requestContext())
	if err != nil {
		c.RespondError(err, "error consultando rutas activas")
		return
	}
	c.ok(items)
}

func (c *RutasController) GetOne() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	view, err := c.svc().Rutas.Obtener(c.requestContext(), id)
	if err != nil {
		c.RespondError(err, "error consultando ruta")
		return
	}
	c.ok(view)
}

// Post crea la ruta; el orden de las zonas es el del arreglo enviado.
// @Summary Crear ruta
// @Tags Rutas
// @Accept json
// @Produce json
// @Param body body internaldto.RutaRequest true "Ruta con al menos 2 zonas"
// @Success 201 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *RutasController) Post() {
	var req internaldto.RutaRequest
	if !c.parseBody(&req) {
		return
	}
	view, err := c.svc().Rutas.Crear(c.requestContext(), req, c.actor())
	if err != nil {
		c.RespondError(err, "error creando ruta")
		return
	}
	c.WriteJSON(internalhelpers.Created(view))
}

func (c *RutasController) Put() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	var req internaldto.RutaRequest
	if !c.parseBody(&req) {
		return
	}
	view, err := c.svc().Rutas.Actualizar(c.requestContext(), id, req, c.actor())
	if err != nil {
		c.RespondError(err, "error actualizando ruta")
		return
	}
	c.ok(view)
}

func (c *RutasController) Delete() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.svc().Rutas.Eliminar(c.requestContext(), id); err != nil {
		c.RespondError(err, "error eliminando ruta")
		return
	}
	c.ok(map[string]string{"id": id})
}

// PutActivar activa la ruta.
func (c *RutasController) PutActivar() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.svc().Rutas.Activar(c.requestContext(), id); err != nil {
		c.RespondError(err, "error activando ruta")
		return
	}
	c.ok(map[string]string{"id": id})
}

// PutDesactivar desactiva la ruta.
func (c *RutasController) PutDesactivar() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.svc().Rutas.Desactivar(c.requestContext(), id); err != nil {
		c.RespondError(err, "error desactivando ruta")
		return
	}
	c.ok(map[string]string{"id": id})
}
