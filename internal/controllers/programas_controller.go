package controllers

import (
	"strings"

	internaldto "github.com/udistrital/agua_mid/internal/dto"
	internalhelpers "github.com/udistrital/agua_mid/internal/helpers"
)

// ProgramasController expone los programas de distribución de agua.
type ProgramasController struct {
	apiController
}

// GetAll lista los programas filtrados y paginados.
// @Summary Listar programas
// @Description Filtros: estado (all|active|inactive), q (código o fecha), desde/hasta (YYYY-MM-DD), eliminados, page, size.
// @Tags Programas
// @Produce json
// @Param estado query string false "all, active o inactive"
// @Param q query string false "Búsqueda por código o fecha"
// @Param page query int false "Página" Example(1)
// @Param size query int false "Tamaño de página" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *ProgramasController) GetAll() {
	page, err := c.svc().Programas.Listar(c.requestContext(), c.listQuery())
	if err != nil {
		c.RespondError(err, "error consultando programas")
		return
	}
	c.ok(page)
}

// GetEnriquecidos lista los programas con los nombres de horario, ruta, zona y calle.
func (c *ProgramasController) GetEnriquecidos() {
	page, err := c.svc().Programas.ListarEnriquecidos(c.requestContext(), c.listQuery())
	if err != nil {
		c.RespondError(err, "error consultando programas")
		return
	}
	c.ok(page)
}

// GetOne retorna el detalle del programa con su etiqueta de estado.
func (c *ProgramasController) GetOne() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	view, err := c.svc().Programas.Obtener(c.requestContext(), id)
	if err != nil {
		c.RespondError(err, "error consultando programa")
		return
	}
	c.ok(view)
}

// Post crea un programa para la fecha de hoy.
// @Summary Crear programa
// @Description Valida el formulario; la fecha debe ser la actual (UTC-5). Los errores por campo viajan en Data.
// @Tags Programas
// @Accept json
// @Produce json
// @Param body body internaldto.ProgramaRequest true "Programa"
// @Success 201 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *ProgramasController) Post() {
	var req internaldto.ProgramaRequest
	if !c.parseBody(&req) {
		return
	}
	view, err := c.svc().Programas.Crear(c.requestContext(), req, c.actor())
	if err != nil {
		c.RespondError(err, "error creando programa")
		return
	}
	c.WriteJSON(internalhelpers.Created(view))
}

// Put actualiza el programa.
func (c *ProgramasController) Put() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	var req internaldto.ProgramaRequest
	if !c.parseBody(&req) {
		return
	}
	view, err := c.svc().Programas.Actualizar(c.requestContext(), id, req, c.actor())
	if err != nil {
		c.RespondError(err, "error actualizando programa")
		return
	}
	c.ok(view)
}

// Delete elimina lógicamente el programa; con ?fisico=true lo elimina definitivamente.
func (c *ProgramasController) Delete() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	fisico := internalhelpers.QueryBool(c.Ctx, "fisico")
	if err := c.svc().Programas.Eliminar(c.requestContext(), id, fisico); err != nil {
		c.RespondError(err, "error eliminando programa")
		return
	}
	c.ok(map[string]interface{}{"id": id, "fisico": fisico})
}

// PutEstado aplica una transición de estado.
// @Summary Cambiar estado del programa
// @Description PLANNED usa el endpoint de activación, CANCELLED el de desactivación y el resto el genérico. Transiciones inválidas responden 409.
// @Tags Programas
// @Accept json
// @Produce json
// @Param id path string true "Id del programa"
// @Param body body internaldto.EstadoRequest true "Estado destino"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 409 {object} internaldto.APIResponseDTO
func (c *ProgramasController) PutEstado() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	var req internaldto.EstadoRequest
	if !c.parseBody(&req) {
		return
	}
	view, err := c.svc().Programas.CambiarEstado(c.requestContext(), id, req.Status)
	if err != nil {
		c.RespondError(err, "error cambiando estado")
		return
	}
	c.ok(view)
}

// PutAgua registra la anotación CON_AGUA / SIN_AGUA del programa.
func (c *ProgramasController) PutAgua() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	var req internaldto.AguaRequest
	if !c.parseBody(&req) {
		return
	}
	value := strings.ToUpper(strings.TrimSpace(req.Status))
	if err := c.svc().Programas.MarcarAgua(c.requestContext(), id, value); err != nil {
		c.RespondError(err, "error guardando anotación")
		return
	}
	c.ok(map[string]string{"id": id, "waterStatus": value})
}

// DeleteAgua elimina la anotación del programa.
func (c *ProgramasController) DeleteAgua() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.svc().Programas.QuitarAgua(c.requestContext(), id); err != nil {
		c.RespondError(err, "error eliminando anotación")
		return
	}
	c.ok(map[string]string{"id": id})
}

// GetAgua retorna todas las anotaciones de agua.
func (c *ProgramasController) GetAgua() {
	c.ok(c.svc().Programas.Anotaciones(c.requestContext()))
}

// GetPendientesAgua lista los programas de hoy sin confirmación de agua cuya hora de fin ya pasó.
func (c *ProgramasController) GetPendientesAgua() {
	items, err := c.svc().Programas.PendientesAgua(c.requestContext())
	if err != nil {
		c.RespondError(err, "error consultando pendientes")
		return
	}
	c.ok(items)
}
