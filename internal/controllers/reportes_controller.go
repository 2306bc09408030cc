package controllers

import (
	"strconv"

	internalservices "github.com/udistrital/agua_mid/internal/services"
)

// ReportesController descarga los reportes en PDF o XLSX.
type ReportesController struct {
	apiController
}

// GetProgramas descarga el reporte de programas con los filtros del listado.
// @Summary Reporte de programas
// @Tags Reportes
// @Produce application/pdf
// @Param formato query string false "pdf (por defecto) o xlsx"
// @Success 200 {file} file
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *ReportesController) GetProgramas() {
	c.download(internalservices.ReporteProgramas)
}

// GetRutas descarga el reporte de rutas.
func (c *ReportesController) GetRutas() {
	c.download(internalservices.ReporteRutas)
}

// GetHorarios descarga el reporte de horarios.
func (c *ReportesController) GetHorarios() {
	c.download(internalservices.ReporteHorarios)
}

func (c *ReportesController) download(tipo string) {
	org, ok := c.requireOrganization()
	if !ok {
		return
	}
	file, err := c.svc().Reportes.Generar(c.requestContext(), tipo, c.listQuery(), org, c.GetString("formato"))
	if err != nil {
		c.RespondError(err, "error generando reporte")
		return
	}
	c.Ctx.Output.Header("Content-Type", file.ContentType)
	c.Ctx.Output.Header("Content-Disposition", "attachment; filename=\""+file.Name+"\"")
	c.Ctx.Output.Header("Content-Length", strconv.Itoa(len(file.Content)))
	_ = c.Ctx.Output.Body(file.Content)
}
