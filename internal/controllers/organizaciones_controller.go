package controllers

// OrganizacionesController expone los datos de referencia de la organización.
type OrganizacionesController struct {
	apiController
}

// GetOne retorna la organización con sus zonas y calles.
func (c *OrganizacionesController) GetOne() {
	id, ok := c.pathID()
	if !ok {
		return
	}
	org, err := c.svc().Organizaciones.Obtener(c.requestContext(), id)
	if err != nil {
		c.RespondError(err, "error consultando organización")
		return
	}
	c.ok(org)
}
