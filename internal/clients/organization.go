package clients

import (
	"context"
	"net/http"
	"strings"

	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/models"
)

const organizationResource = "organization"

// GetOrganization carga la organización con sus zonas y calles. Es dato de referencia:
// aplica la política de reintentos y comparte la llamada entre peticiones concurrentes.
func (c *GatewayClient) GetOrganization(ctx context.Context, id string) (*models.Organization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, helpers.NewAppError(http.StatusBadRequest, "organización requerida", nil)
	}
	org, err := shared(ctx, c, "organization:"+id, func(ctx context.Context) (*models.Organization, error) {
		var out models.Organization
		if err := c.call(ctx, organizationResource, http.MethodGet, c.endpoint(organizationResource, id), nil, &out, c.referenceRetry()); err != nil {
			return nil, err
		}
		if out.ID == "" && out.OrganizationName == "" {
			return nil, helpers.NewAppError(http.StatusNotFound, "No se encontraron datos de la organización", nil)
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}
	cp := *org
	return &cp, nil
}
