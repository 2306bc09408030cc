package clients

import (
	"context"
	"net/http"

	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/models"
)

const programResource = "program"

// ListPrograms lista los programas; includeDeleted agrega los eliminados lógicamente.
func (c *GatewayClient) ListPrograms(ctx context.Context, includeDeleted bool) ([]models.DistributionProgram, error) {
	url := c.endpoint(programResource)
	if includeDeleted {
		url += "?includeDeleted=true"
	}
	var out []models.DistributionProgram
	if err := c.call(ctx, programResource, http.MethodGet, url, nil, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProgramsEnriched lista los programas con los nombres de ruta, horario, zona y calle.
func (c *GatewayClient) ListProgramsEnriched(ctx context.Context) ([]models.EnrichedProgram, error) {
	var out []models.EnrichedProgram
	if err := c.call(ctx, programResource, http.MethodGet, c.endpoint(programResource, "enriched"), nil, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProgram obtiene un programa por id.
func (c *GatewayClient) GetProgram(ctx context.Context, id string) (*models.DistributionProgram, error) {
	var out models.DistributionProgram
	if err := c.call(ctx, programResource, http.MethodGet, c.endpoint(programResource, id), nil, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, helpers.NewAppError(http.StatusNotFound, "Programa no encontrado", nil)
	}
	return &out, nil
}

// CreateProgram crea el programa y retorna el registro asignado por el gateway.
func (c *GatewayClient) CreateProgram(ctx context.Context, p models.DistributionProgram) (*models.DistributionProgram, error) {
	var out models.DistributionProgram
	if err := c.call(ctx, programResource, http.MethodPost, c.endpoint(programResource), p, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProgram reemplaza el programa.
func (c *GatewayClient) UpdateProgram(ctx context.Context, id string, p models.DistributionProgram) (*models.DistributionProgram, error) {
	var out models.DistributionProgram
	if err := c.call(ctx, programResource, http.MethodPut, c.endpoint(programResource, id), p, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProgram elimina lógicamente el programa.
func (c *GatewayClient) DeleteProgram(ctx context.Context, id string) error {
	return c.call(ctx, programResource, http.MethodDelete, c.endpoint(programResource, id), nil, nil, helpers.NoRetry)
}

// DeleteProgramPhysical elimina el programa de forma definitiva.
func (c *GatewayClient) DeleteProgramPhysical(ctx context.Context, id string) error {
	return c.call(ctx, programResource, http.MethodDelete, c.endpoint(programResource, "physical", id), nil, nil, helpers.NoRetry)
}

// ActivateProgram restaura el programa a PLANNED.
func (c *GatewayClient) ActivateProgram(ctx context.Context, id string) error {
	return c.call(ctx, programResource, http.MethodPatch, c.endpoint(programResource, "activate", id), nil, nil, helpers.NoRetry)
}

// DeactivateProgram cancela el programa.
func (c *GatewayClient) DeactivateProgram(ctx context.Context, id string) error {
	return c.call(ctx, programResource, http.MethodPatch, c.endpoint(programResource, "deactivate", id), nil, nil, helpers.NoRetry)
}

// SetProgramStatus usa el endpoint genérico de estado.
func (c *GatewayClient) SetProgramStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.call(ctx, programResource, http.MethodPatch, c.endpoint(programResource, id), body, nil, helpers.NoRetry)
}
