package clients

import (
	"context"
	"net/http"
	"slices"

	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/models"
)

const routeResource = "route"

// ListRoutes lista todas las rutas.
func (c *GatewayClient) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var out []models.Route
	if err := c.call(ctx, routeResource, http.MethodGet, c.endpoint(routeResource), nil, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActiveRoutes lista solo las rutas activas.
func (c *GatewayClient) ListActiveRoutes(ctx context.Context) ([]models.Route, error) {
	var out []models.Route
	if err := c.call(ctx, routeResource, http.MethodGet, c.endpoint(routeResource, "active"), nil, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadRoutesReference carga las rutas como dato de referencia: con reintentos y
// compartiendo una sola llamada entre peticiones concurrentes con la misma credencial.
func (c *GatewayClient) LoadRoutesReference(ctx context.Context) ([]models.Route, error) {
	routes, err := shared(ctx, c, "routes", func(ctx context.Context) ([]models.Route, error) {
		var out []models.Route
		err := c.call(ctx, routeResource, http.MethodGet, c.endpoint(routeResource), nil, &out, c.referenceRetry())
		return out, err
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(routes), nil
}

// GetRoute obtiene una ruta por id.
func (c *GatewayClient) GetRoute(ctx context.Context, id string) (*models.Route, error) {
	var out models.Route
	if err := c.call(ctx, routeResource, http.MethodGet, c.endpoint(routeResource, id), nil, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, helpers.NewAppError(http.StatusNotFound, "Ruta no encontrada", nil)
	}
	return &out, nil
}

// CreateRoute crea la ruta.
func (c *GatewayClient) CreateRoute(ctx context.Context, r models.Route) (*models.Route, error) {
	var out models.Route
	if err := c.call(ctx, routeResource, http.MethodPost, c.endpoint(routeResource), r, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRoute reemplaza la ruta.
func (c *GatewayClient) UpdateRoute(ctx context.Context, id string, r models.Route) (*models.Route, error) {
	var out models.Route
	if err := c.call(ctx, routeResource, http.MethodPut, c.endpoint(routeResource, id), r, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRoute elimina la ruta.
func (c *GatewayClient) DeleteRoute(ctx context.Context, id string) error {
	return c.call(ctx, routeResource, http.MethodDelete, c.endpoint(routeResource, id), nil, nil, helpers.NoRetry)
}

// ActivateRoute activa la ruta.
func (c *GatewayClient) ActivateRoute(ctx context.Context, id string) error {
	return c.call(ctx, routeResource, http.MethodPatch, c.endpoint(routeResource, "activate", id), nil, nil, helpers.NoRetry)
}

// DeactivateRoute desactiva la ruta.
func (c *GatewayClient) DeactivateRoute(ctx context.Context, id string) error {
	return c.call(ctx, routeResource, http.MethodPatch, c.endpoint(routeResource, "deactivate", id), nil, nil, helpers.NoRetry)
}
