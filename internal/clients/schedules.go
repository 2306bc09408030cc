package clients

import (
	"context"
	"net/http"

	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/models"
)

const scheduleResource = "schedule"

// ListSchedules lista todos los horarios.
func (c *GatewayClient) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	var out []models.Schedule
	if err := c.call(ctx, scheduleResource, http.MethodGet, c.endpoint(scheduleResource), nil, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActiveSchedules lista solo los horarios activos.
func (c *GatewayClient) ListActiveSchedules(ctx context.Context) ([]models.Schedule, error) {
	var out []models.Schedule
	if err := c.call(ctx, scheduleResource, http.MethodGet, c.endpoint(scheduleResource, "active"), nil, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSchedule obtiene un horario por id.
func (c *GatewayClient) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	var out models.Schedule
	if err := c.call(ctx, scheduleResource, http.MethodGet, c.endpoint(scheduleResource, id), nil, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, helpers.NewAppError(http.StatusNotFound, "Horario no encontrado", nil)
	}
	return &out, nil
}

// CreateSchedule crea el horario.
func (c *GatewayClient) CreateSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error) {
	var out models.Schedule
	if err := c.call(ctx, scheduleResource, http.MethodPost, c.endpoint(scheduleResource), s, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSchedule reemplaza el horario.
func (c *GatewayClient) UpdateSchedule(ctx context.Context, id string, s models.Schedule) (*models.Schedule, error) {
	var out models.Schedule
	if err := c.call(ctx, scheduleResource, http.MethodPut, c.endpoint(scheduleResource, id), s, &out, helpers.NoRetry); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSchedule elimina el horario.
func (c *GatewayClient) DeleteSchedule(ctx context.Context, id string) error {
	return c.call(ctx, scheduleResource, http.MethodDelete, c.endpoint(scheduleResource, id), nil, nil, helpers.NoRetry)
}

// ActivateSchedule activa el horario.
func (c *GatewayClient) ActivateSchedule(ctx context.Context, id string) error {
	return c.call(ctx, scheduleResource, http.MethodPatch, c.endpoint(scheduleResource, "activate", id), nil, nil, helpers.NoRetry)
}

// DeactivateSchedule desactiva el horario.
func (c *GatewayClient) DeactivateSchedule(ctx context.Context, id string) error {
	return c.call(ctx, scheduleResource, http.MethodPatch, c.endpoint(scheduleResource, "deactivate", id), nil, nil, helpers.NoRetry)
}
