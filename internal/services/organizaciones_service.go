package services

import (
	"context"

	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/models"
)

// OrganizationService expone los datos de referencia de la organización.
type OrganizationService struct {
	gw Gateway
}

// Obtener retorna la organización con sus zonas y calles.
func (s *OrganizationService) Obtener(ctx context.Context, id string) (*models.Organization, error) {
	org, err := s.gw.GetOrganization(ctx, id)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando organización")
	}
	return org, nil
}
