package validation

import "strings"

// RouteZoneForm es una zona seleccionada en la ruta, en orden de selección.
type RouteZoneForm struct {
	ZoneID            string `json:"zoneId" validate:"required"`
	EstimatedDuration int    `json:"estimatedDuration" validate:"gt=0"`
}

// RouteForm son los campos editables de una ruta.
type RouteForm struct {
	RouteName string          `json:"routeName" validate:"required,min=3,max=100,letters"`
	Zones     []RouteZoneForm `json:"zones" validate:"min=2,dive"`
}

// ValidateRoute aplica las reglas del formulario de rutas.
func ValidateRoute(form RouteForm) Errors {
	form.RouteName = strings.TrimSpace(form.RouteName)
	errs := structErrors(form, map[string]string{
		"routeName.pattern": "El nombre de la ruta solo puede contener letras y espacios",
		"zones.minZones":    "La ruta debe tener al menos 2 zonas",
		"zones.required":    "Todas las zonas deben estar seleccionadas",
	})

	seen := make(map[string]struct{}, len(form.Zones))
	for _, z := range form.Zones {
		id := strings.TrimSpace(z.ZoneID)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			errs.Add("zones", CodeDuplicateZone, "No se puede repetir una zona en la ruta")
			break
		}
		seen[id] = struct{}{}
	}
	return errs
}
