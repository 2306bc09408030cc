package models

// RouteZone es una parada de la ruta con su duración estimada en minutos.
type RouteZone struct {
	ZoneID            string `json:"zoneId"`
	Order             int    `json:"order"`
	EstimatedDuration int    `json:"estimatedDuration"`
}

// Route es una secuencia ordenada de zonas.
type Route struct {
	ID                     string      `json:"id,omitempty"`
	OrganizationID         string      `json:"organizationId"`
	RouteCode              string      `json:"routeCode,omitempty"`
	RouteName              string      `json:"routeName"`
	Zones                  []RouteZone `json:"zones"`
	TotalEstimatedDuration int         `json:"totalEstimatedDuration"`
	ResponsibleUserID      string      `json:"responsibleUserId,omitempty"`
	Status                 string      `json:"status,omitempty"`
}
