package models

// DistributionProgram es un evento de distribución de agua para una ruta/zona/calle en una fecha.
type DistributionProgram struct {
	ID                string `json:"id,omitempty"`
	OrganizationID    string `json:"organizationId"`
	ProgramCode       string `json:"programCode,omitempty"`
	ScheduleID        string `json:"scheduleId"`
	RouteID           string `json:"routeId"`
	ZoneID            string `json:"zoneId"`
	StreetID          string `json:"streetId"`
	ProgramDate       string `json:"programDate"`
	PlannedStartTime  string `json:"plannedStartTime"`
	PlannedEndTime    string `json:"plannedEndTime"`
	ActualStartTime   string `json:"actualStartTime,omitempty"`
	ActualEndTime     string `json:"actualEndTime,omitempty"`
	Status            string `json:"status,omitempty"`
	ResponsibleUserID string `json:"responsibleUserId,omitempty"`
	Observations      string `json:"observations,omitempty"`
	Deleted           bool   `json:"deleted,omitempty"`
}

// EnrichedProgram es el programa con los nombres de sus referencias resueltos por el gateway.
type EnrichedProgram struct {
	DistributionProgram
	ScheduleName string `json:"scheduleName,omitempty"`
	RouteName    string `json:"routeName,omitempty"`
	ZoneName     string `json:"zoneName,omitempty"`
	StreetName   string `json:"streetName,omitempty"`
}
