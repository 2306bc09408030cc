package models

// Schedule es una ventana semanal recurrente para una zona/calle.
type Schedule struct {
	ID             string   `json:"id,omitempty"`
	OrganizationID string   `json:"organizationId"`
	ZoneID         string   `json:"zoneId"`
	StreetID       string   `json:"streetId"`
	ScheduleCode   string   `json:"scheduleCode,omitempty"`
	ScheduleName   string   `json:"scheduleName"`
	DaysOfWeek     []string `json:"daysOfWeek"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	DurationHours  float64  `json:"durationHours"`
	Status         string   `json:"status,omitempty"`
}
