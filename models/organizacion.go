package models

// Organization es la organización prestadora con sus zonas y calles anidadas.
type Organization struct {
	ID               string `json:"organizationId"`
	OrganizationCode string `json:"organizationCode"`
	OrganizationName string `json:"organizationName"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Logo             string `json:"logo,omitempty"`
	Zones            []Zone `json:"zones"`
}

// Zone es una subdivisión geográfica de la organización.
type Zone struct {
	ID       string   `json:"zoneId"`
	ZoneCode string   `json:"zoneCode"`
	ZoneName string   `json:"zoneName"`
	Status   string   `json:"status"`
	Streets  []Street `json:"streets"`
}

// Street pertenece a una zona.
type Street struct {
	ID         string `json:"streetId"`
	StreetType string `json:"streetType"`
	StreetName string `json:"streetName"`
	Status     string `json:"status"`
}

// FullName concatena tipo y nombre de la calle ("Av. Grau").
func (s Street) FullName() string {
	if s.StreetType == "" {
		return s.StreetName
	}
	return s.StreetType + " " + s.StreetName
}
