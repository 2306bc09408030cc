// Package reports arma las filas de los reportes de programas, rutas y horarios y
// las presenta en PDF o en hoja de cálculo.
package reports

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/udistrital/agua_mid/internal/status"
	"github.com/udistrital/agua_mid/internal/timeutil"
	"github.com/udistrital/agua_mid/models"
)

// NotAvailable reemplaza cualquier referencia que no se pudo resolver.
const NotAvailable = "N/A"

// Disclaimer es la leyenda fija del pie de página.
const Disclaimer = "Documento generado automáticamente. La información refleja el estado del sistema al momento de su emisión."

// ErrMissingOrganization se devuelve cuando no hay datos de organización para el encabezado.
var ErrMissingOrganization = errors.New("no hay datos de la organización para generar el reporte")

// Header es el encabezado institucional del documento.
type Header struct {
	OrganizationName string
	Address          string
	Phone            string
	LogoPath         string
}

// Table es el contenido tabular del reporte.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Document reúne todo lo necesario para renderizar un reporte.
type Document struct {
	Header      Header
	Table       Table
	GeneratedAt time.Time
}

// NewDocument valida la organización antes de armar el documento.
func NewDocument(org *models.Organization, logoPath string, table Table, at time.Time) (Document, error) {
	if org == nil || strings.TrimSpace(org.OrganizationName) == "" {
		return Document{}, ErrMissingOrganization
	}
	return Document{
		Header: Header{
			OrganizationName: org.OrganizationName,
			Address:          org.Address,
			Phone:            org.Phone,
			LogoPath:         logoPath,
		},
		Table:       table,
		GeneratedAt: at,
	}, nil
}

// Lookup resuelve ids de referencia a nombres legibles.
type Lookup struct {
	zones     map[string]string
	streets   map[string]string
	routes    map[string]string
	schedules map[string]string
}

// NewLookup construye los mapas de nombres. Cualquier argumento puede ser nil.
func NewLookup(org *models.Organization, routes []models.Route, schedules []models.Schedule) Lookup {
	l := Lookup{
		zones:     map[string]string{},
		streets:   map[string]string{},
		routes:    map[string]string{},
		schedules: map[string]string{},
	}
	if org != nil {
		for _, z := range org.Zones {
			l.zones[z.ID] = z.ZoneName
			for _, s := range z.Streets {
				l.streets[s.ID] = s.FullName()
			}
		}
	}
	for _, r := range routes {
		l.routes[r.ID] = r.RouteName
	}
	for _, s := range schedules {
		l.schedules[s.ID] = s.ScheduleName
	}
	return l
}

func (l Lookup) Zone(id string) string     { return lookup(l.zones, id) }
func (l Lookup) Street(id string) string   { return lookup(l.streets, id) }
func (l Lookup) Route(id string) string    { return lookup(l.routes, id) }
func (l Lookup) Schedule(id string) string { return lookup(l.schedules, id) }

func lookup(m map[string]string, id string) string {
	if v, ok := m[id]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return NotAvailable
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return NotAvailable
	}
	return v
}

// ProgramsTable arma la tabla de programas; annotations aplica la precedencia de la
// anotación de agua sobre el estado.
func ProgramsTable(programs []models.DistributionProgram, l Lookup, annotations map[string]string) Table {
	rows := make([][]string, 0, len(programs))
	for _, p := range programs {
		rows = append(rows, []string{
			orNA(p.ProgramCode),
			timeutil.FormatDisplayDate(p.ProgramDate),
			l.Schedule(p.ScheduleID),
			l.Route(p.RouteID),
			l.Zone(p.ZoneID),
			l.Street(p.StreetID),
			orNA(p.PlannedStartTime),
			orNA(p.PlannedEndTime),
			status.Label(p.Status, annotations[p.ID]),
		})
	}
	return Table{
		Title:   "Reporte de Programas de Distribución",
		Columns: []string{"Código", "Fecha", "Horario", "Ruta", "Zona", "Calle", "Inicio", "Fin", "Estado"},
		Rows:    rows,
	}
}

// RoutesTable arma la tabla de rutas con sus zonas en orden.
func RoutesTable(routes []models.Route, l Lookup) Table {
	rows := make([][]string, 0, len(routes))
	for _, r := range routes {
		names := make([]string, 0, len(r.Zones))
		for _, z := range r.Zones {
			names = append(names, l.Zone(z.ZoneID))
		}
		zones := strings.Join(names, ", ")
		if zones == "" {
			zones = NotAvailable
		}
		rows = append(rows, []string{
			orNA(r.RouteCode),
			orNA(r.RouteName),
			zones,
			strconv.Itoa(r.TotalEstimatedDuration) + " min",
			status.Label(r.Status, ""),
		})
	}
	return Table{
		Title:   "Reporte de Rutas",
		Columns: []string{"Código", "Nombre", "Zonas", "Duración total", "Estado"},
		Rows:    rows,
	}
}

// SchedulesTable arma la tabla de horarios.
func SchedulesTable(schedules []models.Schedule, l Lookup) Table {
	rows := make([][]string, 0, len(schedules))
	for _, s := range schedules {
		days := strings.Join(s.DaysOfWeek, ", ")
		if days == "" {
			days = NotAvailable
		}
		rows = append(rows, []string{
			orNA(s.ScheduleCode),
			orNA(s.ScheduleName),
			l.Zone(s.ZoneID),
			l.Street(s.StreetID),
			days,
			orNA(s.StartTime),
			orNA(s.EndTime),
			timeutil.FormatHours(s.DurationHours),
			status.Label(s.Status, ""),
		})
	}
	return Table{
		Title:   "Reporte de Horarios",
		Columns: []string{"Código", "Nombre", "Zona", "Calle", "Días", "Inicio", "Fin", "Duración", "Estado"},
		Rows:    rows,
	}
}
