package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/udistrital/agua_mid/models"
)

func sampleOrg() *models.Organization {
	return &models.Organization{
		ID:               "org-1",
		OrganizationName: "JASS Santa Rosa",
		Address:          "Jr. Lima 123",
		Phone:            "987654321",
		Zones: []models.Zone{
			{ID: "z1", ZoneName: "Zona Alta", Streets: []models.Street{{ID: "s1", StreetType: "Av.", StreetName: "Grau"}}},
			{ID: "z2", ZoneName: "Zona Baja"},
		},
	}
}

func TestLookup_ResolvesAndFallsBack(t *testing.T) {
	l := NewLookup(sampleOrg(),
		[]models.Route{{ID: "r1", RouteName: "Ruta Norte"}},
		[]models.Schedule{{ID: "h1", ScheduleName: "Mañanas"}})

	assert.Equal(t, "Zona Alta", l.Zone("z1"))
	assert.Equal(t, "Av. Grau", l.Street("s1"))
	assert.Equal(t, "Ruta Norte", l.Route("r1"))
	assert.Equal(t, "Mañanas", l.Schedule("h1"))
	assert.Equal(t, NotAvailable, l.Zone("zz"))
	assert.Equal(t, NotAvailable, l.Route(""))

	empty := NewLookup(nil, nil, nil)
	assert.Equal(t, NotAvailable, empty.Street("s1"))
}

func TestProgramsTable(t *testing.T) {
	l := NewLookup(sampleOrg(), nil, nil)
	table := ProgramsTable([]models.DistributionProgram{
		{ID: "p1", ProgramCode: "PRG-001", ProgramDate: "2025-03-10", ZoneID: "z1", StreetID: "s1", RouteID: "r9",
			PlannedStartTime: "08:00", PlannedEndTime: "10:00", Status: models.ProgramStatusPlanned},
		{ID: "p2", ProgramDate: "2025-03-11", Status: models.ProgramStatusCompleted},
	}, l, map[string]string{"p2": models.WaterGiven})

	require.Len(t, table.Rows, 2)
	assert.Len(t, table.Columns, len(table.Rows[0]))
	assert.Equal(t, []string{"PRG-001", "10/03/2025", NotAvailable, NotAvailable, "Zona Alta", "Av. Grau", "08:00", "10:00", "Planificado"}, table.Rows[0])
	assert.Equal(t, NotAvailable, table.Rows[1][0])
	assert.Equal(t, "Con Agua", table.Rows[1][8])
}

func TestRoutesAndSchedulesTables(t *testing.T) {
	l := NewLookup(sampleOrg(), nil, nil)
	routes := RoutesTable([]models.Route{{
		RouteCode: "RUT-1", RouteName: "Ruta Norte", TotalEstimatedDuration: 75, Status: models.StatusActive,
		Zones: []models.RouteZone{{ZoneID: "z1", Order: 1}, {ZoneID: "z2", Order: 2}},
	}}, l)
	assert.Equal(t, []string{"RUT-1", "Ruta Norte", "Zona Alta, Zona Baja", "75 min", "Activo"}, routes.Rows[0])

	schedules := SchedulesTable([]models.Schedule{{
		ScheduleCode: "HOR-1", ScheduleName: "Mañanas", ZoneID: "z2", StreetID: "sx",
		DaysOfWeek: []string{"LUNES", "MIERCOLES"}, StartTime: "06:00", EndTime: "08:30", DurationHours: 2.5,
		Status: models.StatusInactive,
	}}, l)
	assert.Equal(t, []string{"HOR-1", "Mañanas", "Zona Baja", NotAvailable, "LUNES, MIERCOLES", "06:00", "08:30", "2.50 h", "Inactivo"}, schedules.Rows[0])
}

func TestNewDocument_RequiresOrganization(t *testing.T) {
	_, err := NewDocument(nil, "", Table{}, time.Now())
	assert.ErrorIs(t, err, ErrMissingOrganization)

	_, err = NewDocument(&models.Organization{ID: "org-1"}, "", Table{}, time.Now())
	assert.ErrorIs(t, err, ErrMissingOrganization)
}

func testDocument(t *testing.T, rows int) Document {
	t.Helper()
	l := NewLookup(sampleOrg(), nil, nil)
	programs := make([]models.DistributionProgram, rows)
	for i := range programs {
		programs[i] = models.DistributionProgram{ID: "p", ProgramCode: "PRG", ProgramDate: "2025-03-10", ZoneID: "z1",
			StreetID: "s1", PlannedStartTime: "08:00", PlannedEndTime: "09:00", Status: models.ProgramStatusInProgress}
	}
	doc, err := NewDocument(sampleOrg(), "/no/existe/logo.png", ProgramsTable(programs, l, nil),
		time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return doc
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, testDocument(t, 60)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderPDF_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, testDocument(t, 0)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderXLSX(t *testing.T) {
	var buf bytes.Buffer
	doc := testDocument(t, 3)
	require.NoError(t, Render(&buf, FormatXLSX, doc))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName(doc.Table.Title))
	require.NoError(t, err)
	assert.Equal(t, "JASS Santa Rosa", rows[0][0])
	assert.Equal(t, doc.Table.Columns, rows[5])
	assert.Equal(t, "Zona Alta", rows[6][4])
	assert.Equal(t, Disclaimer, rows[len(rows)-1][0])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("EXCEL")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)
	assert.Equal(t, "programas.xlsx", f.FileName("programas"))
	assert.Contains(t, f.ContentType(), "spreadsheetml")

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}
