package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/beego/beego/v2/core/logs"

	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/internal/clock"
	internaldto "github.com/udistrital/agua_mid/internal/dto"
	"github.com/udistrital/agua_mid/internal/reports"
	"github.com/udistrital/agua_mid/models"
)

// Tipos de reporte disponibles.
const (
	ReporteProgramas = "programas"
	ReporteRutas     = "rutas"
	ReporteHorarios  = "horarios"
)

// ReportFile es un reporte listo para descargar.
type ReportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// ReportService genera los reportes PDF y XLSX a partir de las listas filtradas.
type ReportService struct {
	gw       Gateway
	programs *ProgramService
	clock    clock.Clock
	opts     Options
}

// Generar arma el reporte del tipo indicado con los mismos filtros del listado (sin paginar).
func (s *ReportService) Generar(ctx context.Context, tipo string, q internaldto.ListQuery, organizationID, formato string) (*ReportFile, error) {
	format, err := reports.ParseFormat(formato)
	if err != nil {
		return nil, helpers.NewAppError(http.StatusBadRequest, err.Error(), nil)
	}
	if organizationID == "" {
		return nil, helpers.NewAppError(http.StatusBadRequest, "organización requerida", nil)
	}

	org, err := s.gw.GetOrganization(ctx, organizationID)
	if err != nil {
		appErr := helpers.AsAppError(err, "error consultando organización")
		return nil, helpers.NewAppError(appErr.Status, "No se pudo generar el reporte: "+appErr.Message, err)
	}

	var table reports.Table
	switch tipo {
	case ReporteProgramas:
		table, err = s.programas(ctx, q, org)
	case ReporteRutas:
		table, err = s.rutas(ctx, q, org)
	case ReporteHorarios:
		table, err = s.horarios(ctx, q, org)
	default:
		return nil, helpers.NewAppError(http.StatusNotFound, "tipo de reporte desconocido: "+tipo, nil)
	}
	if err != nil {
		return nil, err
	}

	doc, err := reports.NewDocument(org, s.opts.LogoPath, table, s.now())
	if err != nil {
		if errors.Is(err, reports.ErrMissingOrganization) {
			return nil, helpers.NewAppError(http.StatusUnprocessableEntity, "No se encontraron datos de la organización", err)
		}
		return nil, err
	}

	var buf bytes.Buffer
	if err := reports.Render(&buf, format, doc); err != nil {
		return nil, helpers.NewAppError(http.StatusInternalServerError, "error generando el reporte", err)
	}
	logs.Info("reporte %s generado (%s, %d filas, %d bytes)", tipo, format, len(table.Rows), buf.Len())
	return &ReportFile{
		Name:        format.FileName("reporte_" + tipo + "_" + s.now().Format("20060102_1504")),
		ContentType: format.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

func (s *ReportService) programas(ctx context.Context, q internaldto.ListQuery, org *models.Organization) (reports.Table, error) {
	filtered, notes, err := s.programs.filtrados(ctx, q)
	if err != nil {
		return reports.Table{}, err
	}
	routes, err := s.gw.ListRoutes(ctx)
	if err != nil {
		logs.Warn("reporte de programas sin nombres de rutas: %v", err)
	}
	schedules, err := s.gw.ListSchedules(ctx)
	if err != nil {
		logs.Warn("reporte de programas sin nombres de horarios: %v", err)
	}
	return reports.ProgramsTable(filtered, reports.NewLookup(org, routes, schedules), notes), nil
}

func (s *ReportService) rutas(ctx context.Context, q internaldto.ListQuery, org *models.Organization) (reports.Table, error) {
	items, err := s.gw.ListRoutes(ctx)
	if err != nil {
		return reports.Table{}, helpers.AsAppError(err, "error consultando rutas")
	}
	return reports.RoutesTable(FilterRoutes(items, q), reports.NewLookup(org, nil, nil)), nil
}

func (s *ReportService) horarios(ctx context.Context, q internaldto.ListQuery, org *models.Organization) (reports.Table, error) {
	items, err := s.gw.ListSchedules(ctx)
	if err != nil {
		return reports.Table{}, helpers.AsAppError(err, "error consultando horarios")
	}
	return reports.SchedulesTable(FilterSchedules(items, q), reports.NewLookup(org, nil, nil)), nil
}

// now es la hora local operativa (UTC desplazada) usada en el pie del reporte.
func (s *ReportService) now() time.Time {
	return s.clock.Now().UTC().Add(time.Duration(s.opts.TimezoneOffsetHours) * time.Hour)
}
