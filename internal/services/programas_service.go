package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/beego/beego/v2/core/logs"

	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/internal/annotations"
	"github.com/udistrital/agua_mid/internal/clients"
	"github.com/udistrital/agua_mid/internal/clock"
	internaldto "github.com/udistrital/agua_mid/internal/dto"
	"github.com/udistrital/agua_mid/internal/listing"
	"github.com/udistrital/agua_mid/internal/status"
	"github.com/udistrital/agua_mid/internal/timeutil"
	"github.com/udistrital/agua_mid/internal/validation"
	"github.com/udistrital/agua_mid/models"
)

// PendingCache expone el último cálculo periódico de programas pendientes de agua.
type PendingCache interface {
	Pending() ([]internaldto.ProgramaView, bool)
}

// ProgramService implementa los casos de uso de programas de distribución.
type ProgramService struct {
	gw      Gateway
	notes   *annotations.Store
	clock   clock.Clock
	opts    Options
	pending PendingCache
}

// SetPendingCache hace que PendientesAgua sirva el resultado de la revisión periódica.
// Debe llamarse antes de atender peticiones.
func (s *ProgramService) SetPendingCache(c PendingCache) {
	s.pending = c
}

// Hoy retorna la fecha operativa (UTC desplazada) en YYYY-MM-DD.
func (s *ProgramService) Hoy() string {
	return timeutil.Today(s.clock, s.opts.TimezoneOffsetHours)
}

// Listar aplica filtros, orden y paginación sobre los programas del gateway.
func (s *ProgramService) Listar(ctx context.Context, q internaldto.ListQuery) (internaldto.PageDTO[internaldto.ProgramaView], error) {
	filtered, notes, err := s.filtrados(ctx, q)
	if err != nil {
		return internaldto.PageDTO[internaldto.ProgramaView]{}, err
	}
	return pageOf(filtered, q, s.opts.DefaultPageSize, func(p models.DistributionProgram) internaldto.ProgramaView {
		return programaView(p, notes[p.ID])
	}), nil
}

// ListarEnriquecidos es Listar sobre /program/enriched: cada programa trae los nombres de
// horario, ruta, zona y calle ya resueltos por el gateway.
func (s *ProgramService) ListarEnriquecidos(ctx context.Context, q internaldto.ListQuery) (internaldto.PageDTO[internaldto.ProgramaEnriquecidoView], error) {
	items, err := s.gw.ListProgramsEnriched(ctx)
	if err != nil {
		return internaldto.PageDTO[internaldto.ProgramaEnriquecidoView]{}, helpers.AsAppError(err, "error consultando programas")
	}
	byID := make(map[string]models.EnrichedProgram, len(items))
	base := make([]models.DistributionProgram, 0, len(items))
	for _, it := range items {
		byID[it.ID] = it
		base = append(base, it.DistributionProgram)
	}
	notes := s.anotaciones(ctx)
	return pageOf(FilterPrograms(base, q), q, s.opts.DefaultPageSize, func(p models.DistributionProgram) internaldto.ProgramaEnriquecidoView {
		e := byID[p.ID]
		return internaldto.ProgramaEnriquecidoView{
			ProgramaView: programaView(p, notes[p.ID]),
			ScheduleName: e.ScheduleName,
			RouteName:    e.RouteName,
			ZoneName:     e.ZoneName,
			StreetName:   e.StreetName,
		}
	}), nil
}

// filtrados retorna la lista filtrada y ordenada (sin paginar) junto con las anotaciones.
func (s *ProgramService) filtrados(ctx context.Context, q internaldto.ListQuery) ([]models.DistributionProgram, map[string]string, error) {
	items, err := s.gw.ListPrograms(ctx, q.Eliminados)
	if err != nil {
		return nil, nil, helpers.AsAppError(err, "error consultando programas")
	}
	return FilterPrograms(items, q), s.anotaciones(ctx), nil
}

// FilterPrograms aplica el pipeline de programas: eliminados, estado, búsqueda por
// código o fecha y rango de fechas; ordena por fecha descendente y hora de inicio.
func FilterPrograms(items []models.DistributionProgram, q internaldto.ListQuery) []models.DistributionProgram {
	return listing.New[models.DistributionProgram]().
		Where(listing.ExcludeDeleted(q.Eliminados, func(p models.DistributionProgram) bool { return p.Deleted })).
		Where(listing.StatusBucket(listing.ParseBucket(q.Estado), status.ProgramActiveSet,
			func(p models.DistributionProgram) string { return p.Status })).
		Where(listing.Search(q.Q, func(p models.DistributionProgram) []string {
			return []string{p.ProgramCode, p.ProgramDate}
		})).
		Where(listing.DateRange(q.Desde, q.Hasta, func(p models.DistributionProgram) string { return p.ProgramDate })).
		SortBy(func(a, b models.DistributionProgram) bool {
			if a.ProgramDate != b.ProgramDate {
				return a.ProgramDate > b.ProgramDate
			}
			return a.PlannedStartTime < b.PlannedStartTime
		}).
		Apply(items)
}

// Obtener retorna el detalle del programa.
func (s *ProgramService) Obtener(ctx context.Context, id string) (*internaldto.ProgramaView, error) {
	p, err := s.gw.GetProgram(ctx, id)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando programa")
	}
	view := programaView(*p, s.nota(ctx, p.ID))
	return &view, nil
}

// Crear valida el formulario (solo la fecha de hoy) y crea el programa en estado PLANNED.
func (s *ProgramService) Crear(ctx context.Context, req internaldto.ProgramaRequest, actor internaldto.Actor) (*internaldto.ProgramaView, error) {
	form := req.ProgramForm
	form.Normalize()
	errs := validation.ValidateProgram(form, validation.ProgramRules{Today: s.Hoy(), RequireToday: true})
	if err := errs.Err(); err != nil {
		return nil, err
	}

	orgID := firstNonEmpty(strings.TrimSpace(req.OrganizationID), actor.OrganizationID)
	if orgID == "" {
		return nil, helpers.NewAppError(http.StatusBadRequest, "organización requerida", nil)
	}

	p := applyProgramForm(models.DistributionProgram{}, form)
	p.OrganizationID = orgID
	p.Status = models.ProgramStatusPlanned
	p.ResponsibleUserID = firstNonEmpty(strings.TrimSpace(req.ResponsibleUserID), actor.UserID)

	created, err := s.gw.CreateProgram(ctx, p)
	if err != nil {
		return nil, helpers.AsAppError(err, "error creando programa")
	}
	logs.Info("programa creado id=%s fecha=%s organizacion=%s", created.ID, created.ProgramDate, orgID)
	view := programaView(*created, "")
	return &view, nil
}

// Actualizar valida y reemplaza el programa. La regla de "solo hoy" aplica si la fecha cambió.
func (s *ProgramService) Actualizar(ctx context.Context, id string, req internaldto.ProgramaRequest, actor internaldto.Actor) (*internaldto.ProgramaView, error) {
	current, err := s.gw.GetProgram(ctx, id)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando programa")
	}

	form := req.ProgramForm
	form.Normalize()
	errs := validation.ValidateProgram(form, validation.ProgramRules{
		Today:        s.Hoy(),
		RequireToday: form.ProgramDate != current.ProgramDate,
	})
	if err := errs.Err(); err != nil {
		return nil, err
	}

	p := applyProgramForm(*current, form)
	if v := strings.TrimSpace(req.ResponsibleUserID); v != "" {
		p.ResponsibleUserID = v
	} else if p.ResponsibleUserID == "" {
		p.ResponsibleUserID = actor.UserID
	}

	updated, err := s.gw.UpdateProgram(ctx, id, p)
	if err != nil {
		return nil, helpers.AsAppError(err, "error actualizando programa")
	}
	if updated.ID == "" {
		updated = &p
	}
	view := programaView(*updated, s.nota(ctx, id))
	return &view, nil
}

// Eliminar hace la eliminación lógica o, con fisico, la definitiva.
func (s *ProgramService) Eliminar(ctx context.Context, id string, fisico bool) error {
	var err error
	if fisico {
		err = s.gw.DeleteProgramPhysical(ctx, id)
	} else {
		err = s.gw.DeleteProgram(ctx, id)
	}
	if err != nil {
		return helpers.AsAppError(err, "error eliminando programa")
	}
	if fisico && s.notes != nil {
		if err := s.notes.Delete(ctx, id); err != nil {
			logs.Warn("no se pudo limpiar la anotación del programa %s: %v", id, err)
		}
	}
	return nil
}

// CambiarEstado valida la transición y usa el endpoint que corresponde al estado destino.
func (s *ProgramService) CambiarEstado(ctx context.Context, id, target string) (*internaldto.ProgramaView, error) {
	target = strings.ToUpper(strings.TrimSpace(target))
	if !status.IsProgramStatus(target) {
		return nil, helpers.NewAppError(http.StatusBadRequest, fmt.Sprintf("estado inválido: %s", target), nil)
	}

	current, err := s.gw.GetProgram(ctx, id)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando programa")
	}
	if !status.CanTransition(current.Status, target) {
		return nil, helpers.NewAppError(http.StatusConflict,
			fmt.Sprintf("No se puede cambiar el estado de %s a %s",
				status.Label(current.Status, ""), status.Label(target, "")), nil)
	}

	switch status.EndpointFor(target) {
	case status.EndpointActivate:
		err = s.gw.ActivateProgram(ctx, id)
	case status.EndpointDeactivate:
		err = s.gw.DeactivateProgram(ctx, id)
	default:
		err = s.gw.SetProgramStatus(ctx, id, target)
	}
	if err != nil {
		return nil, helpers.AsAppError(err, "error cambiando estado del programa")
	}

	logs.Info("programa %s: %s → %s", id, current.Status, target)
	current.Status = target
	view := programaView(*current, s.nota(ctx, id))
	return &view, nil
}

// MarcarAgua registra localmente si se entregó agua; no se envía al gateway.
func (s *ProgramService) MarcarAgua(ctx context.Context, id, value string) error {
	if s.notes == nil {
		return helpers.NewAppError(http.StatusServiceUnavailable, "store de anotaciones no disponible", nil)
	}
	if !status.IsWaterAnnotation(value) {
		return helpers.NewAppError(http.StatusBadRequest,
			fmt.Sprintf("valor inválido, use %s o %s", models.WaterGiven, models.WaterNotGiven), nil)
	}
	if err := s.notes.Set(ctx, id, value); err != nil {
		return helpers.AsAppError(err, "error guardando anotación")
	}
	return nil
}

// QuitarAgua elimina la anotación del programa.
func (s *ProgramService) QuitarAgua(ctx context.Context, id string) error {
	if s.notes == nil {
		return nil
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		return helpers.AsAppError(err, "error eliminando anotación")
	}
	return nil
}

// Anotaciones retorna todas las anotaciones de agua.
func (s *ProgramService) Anotaciones(ctx context.Context) map[string]string {
	return s.anotaciones(ctx)
}

// PendientesAgua lista los programas de hoy cuya hora de fin ya pasó y que no tienen anotación.
// Sin Authorization propio se usa la última revisión periódica, que consulta el gateway con
// el token del servicio; con Authorization se calcula con la credencial del llamador.
func (s *ProgramService) PendientesAgua(ctx context.Context) ([]internaldto.ProgramaView, error) {
	if s.pending != nil && clients.CallerAuthorization(ctx) == "" {
		if cached, ok := s.pending.Pending(); ok {
			notes := s.anotaciones(ctx)
			out := make([]internaldto.ProgramaView, 0, len(cached))
			for _, p := range cached {
				if notes[p.ID] == "" {
					out = append(out, p)
				}
			}
			return out, nil
		}
	}
	return s.CalcularPendientesAgua(ctx)
}

// CalcularPendientesAgua consulta el gateway y calcula los pendientes en este momento.
func (s *ProgramService) CalcularPendientesAgua(ctx context.Context) ([]internaldto.ProgramaView, error) {
	items, err := s.gw.ListPrograms(ctx, false)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando programas")
	}
	notes := s.anotaciones(ctx)
	pending := PendingWater(items, notes, s.Hoy(), timeutil.CurrentTime(s.clock))
	out := make([]internaldto.ProgramaView, 0, len(pending))
	for _, p := range pending {
		out = append(out, programaView(p, ""))
	}
	return out, nil
}

// PendingWater selecciona los programas del día en estado activo cuya hora de fin
// planificada es anterior a now y que aún no tienen anotación de agua.
func PendingWater(programs []models.DistributionProgram, notes map[string]string, today, now string) []models.DistributionProgram {
	return listing.New[models.DistributionProgram]().
		Where(func(p models.DistributionProgram) bool {
			return !p.Deleted &&
				p.ProgramDate == today &&
				status.ProgramActiveSet[strings.ToUpper(p.Status)] &&
				notes[p.ID] == "" &&
				timeutil.IsGreaterThan(now, p.PlannedEndTime)
		}).
		Apply(programs)
}

func (s *ProgramService) anotaciones(ctx context.Context) map[string]string {
	if s.notes == nil {
		return map[string]string{}
	}
	all, err := s.notes.All(ctx)
	if err != nil {
		logs.Warn("no se pudieron leer las anotaciones de agua: %v", err)
		return map[string]string{}
	}
	return all
}

func (s *ProgramService) nota(ctx context.Context, id string) string {
	if s.notes == nil {
		return ""
	}
	v, _ := s.notes.Get(ctx, id)
	return v
}

func applyProgramForm(p models.DistributionProgram, f validation.ProgramForm) models.DistributionProgram {
	p.ProgramDate = f.ProgramDate
	p.ScheduleID = f.ScheduleID
	p.RouteID = f.RouteID
	p.ZoneID = f.ZoneID
	p.StreetID = f.StreetID
	p.PlannedStartTime = f.PlannedStartTime
	p.PlannedEndTime = f.PlannedEndTime
	p.ActualStartTime = f.ActualStartTime
	p.ActualEndTime = f.ActualEndTime
	p.Observations = f.Observations
	return p
}

func programaView(p models.DistributionProgram, note string) internaldto.ProgramaView {
	return internaldto.ProgramaView{
		DistributionProgram: p,
		WaterStatus:         note,
		StatusLabel:         status.Label(p.Status, note),
		BadgeClass:          status.BadgeClass(p.Status, note),
		DisplayDate:         timeutil.FormatDisplayDate(p.ProgramDate),
	}
}
