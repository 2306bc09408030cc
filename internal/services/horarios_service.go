package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/beego/beego/v2/core/logs"
	"golang.org/x/sync/errgroup"

	"github.com/udistrital/agua_mid/helpers"
	internaldto "github.com/udistrital/agua_mid/internal/dto"
	"github.com/udistrital/agua_mid/internal/listing"
	"github.com/udistrital/agua_mid/internal/status"
	"github.com/udistrital/agua_mid/internal/timeutil"
	"github.com/udistrital/agua_mid/internal/validation"
	"github.com/udistrital/agua_mid/models"
)

// ScheduleService implementa los casos de uso de horarios.
type ScheduleService struct {
	gw   Gateway
	opts Options
}

// Listar filtra por estado y por código o nombre, y pagina.
func (s *ScheduleService) Listar(ctx context.Context, q internaldto.ListQuery) (internaldto.PageDTO[internaldto.HorarioView], error) {
	items, err := s.gw.ListSchedules(ctx)
	if err != nil {
		return internaldto.PageDTO[internaldto.HorarioView]{}, helpers.AsAppError(err, "error consultando horarios")
	}
	return pageOf(FilterSchedules(items, q), q, s.opts.DefaultPageSize, horarioView), nil
}

// FilterSchedules aplica el pipeline de horarios.
func FilterSchedules(items []models.Schedule, q internaldto.ListQuery) []models.Schedule {
	return listing.New[models.Schedule]().
		Where(listing.StatusBucket(listing.ParseBucket(q.Estado), status.EntityActiveSet,
			func(h models.Schedule) string { return h.Status })).
		Where(listing.Search(q.Q, func(h models.Schedule) []string { return []string{h.ScheduleCode, h.ScheduleName} })).
		Apply(items)
}

// Activos lista los horarios activos para el formulario de programas.
func (s *ScheduleService) Activos(ctx context.Context) ([]internaldto.HorarioView, error) {
	items, err := s.gw.ListActiveSchedules(ctx)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando horarios activos")
	}
	out := make([]internaldto.HorarioView, 0, len(items))
	for _, h := range items {
		out = append(out, horarioView(h))
	}
	return out, nil
}

// Referencias carga en paralelo la organización y las rutas que usa el formulario de horarios.
// Si una de las dos falla se cancela la otra.
func (s *ScheduleService) Referencias(ctx context.Context, organizationID string) (*internaldto.HorarioReferencias, error) {
	var refs internaldto.HorarioReferencias
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		org, err := s.gw.GetOrganization(gctx, organizationID)
		if err != nil {
			return helpers.AsAppError(err, "error consultando organización")
		}
		refs.Organization = org
		return nil
	})
	g.Go(func() error {
		routes, err := s.gw.LoadRoutesReference(gctx)
		if err != nil {
			return helpers.AsAppError(err, "error consultando rutas")
		}
		refs.Routes = routes
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &refs, nil
}

// Obtener retorna el detalle del horario.
func (s *ScheduleService) Obtener(ctx context.Context, id string) (*internaldto.HorarioView, error) {
	h, err := s.gw.GetSchedule(ctx, id)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando horario")
	}
	view := horarioView(*h)
	return &view, nil
}

// Crear valida el horario y calcula durationHours.
func (s *ScheduleService) Crear(ctx context.Context, req internaldto.HorarioRequest, actor internaldto.Actor) (*internaldto.HorarioView, error) {
	if err := validation.ValidateSchedule(req.ScheduleForm).Err(); err != nil {
		return nil, err
	}
	orgID := firstNonEmpty(strings.TrimSpace(req.OrganizationID), actor.OrganizationID)
	if orgID == "" {
		return nil, helpers.NewAppError(http.StatusBadRequest, "organización requerida", nil)
	}

	h := BuildSchedule(models.Schedule{}, req.ScheduleForm)
	h.OrganizationID = orgID
	h.Status = models.StatusActive

	created, err := s.gw.CreateSchedule(ctx, h)
	if err != nil {
		return nil, helpers.AsAppError(err, "error creando horario")
	}
	logs.Info("horario creado id=%s duracion=%.2f", created.ID, created.DurationHours)
	view := horarioView(*created)
	return &view, nil
}

// Actualizar valida y reemplaza el horario.
func (s *ScheduleService) Actualizar(ctx context.Context, id string, req internaldto.HorarioRequest) (*internaldto.HorarioView, error) {
	if err := validation.ValidateSchedule(req.ScheduleForm).Err(); err != nil {
		return nil, err
	}
	current, err := s.gw.GetSchedule(ctx, id)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando horario")
	}
	h := BuildSchedule(*current, req.ScheduleForm)
	updated, err := s.gw.UpdateSchedule(ctx, id, h)
	if err != nil {
		return nil, helpers.AsAppError(err, "error actualizando horario")
	}
	if updated.ID == "" {
		updated = &h
	}
	view := horarioView(*updated)
	return &view, nil
}

// Eliminar elimina el horario.
func (s *ScheduleService) Eliminar(ctx context.Context, id string) error {
	if err := s.gw.DeleteSchedule(ctx, id); err != nil {
		return helpers.AsAppError(err, "error eliminando horario")
	}
	return nil
}

// Activar activa el horario.
func (s *ScheduleService) Activar(ctx context.Context, id string) error {
	if err := s.gw.ActivateSchedule(ctx, id); err != nil {
		return helpers.AsAppError(err, "error activando horario")
	}
	return nil
}

// Desactivar desactiva el horario.
func (s *ScheduleService) Desactivar(ctx context.Context, id string) error {
	if err := s.gw.DeactivateSchedule(ctx, id); err != nil {
		return helpers.AsAppError(err, "error desactivando horario")
	}
	return nil
}

// BuildSchedule copia el formulario sobre h con la duración calculada. Los días quedan en
// mayúsculas, sin repetir y en el orden de la semana.
func BuildSchedule(h models.Schedule, f validation.ScheduleForm) models.Schedule {
	h.ScheduleName = strings.TrimSpace(f.ScheduleName)
	h.ZoneID = strings.TrimSpace(f.ZoneID)
	h.StreetID = strings.TrimSpace(f.StreetID)
	selected := make(map[string]bool, len(f.DaysOfWeek))
	for _, d := range f.DaysOfWeek {
		selected[strings.ToUpper(strings.TrimSpace(d))] = true
	}
	h.DaysOfWeek = make([]string, 0, len(selected))
	for _, d := range models.WeekDays {
		if selected[d] {
			h.DaysOfWeek = append(h.DaysOfWeek, d)
		}
	}
	h.StartTime = strings.TrimSpace(f.StartTime)
	h.EndTime = strings.TrimSpace(f.EndTime)
	h.DurationHours = timeutil.DurationHours(h.StartTime, h.EndTime)
	return h
}

func horarioView(h models.Schedule) internaldto.HorarioView {
	return internaldto.HorarioView{
		Schedule:      h,
		StatusLabel:   status.Label(h.Status, ""),
		BadgeClass:    status.BadgeClass(h.Status, ""),
		DurationLabel: timeutil.FormatHours(h.DurationHours),
	}
}
