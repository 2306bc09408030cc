package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/models"
)

// fakeGateway guarda las entidades en memoria y registra las llamadas de estado.
type fakeGateway struct {
	mu        sync.Mutex
	programs  map[string]models.DistributionProgram
	routes    map[string]models.Route
	schedules map[string]models.Schedule
	orgs      map[string]models.Organization
	calls     []string
	seq       int
	failNext  error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		programs:  map[string]models.DistributionProgram{},
		routes:    map[string]models.Route{},
		schedules: map[string]models.Schedule{},
		orgs:      map[string]models.Organization{},
	}
}

func (f *fakeGateway) record(call string) error {
	f.calls = append(f.calls, call)
	if err := f.failNext; err != nil {
		f.failNext = nil
		return err
	}
	return nil
}

func (f *fakeGateway) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s%d", prefix, f.seq)
}

func notFound(what string) error {
	return &helpers.HTTPError{Status: http.StatusNotFound, Message: what + " no encontrado"}
}

func (f *fakeGateway) ListPrograms(_ context.Context, includeDeleted bool) ([]models.DistributionProgram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(fmt.Sprintf("ListPrograms(%v)", includeDeleted)); err != nil {
		return nil, err
	}
	out := make([]models.DistributionProgram, 0, len(f.programs))
	for _, p := range f.programs {
		if p.Deleted && !includeDeleted {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ListProgramsEnriched resuelve los nombres con los mapas del fake; nunca incluye eliminados.
func (f *fakeGateway) ListProgramsEnriched(_ context.Context) ([]models.EnrichedProgram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListProgramsEnriched"); err != nil {
		return nil, err
	}
	out := make([]models.EnrichedProgram, 0, len(f.programs))
	for _, p := range f.programs {
		if p.Deleted {
			continue
		}
		out = append(out, models.EnrichedProgram{
			DistributionProgram: p,
			RouteName:           f.routes[p.RouteID].RouteName,
			ScheduleName:        f.schedules[p.ScheduleID].ScheduleName,
		})
	}
	return out, nil
}

func (f *fakeGateway) GetProgram(_ context.Context, id string) (*models.DistributionProgram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetProgram " + id); err != nil {
		return nil, err
	}
	p, ok := f.programs[id]
	if !ok {
		return nil, notFound("programa")
	}
	return &p, nil
}

func (f *fakeGateway) CreateProgram(_ context.Context, p models.DistributionProgram) (*models.DistributionProgram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateProgram"); err != nil {
		return nil, err
	}
	p.ID = f.nextID("p")
	p.ProgramCode = "PRG-" + p.ID
	f.programs[p.ID] = p
	return &p, nil
}

func (f *fakeGateway) UpdateProgram(_ context.Context, id string, p models.DistributionProgram) (*models.DistributionProgram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateProgram " + id); err != nil {
		return nil, err
	}
	p.ID = id
	f.programs[id] = p
	return &p, nil
}

func (f *fakeGateway) DeleteProgram(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteProgram " + id); err != nil {
		return err
	}
	p := f.programs[id]
	p.Deleted = true
	f.programs[id] = p
	return nil
}

func (f *fakeGateway) DeleteProgramPhysical(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteProgramPhysical " + id); err != nil {
		return err
	}
	delete(f.programs, id)
	return nil
}

func (f *fakeGateway) setProgramStatus(call, id, st string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call + " " + id); err != nil {
		return err
	}
	p := f.programs[id]
	p.Status = st
	f.programs[id] = p
	return nil
}

func (f *fakeGateway) ActivateProgram(_ context.Context, id string) error {
	return f.setProgramStatus("ActivateProgram", id, models.ProgramStatusPlanned)
}

func (f *fakeGateway) DeactivateProgram(_ context.Context, id string) error {
	return f.setProgramStatus("DeactivateProgram", id, models.ProgramStatusCancelled)
}

func (f *fakeGateway) SetProgramStatus(_ context.Context, id, st string) error {
	return f.setProgramStatus("SetProgramStatus:"+st, id, st)
}

func (f *fakeGateway) ListRoutes(_ context.Context) ([]models.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListRoutes"); err != nil {
		return nil, err
	}
	out := make([]models.Route, 0, len(f.routes))
	for _, r := range f.routes {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeGateway) ListActiveRoutes(ctx context.Context) ([]models.Route, error) {
	all, err := f.ListRoutes(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, r := range all {
		if r.Status == models.StatusActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeGateway) LoadRoutesReference(ctx context.Context) ([]models.Route, error) {
	return f.ListRoutes(ctx)
}

func (f *fakeGateway) GetRoute(_ context.Context, id string) (*models.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetRoute " + id); err != nil {
		return nil, err
	}
	r, ok := f.routes[id]
	if !ok {
		return nil, notFound("ruta")
	}
	return &r, nil
}

func (f *fakeGateway) CreateRoute(_ context.Context, r models.Route) (*models.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateRoute"); err != nil {
		return nil, err
	}
	r.ID = f.nextID("r")
	f.routes[r.ID] = r
	return &r, nil
}

func (f *fakeGateway) UpdateRoute(_ context.Context, id string, r models.Route) (*models.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateRoute " + id); err != nil {
		return nil, err
	}
	r.ID = id
	f.routes[id] = r
	return &r, nil
}

func (f *fakeGateway) DeleteRoute(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.routes, id)
	return f.record("DeleteRoute " + id)
}

func (f *fakeGateway) setRouteStatus(call, id, st string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.routes[id]
	r.Status = st
	f.routes[id] = r
	return f.record(call + " " + id)
}

func (f *fakeGateway) ActivateRoute(_ context.Context, id string) error {
	return f.setRouteStatus("ActivateRoute", id, models.StatusActive)
}

func (f *fakeGateway) DeactivateRoute(_ context.Context, id string) error {
	return f.setRouteStatus("DeactivateRoute", id, models.StatusInactive)
}

func (f *fakeGateway) ListSchedules(_ context.Context) ([]models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListSchedules"); err != nil {
		return nil, err
	}
	out := make([]models.Schedule, 0, len(f.schedules))
	for _, s := range f.schedules {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeGateway) ListActiveSchedules(ctx context.Context) ([]models.Schedule, error) {
	all, err := f.ListSchedules(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, s := range all {
		if s.Status == models.StatusActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeGateway) GetSchedule(_ context.Context, id string) (*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetSchedule " + id); err != nil {
		return nil, err
	}
	s, ok := f.schedules[id]
	if !ok {
		return nil, notFound("horario")
	}
	return &s, nil
}

func (f *fakeGateway) CreateSchedule(_ context.Context, s models.Schedule) (*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateSchedule"); err != nil {
		return nil, err
	}
	s.ID = f.nextID("h")
	f.schedules[s.ID] = s
	return &s, nil
}

func (f *fakeGateway) UpdateSchedule(_ context.Context, id string, s models.Schedule) (*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateSchedule " + id); err != nil {
		return nil, err
	}
	s.ID = id
	f.schedules[id] = s
	return &s, nil
}

func (f *fakeGateway) DeleteSchedule(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.schedules, id)
	return f.record("DeleteSchedule " + id)
}

func (f *fakeGateway) setScheduleStatus(call, id, st string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.schedules[id]
	s.Status = st
	f.schedules[id] = s
	return f.record(call + " " + id)
}

func (f *fakeGateway) ActivateSchedule(_ context.Context, id string) error {
	return f.setScheduleStatus("ActivateSchedule", id, models.StatusActive)
}

func (f *fakeGateway) DeactivateSchedule(_ context.Context, id string) error {
	return f.setScheduleStatus("DeactivateSchedule", id, models.StatusInactive)
}

func (f *fakeGateway) GetOrganization(_ context.Context, id string) (*models.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetOrganization " + id); err != nil {
		return nil, err
	}
	o, ok := f.orgs[id]
	if !ok {
		return nil, notFound("organización")
	}
	return &o, nil
}

func (f *fakeGateway) lastCall() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}
