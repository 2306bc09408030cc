package services

import (
	"context"
	"sync"

	"github.com/beego/beego/v2/core/logs"

	"github.com/udistrital/agua_mid/internal/annotations"
	"github.com/udistrital/agua_mid/internal/clients"
	"github.com/udistrital/agua_mid/internal/clock"
	internaldto "github.com/udistrital/agua_mid/internal/dto"
	"github.com/udistrital/agua_mid/internal/listing"
	"github.com/udistrital/agua_mid/models"
	rootservices "github.com/udistrital/agua_mid/services"
)

// Gateway es el subconjunto del gateway REST que usan los casos de uso.
type Gateway interface {
	ListPrograms(ctx context.Context, includeDeleted bool) ([]models.DistributionProgram, error)
	ListProgramsEnriched(ctx context.Context) ([]models.EnrichedProgram, error)
	GetProgram(ctx context.Context, id string) (*models.DistributionProgram, error)
	CreateProgram(ctx context.Context, p models.DistributionProgram) (*models.DistributionProgram, error)
	UpdateProgram(ctx context.Context, id string, p models.DistributionProgram) (*models.DistributionProgram, error)
	DeleteProgram(ctx context.Context, id string) error
	DeleteProgramPhysical(ctx context.Context, id string) error
	ActivateProgram(ctx context.Context, id string) error
	DeactivateProgram(ctx context.Context, id string) error
	SetProgramStatus(ctx context.Context, id, status string) error

	ListRoutes(ctx context.Context) ([]models.Route, error)
	ListActiveRoutes(ctx context.Context) ([]models.Route, error)
	LoadRoutesReference(ctx context.Context) ([]models.Route, error)
	GetRoute(ctx context.Context, id string) (*models.Route, error)
	CreateRoute(ctx context.Context, r models.Route) (*models.Route, error)
	UpdateRoute(ctx context.Context, id string, r models.Route) (*models.Route, error)
	DeleteRoute(ctx context.Context, id string) error
	ActivateRoute(ctx context.Context, id string) error
	DeactivateRoute(ctx context.Context, id string) error

	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	ListActiveSchedules(ctx context.Context) ([]models.Schedule, error)
	GetSchedule(ctx context.Context, id string) (*models.Schedule, error)
	CreateSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, id string, s models.Schedule) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
	ActivateSchedule(ctx context.Context, id string) error
	DeactivateSchedule(ctx context.Context, id string) error

	GetOrganization(ctx context.Context, id string) (*models.Organization, error)
}

// Options parametriza los casos de uso.
type Options struct {
	TimezoneOffsetHours int
	DefaultPageSize     int
	LogoPath            string
}

// Services agrupa los casos de uso del MID.
type Services struct {
	Programas      *ProgramService
	Rutas          *RouteService
	Horarios       *ScheduleService
	Organizaciones *OrganizationService
	Reportes       *ReportService
}

// New arma los casos de uso sobre un gateway, el store de anotaciones y un reloj.
func New(gw Gateway, notes *annotations.Store, c clock.Clock, opts Options) *Services {
	if c == nil {
		c = clock.RealClock{}
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = listing.DefaultPageSize
	}
	programs := &ProgramService{gw: gw, notes: notes, clock: c, opts: opts}
	return &Services{
		Programas:      programs,
		Rutas:          &RouteService{gw: gw, opts: opts},
		Horarios:       &ScheduleService{gw: gw, opts: opts},
		Organizaciones: &OrganizationService{gw: gw},
		Reportes:       &ReportService{gw: gw, programs: programs, clock: c, opts: opts},
	}
}

var (
	defaultServices *Services
	defaultOnce     sync.Once
)

// Default construye (una sola vez) los casos de uso con la configuración global.
func Default() *Services {
	defaultOnce.Do(func() {
		cfg := rootservices.GetConfig()
		notes, err := annotations.NewStore(cfg.AnnotationsAdapter, cfg.AnnotationsConfig)
		if err != nil {
			logs.Error("no se pudo abrir el store de anotaciones %s, se usa memoria: %v", cfg.AnnotationsAdapter, err)
			notes, err = annotations.NewStore("memory", `{"interval":60}`)
			if err != nil {
				panic(err)
			}
		}
		defaultServices = New(clients.Gateway(), notes, clock.RealClock{}, Options{
			TimezoneOffsetHours: cfg.TimezoneOffsetHours,
			DefaultPageSize:     cfg.DefaultPageSize,
			LogoPath:            cfg.LogoPath,
		})
	})
	return defaultServices
}

// pageOf pagina los registros filtrados y convierte solo los de la página solicitada.
func pageOf[T, V any](items []T, q internaldto.ListQuery, defaultSize int, view func(T) V) internaldto.PageDTO[V] {
	size := q.Size
	if size <= 0 {
		size = defaultSize
	}
	p := listing.Paginate(items, q.Page, size)
	out := make([]V, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, view(it))
	}
	return internaldto.PageDTO[V]{
		Items:      out,
		Page:       p.Page,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
