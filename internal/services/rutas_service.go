package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/udistrital/agua_mid/helpers"
	internaldto "github.com/udistrital/agua_mid/internal/dto"
	"github.com/udistrital/agua_mid/internal/listing"
	"github.com/udistrital/agua_mid/internal/status"
	"github.com/udistrital/agua_mid/internal/validation"
	"github.com/udistrital/agua_mid/models"
)

// RouteService implementa los casos de uso de rutas.
type RouteService struct {
	gw   Gateway
	opts Options
}

// Listar filtra por estado y por código o nombre, y pagina.
func (s *RouteService) Listar(ctx context.Context, q internaldto.ListQuery) (internaldto.PageDTO[internaldto.RutaView], error) {
	items, err := s.gw.ListRoutes(ctx)
	if err != nil {
		return internaldto.PageDTO[internaldto.RutaView]{}, helpers.AsAppError(err, "error consultando rutas")
	}
	return pageOf(FilterRoutes(items, q), q, s.opts.DefaultPageSize, rutaView), nil
}

// FilterRoutes aplica el pipeline de rutas.
func FilterRoutes(items []models.Route, q internaldto.ListQuery) []models.Route {
	return listing.New[models.Route]().
		Where(listing.StatusBucket(listing.ParseBucket(q.Estado), status.EntityActiveSet,
			func(r models.Route) string { return r.Status })).
		Where(listing.Search(q.Q, func(r models.Route) []string { return []string{r.RouteCode, r.RouteName} })).
		Apply(items)
}

// Activas lista las rutas activas para los selectores de formularios.
func (s *RouteService) Activas(ctx context.Context) ([]internaldto.RutaView, error) {
	items, err := s.gw.ListActiveRoutes(ctx)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando rutas activas")
	}
	out := make([]internaldto.RutaView, 0, len(items))
	for _, r := range items {
		out = append(out, rutaView(r))
	}
	return out, nil
}

// Obtener retorna el detalle de la ruta.
func (s *RouteService) Obtener(ctx context.Context, id string) (*internaldto.RutaView, error) {
	r, err := s.gw.GetRoute(ctx, id)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando ruta")
	}
	view := rutaView(*r)
	return &view, nil
}

// Crear valida la ruta, asigna el orden de las zonas y calcula la duración total.
func (s *RouteService) Crear(ctx context.Context, req internaldto.RutaRequest, actor internaldto.Actor) (*internaldto.RutaView, error) {
	if err := validation.ValidateRoute(req.RouteForm).Err(); err != nil {
		return nil, err
	}
	orgID := firstNonEmpty(strings.TrimSpace(req.OrganizationID), actor.OrganizationID)
	if orgID == "" {
		return nil, helpers.NewAppError(http.StatusBadRequest, "organización requerida", nil)
	}

	r := BuildRoute(models.Route{}, req.RouteForm)
	r.OrganizationID = orgID
	r.Status = models.StatusActive
	r.ResponsibleUserID = firstNonEmpty(strings.TrimSpace(req.ResponsibleUserID), actor.UserID)

	created, err := s.gw.CreateRoute(ctx, r)
	if err != nil {
		return nil, helpers.AsAppError(err, "error creando ruta")
	}
	view := rutaView(*created)
	return &view, nil
}

// Actualizar valida y reemplaza la ruta conservando los campos no editables.
func (s *RouteService) Actualizar(ctx context.Context, id string, req internaldto.RutaRequest, actor internaldto.Actor) (*internaldto.RutaView, error) {
	if err := validation.ValidateRoute(req.RouteForm).Err(); err != nil {
		return nil, err
	}
	current, err := s.gw.GetRoute(ctx, id)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando ruta")
	}
	r := BuildRoute(*current, req.RouteForm)
	if v := strings.TrimSpace(req.ResponsibleUserID); v != "" {
		r.ResponsibleUserID = v
	} else if r.ResponsibleUserID == "" {
		r.ResponsibleUserID = actor.UserID
	}

	updated, err := s.gw.UpdateRoute(ctx, id, r)
	if err != nil {
		return nil, helpers.AsAppError(err, "error actualizando ruta")
	}
	if updated.ID == "" {
		updated = &r
	}
	view := rutaView(*updated)
	return &view, nil
}

// Eliminar elimina la ruta.
func (s *RouteService) Eliminar(ctx context.Context, id string) error {
	if err := s.gw.DeleteRoute(ctx, id); err != nil {
		return helpers.AsAppError(err, "error eliminando ruta")
	}
	return nil
}

// Activar activa la ruta.
func (s *RouteService) Activar(ctx context.Context, id string) error {
	if err := s.gw.ActivateRoute(ctx, id); err != nil {
		return helpers.AsAppError(err, "error activando ruta")
	}
	return nil
}

// Desactivar desactiva la ruta.
func (s *RouteService) Desactivar(ctx context.Context, id string) error {
	if err := s.gw.DeactivateRoute(ctx, id); err != nil {
		return helpers.AsAppError(err, "error desactivando ruta")
	}
	return nil
}

// BuildRoute copia el formulario sobre r: order 1..n en el orden enviado y
// totalEstimatedDuration como suma de las duraciones.
func BuildRoute(r models.Route, f validation.RouteForm) models.Route {
	r.RouteName = strings.TrimSpace(f.RouteName)
	r.Zones = make([]models.RouteZone, 0, len(f.Zones))
	r.TotalEstimatedDuration = 0
	for i, z := range f.Zones {
		r.Zones = append(r.Zones, models.RouteZone{
			ZoneID:            strings.TrimSpace(z.ZoneID),
			Order:             i + 1,
			EstimatedDuration: z.EstimatedDuration,
		})
		r.TotalEstimatedDuration += z.EstimatedDuration
	}
	return r
}

func rutaView(r models.Route) internaldto.RutaView {
	return internaldto.RutaView{
		Route:       r,
		StatusLabel: status.Label(r.Status, ""),
		BadgeClass:  status.BadgeClass(r.Status, ""),
	}
}
