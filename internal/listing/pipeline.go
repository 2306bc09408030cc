// Package listing implementa el filtrado, orden y paginación en memoria común a los
// listados de programas, rutas y horarios. Todas las operaciones son funciones puras
// sobre (lista, filtros): no modifican la entrada ni guardan estado.
package listing

import (
	"sort"
	"strings"
)

// Predicate decide si un registro se conserva.
type Predicate[T any] func(T) bool

// Pipeline encadena predicados y un orden opcional.
type Pipeline[T any] struct {
	predicates []Predicate[T]
	less       func(a, b T) bool
}

// New crea un pipeline vacío.
func New[T any]() *Pipeline[T] {
	return &Pipeline[T]{}
}

// Where agrega un predicado; los predicados nil se ignoran.
func (p *Pipeline[T]) Where(pred Predicate[T]) *Pipeline[T] {
	if pred != nil {
		p.predicates = append(p.predicates, pred)
	}
	return p
}

// SortBy define un orden estable sobre el resultado filtrado.
func (p *Pipeline[T]) SortBy(less func(a, b T) bool) *Pipeline[T] {
	p.less = less
	return p
}

// Apply devuelve una lista nueva con los registros que cumplen todos los predicados.
func (p *Pipeline[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, pred := range p.predicates {
			if !pred(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	if p.less != nil {
		sort.SliceStable(out, func(i, j int) bool { return p.less(out[i], out[j]) })
	}
	return out
}

// Bucket es el filtro de estado de los listados.
type Bucket string

const (
	BucketAll      Bucket = "all"
	BucketActive   Bucket = "active"
	BucketInactive Bucket = "inactive"
)

// ParseBucket acepta los valores en inglés o español; cualquier otro valor equivale a "all".
func ParseBucket(raw string) Bucket {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active", "activos", "activo":
		return BucketActive
	case "inactive", "inactivos", "inactivo":
		return BucketInactive
	default:
		return BucketAll
	}
}

// StatusBucket conserva los registros cuyo estado pertenece (o no) al conjunto activo.
func StatusBucket[T any](b Bucket, activeSet map[string]bool, statusOf func(T) string) Predicate[T] {
	if b != BucketActive && b != BucketInactive {
		return nil
	}
	wantActive := b == BucketActive
	return func(it T) bool {
		return activeSet[strings.ToUpper(strings.TrimSpace(statusOf(it)))] == wantActive
	}
}

// Search compara sin distinguir mayúsculas contra un conjunto fijo de campos.
func Search[T any](term string, fields func(T) []string) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	return func(it T) bool {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}
}

// DateRange filtra por fecha YYYY-MM-DD de forma inclusiva. La comparación de cadenas es
// válida porque el formato ISO está rellenado con ceros.
func DateRange[T any](from, to string, dateOf func(T) string) Predicate[T] {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" && to == "" {
		return nil
	}
	return func(it T) bool {
		d := dateOf(it)
		if from != "" && d < from {
			return false
		}
		if to != "" && d > to {
			return false
		}
		return true
	}
}

// ExcludeDeleted oculta los registros eliminados lógicamente salvo que se pidan.
func ExcludeDeleted[T any](showDeleted bool, deletedOf func(T) bool) Predicate[T] {
	if showDeleted {
		return nil
	}
	return func(it T) bool { return !deletedOf(it) }
}
