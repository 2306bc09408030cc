package helpers

import (
	"strconv"
	"strings"
)

// MaxPageSize es el tope de registros por página aceptado en los listados.
const MaxPageSize = 100

// ParsePageSize lee page y size del query. Un size ausente o inválido queda en 0 para que
// el servicio use el tamaño configurado (default_page_size).
func ParsePageSize(pageStr, sizeStr string) (page, size int) {
	page = 1
	if v, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(sizeStr)); err == nil && v > 0 {
		size = min(v, MaxPageSize)
	}
	return page, size
}
