package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beego/beego/v2/server/web/context"
)

// ParamID extrae un identificador de ruta no vacío.
func ParamID(ctx *context.Context, name string) (string, error) {
	if ctx == nil {
		return "", fmt.Errorf("contexto nil")
	}
	raw := strings.TrimSpace(ctx.Input.Param(name))
	if raw == "" {
		return "", fmt.Errorf("parametro %s vacío", strings.TrimPrefix(name, ":"))
	}
	return raw, nil
}

// QueryBool interpreta un parámetro de consulta booleano ("true", "1", "si").
func QueryBool(ctx *context.Context, name string) bool {
	if ctx == nil {
		return false
	}
	raw := strings.ToLower(strings.TrimSpace(ctx.Input.Query(name)))
	if raw == "si" || raw == "sí" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}
