package helpers

import (
	"strings"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/google/uuid"
)

// RequestIDHeader es el header de correlación entre el MID y el gateway.
const RequestIDHeader = "X-Request-Id"

// ForwardHeaders copia los headers que deben viajar al gateway. Si la petición no trae
// X-Request-Id se genera uno y se devuelve también en la respuesta.
func ForwardHeaders(ctx *context.Context) map[string]string {
	headers := make(map[string]string)
	if ctx == nil {
		return headers
	}
	if auth := strings.TrimSpace(ctx.Input.Header("Authorization")); auth != "" {
		headers["Authorization"] = auth
	}
	if corr := strings.TrimSpace(ctx.Input.Header("X-Correlation-Id")); corr != "" {
		headers["X-Correlation-Id"] = corr
	}
	headers[RequestIDHeader] = RequestID(ctx)
	return headers
}

// RequestID retorna el id de la petición, generándolo una sola vez si no vino en el header.
func RequestID(ctx *context.Context) string {
	if id, ok := ctx.Input.GetData(RequestIDHeader).(string); ok && id != "" {
		return id
	}
	id := strings.TrimSpace(ctx.Input.Header(RequestIDHeader))
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Input.SetData(RequestIDHeader, id)
	ctx.Output.Header(RequestIDHeader, id)
	return id
}
