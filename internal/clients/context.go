package clients

import (
	"context"
	"strings"
)

type headersKey struct{}

// WithHeaders adjunta al contexto los headers de la petición entrante que deben
// reenviarse al gateway (Authorization, X-Request-Id, X-Correlation-Id).
func WithHeaders(ctx context.Context, headers map[string]string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, headersKey{}, headers)
}

// CallerAuthorization retorna el Authorization que trajo la petición entrante, o "".
func CallerAuthorization(ctx context.Context) string {
	return forwardedHeaders(ctx)["Authorization"]
}

func forwardedHeaders(ctx context.Context) map[string]string {
	out := make(map[string]string)
	if ctx == nil {
		return out
	}
	if h, ok := ctx.Value(headersKey{}).(map[string]string); ok {
		for k, v := range h {
			if v = strings.TrimSpace(v); v != "" {
				out[k] = v
			}
		}
	}
	return out
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
