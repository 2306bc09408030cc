package clients

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/beego/beego/v2/core/logs"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/internal/metrics"
	rootservices "github.com/udistrital/agua_mid/services"
)

// GatewayClient agrupa las operaciones contra el gateway REST de distribución de agua.
type GatewayClient struct {
	cfg     rootservices.Config
	limiter *rate.Limiter
	metrics *metrics.Metrics
	refs    singleflight.Group
}

var (
	gatewayClient     *GatewayClient
	gatewayClientOnce sync.Once
)

// Gateway retorna el cliente compartido construido con la configuración global.
func Gateway() *GatewayClient {
	gatewayClientOnce.Do(func() {
		gatewayClient = NewGatewayClient(rootservices.GetConfig(), metrics.Default())
	})
	return gatewayClient
}

// NewGatewayClient construye un cliente con limitador de tasa propio.
// Un GatewayRPS <= 0 deshabilita el limitador.
func NewGatewayClient(cfg rootservices.Config, m *metrics.Metrics) *GatewayClient {
	limit := rate.Inf
	if cfg.GatewayRPS > 0 {
		limit = rate.Limit(cfg.GatewayRPS)
	}
	burst := cfg.GatewayBurst
	if burst <= 0 {
		burst = 1
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	return &GatewayClient{
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, burst),
		metrics: m,
	}
}

// Config expone la configuración con la que se construyó el cliente.
func (c *GatewayClient) Config() rootservices.Config {
	return c.cfg
}

func (c *GatewayClient) endpoint(elems ...string) string {
	return rootservices.BuildURL(c.cfg.GatewayBaseURL, append([]string{c.cfg.GatewayPathPrefix}, elems...)...)
}

// referenceRetry es la política de las cargas de datos de referencia de horarios
// (organización y rutas): reintentos fijos ante cualquier fallo de red o HTTP.
func (c *GatewayClient) referenceRetry() helpers.RetryPolicy {
	return helpers.RetryPolicy{
		Attempts:    c.cfg.ReferenceRetries,
		Backoff:     c.cfg.ReferenceBackoff,
		ShouldRetry: helpers.IsTransportOrHTTPError,
	}
}

func (c *GatewayClient) call(ctx context.Context, resource, method, url string, in, out any, retry helpers.RetryPolicy) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctxErr(ctx); err != nil {
		return helpers.AsAppError(err, "")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return helpers.NewAppError(http.StatusServiceUnavailable, "Límite de peticiones al servidor alcanzado", err)
	}

	headers := rootservices.AddGatewayAuth(c.cfg, forwardedHeaders(ctx))
	if headers["X-Request-Id"] == "" {
		headers["X-Request-Id"] = uuid.NewString()
	}

	start := time.Now()
	err := helpers.Do(ctx, helpers.Request{
		Method:  method,
		URL:     url,
		Headers: headers,
		Body:    in,
		Timeout: c.cfg.RequestTimeout,
		Retry:   retry,
	}, out)
	elapsed := time.Since(start)

	if err != nil {
		appErr := helpers.AsAppError(err, "Error comunicándose con el servidor")
		c.metrics.ObserveGateway(resource, method, string(appErr.Kind), elapsed)
		if helpers.IsKind(appErr, helpers.KindCanceled) {
			logs.Debug("gateway %s %s cancelado por el cliente (request_id=%s)", method, url, headers["X-Request-Id"])
			return appErr
		}
		logs.Warn("gateway %s %s falló (request_id=%s, status=%d): %v", method, url, headers["X-Request-Id"], appErr.Status, err)
		return appErr
	}
	c.metrics.ObserveGateway(resource, method, "ok", elapsed)
	logs.Debug("gateway %s %s ok en %s (request_id=%s)", method, url, elapsed, headers["X-Request-Id"])
	return nil
}

// sharedKey separa las cargas compartidas por credencial: dos peticiones solo comparten
// resultado si el gateway las vería con el mismo Authorization.
func (c *GatewayClient) sharedKey(ctx context.Context, key string) string {
	auth := rootservices.AddGatewayAuth(c.cfg, forwardedHeaders(ctx))["Authorization"]
	sum := sha256.Sum256([]byte(auth))
	return key + "|" + hex.EncodeToString(sum[:8])
}

// sharedTimeout acota la llamada compartida: intentos más esperas de la política de referencia.
func (c *GatewayClient) sharedTimeout() time.Duration {
	attempts := time.Duration(max(c.cfg.ReferenceRetries, 0) + 1)
	return attempts*c.cfg.RequestTimeout + (attempts-1)*c.cfg.ReferenceBackoff
}

// shared ejecuta fn una sola vez por clave y credencial para llamadas concurrentes.
// fn corre con un contexto desligado de la cancelación de quien la inició; cada
// llamador deja de esperar cuando su propio contexto termina.
func shared[T any](ctx context.Context, c *GatewayClient, key string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if ctx == nil {
		ctx = context.Background()
	}
	ch := c.refs.DoChan(c.sharedKey(ctx, key), func() (any, error) {
		detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.sharedTimeout())
		defer cancel()
		return fn(detached)
	})
	select {
	case <-ctx.Done():
		return zero, helpers.AsAppError(ctx.Err(), "")
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		out, ok := res.Val.(T)
		if !ok {
			return zero, errors.New("tipo inesperado en carga compartida")
		}
		return out, nil
	}
}
