// Package metrics expone las métricas Prometheus del MID.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa las métricas de la aplicación sobre un registro propio.
type Metrics struct {
	Registry *prometheus.Registry

	// HTTP entrante
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Llamadas al gateway
	GatewayRequestsTotal   *prometheus.CounterVec
	GatewayRequestDuration *prometheus.HistogramVec

	// Programas con hora de fin vencida y sin anotación de agua
	WaterPending prometheus.Gauge
}

const startKey = "__metrics_start"

var (
	defaultMetrics *Metrics
	defaultOnce    sync.Once
)

// Default retorna la instancia compartida por el proceso.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New()
	})
	return defaultMetrics
}

// New crea y registra todas las métricas en un registro nuevo.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agua_mid_http_requests_total",
			Help: "Total de peticiones HTTP atendidas",
		},
		[]string{"method", "path", "status"},
	)
	httpRequestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agua_mid_http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	gatewayRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agua_mid_gateway_requests_total",
			Help: "Total de llamadas al gateway REST por recurso y resultado",
		},
		[]string{"resource", "method", "outcome"},
	)
	gatewayRequestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agua_mid_gateway_request_duration_seconds",
			Help:    "Latencia de las llamadas al gateway REST",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource", "method"},
	)
	waterPending := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "agua_mid_water_pending_programs",
		Help: "Programas del día con hora de fin vencida y sin confirmación de agua",
	})

	registry.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		gatewayRequestsTotal,
		gatewayRequestDuration,
		waterPending,
	)

	return &Metrics{
		Registry:               registry,
		HTTPRequestsTotal:      httpRequestsTotal,
		HTTPRequestDuration:    httpRequestDuration,
		GatewayRequestsTotal:   gatewayRequestsTotal,
		GatewayRequestDuration: gatewayRequestDuration,
		WaterPending:           waterPending,
	}
}

// ObserveGateway registra una llamada al gateway. outcome es "ok" o el ErrorKind del fallo.
func (m *Metrics) ObserveGateway(resource, method, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.GatewayRequestsTotal.WithLabelValues(resource, method, outcome).Inc()
	m.GatewayRequestDuration.WithLabelValues(resource, method).Observe(elapsed.Seconds())
}

// StartFilter marca el inicio de la petición (posición BeforeRouter).
func (m *Metrics) StartFilter(ctx *context.Context) {
	ctx.Input.SetData(startKey, time.Now())
}

// FinishFilter registra la petición (posición FinishRouter, sin returnOnOutput).
func (m *Metrics) FinishFilter(ctx *context.Context) {
	path := "unmatched"
	if pattern, ok := ctx.Input.GetData("RouterPattern").(string); ok && pattern != "" {
		path = pattern
	}
	status := ctx.ResponseWriter.Status
	if status == 0 {
		status = 200
	}
	method := ctx.Input.Method()
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	if start, ok := ctx.Input.GetData(startKey).(time.Time); ok {
		m.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
