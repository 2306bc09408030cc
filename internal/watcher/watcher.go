// Package watcher revisa periódicamente los programas del día cuya hora de fin ya pasó
// sin confirmación de entrega de agua.
package watcher

import (
	"context"
	"sync"

	"github.com/beego/beego/v2/core/logs"
	"github.com/beego/beego/v2/task"

	internaldto "github.com/udistrital/agua_mid/internal/dto"
	"github.com/udistrital/agua_mid/internal/metrics"
)

// TaskName identifica la tarea en el administrador de tareas de beego.
const TaskName = "water_check"

// DefaultSpec ejecuta la revisión cada 30 segundos.
const DefaultSpec = "0/30 * * * * *"

// PendingSource calcula los programas pendientes de confirmación.
type PendingSource interface {
	CalcularPendientesAgua(ctx context.Context) ([]internaldto.ProgramaView, error)
}

// Watcher publica el último conjunto de programas pendientes.
type Watcher struct {
	src     PendingSource
	metrics *metrics.Metrics
	spec    string

	mu      sync.Mutex
	running bool
	fresh   bool
	pending []internaldto.ProgramaView
}

// New construye el watcher; spec vacío usa DefaultSpec.
func New(src PendingSource, m *metrics.Metrics, spec string) *Watcher {
	if spec == "" {
		spec = DefaultSpec
	}
	return &Watcher{src: src, metrics: m, spec: spec}
}

// Start registra la tarea y arranca el administrador. Llamarlo dos veces no duplica la tarea.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	task.AddTask(TaskName, task.NewTask(TaskName, w.spec, w.Tick))
	task.StartTask()
	w.running = true
	logs.Info("revisión de entrega de agua activa (%s)", w.spec)
}

// Stop elimina la tarea; es seguro llamarlo aunque no se haya iniciado.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	task.DeleteTask(TaskName)
	w.running = false
	w.fresh = false
}

// Running indica si la tarea está registrada.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Tick ejecuta una revisión.
func (w *Watcher) Tick(ctx context.Context) error {
	pending, err := w.src.CalcularPendientesAgua(ctx)
	if err != nil {
		w.mu.Lock()
		w.fresh = false
		w.mu.Unlock()
		logs.Warn("revisión de agua fallida: %v", err)
		return err
	}

	w.mu.Lock()
	w.pending = pending
	w.fresh = true
	w.mu.Unlock()

	if w.metrics != nil {
		w.metrics.WaterPending.Set(float64(len(pending)))
	}
	for _, p := range pending {
		logs.Info("programa %s (%s) terminó a las %s sin confirmación de agua", p.ID, p.ProgramCode, p.PlannedEndTime)
	}
	return nil
}

// Pending retorna una copia del último resultado. ok es false si la última revisión
// falló o aún no se ha ejecutado ninguna.
func (w *Watcher) Pending() (items []internaldto.ProgramaView, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]internaldto.ProgramaView, len(w.pending))
	copy(out, w.pending)
	return out, w.fresh
}
