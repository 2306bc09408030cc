package watcher

import (
	"context"
	"errors"
	"testing"

	"github.com/beego/beego/v2/task"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldto "github.com/udistrital/agua_mid/internal/dto"
	"github.com/udistrital/agua_mid/internal/metrics"
	"github.com/udistrital/agua_mid/models"
)

type stubSource struct {
	items []internaldto.ProgramaView
	err   error
	calls int
}

func (s *stubSource) CalcularPendientesAgua(context.Context) ([]internaldto.ProgramaView, error) {
	s.calls++
	return s.items, s.err
}

func view(id string) internaldto.ProgramaView {
	return internaldto.ProgramaView{DistributionProgram: models.DistributionProgram{ID: id, PlannedEndTime: "08:00"}}
}

func TestTick_PublishesPending(t *testing.T) {
	src := &stubSource{items: []internaldto.ProgramaView{view("p1"), view("p2")}}
	m := metrics.New()
	w := New(src, m, "")

	require.NoError(t, w.Tick(context.Background()))
	items, _ := w.Pending()
	assert.Len(t, items, 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.WaterPending))

	src.items = nil
	require.NoError(t, w.Tick(context.Background()))
	items, _ = w.Pending()
	assert.Empty(t, items)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.WaterPending))
}

func TestTick_KeepsLastResultOnError(t *testing.T) {
	src := &stubSource{items: []internaldto.ProgramaView{view("p1")}}
	w := New(src, nil, "")
	require.NoError(t, w.Tick(context.Background()))

	src.err = errors.New("gateway caído")
	assert.Error(t, w.Tick(context.Background()))
	items, ok := w.Pending()
	assert.False(t, ok)
	assert.Len(t, items, 1)

	src.err = nil
	require.NoError(t, w.Tick(context.Background()))
	_, ok = w.Pending()
	assert.True(t, ok)
}

func TestStartStop(t *testing.T) {
	t.Cleanup(task.StopTask)
	w := New(&stubSource{}, nil, "0 0 3 * * *")
	assert.Equal(t, "0 0 3 * * *", w.spec)

	w.Start()
	w.Start()
	assert.True(t, w.Running())

	require.NoError(t, w.Tick(context.Background()))
	w.Stop()
	assert.False(t, w.Running())
	_, ok := w.Pending()
	assert.False(t, ok)
	w.Stop()
}

func TestDefaultSpec(t *testing.T) {
	assert.Equal(t, DefaultSpec, New(&stubSource{}, nil, "").spec)
}
