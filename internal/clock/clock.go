// Package clock abstrae la hora del sistema para poder fijarla en pruebas.
package clock

import (
	"sync"
	"time"
)

// Clock entrega la hora actual.
type Clock interface {
	Now() time.Time
}

// RealClock usa la hora del sistema.
type RealClock struct{}

// Now retorna la hora del sistema.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock es un reloj controlable y seguro para uso concurrente en pruebas.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

// NewMockClock crea un MockClock fijado en t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// Now retorna la hora fijada.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// Set cambia la hora fijada.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance mueve el reloj d hacia adelante (o atrás si es negativo).
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
