// Package annotations guarda la anotación local "agua entregada" de cada programa.
//
// Precedencia: si un programa tiene anotación, la etiqueta y la clase visual mostradas
// salen de la anotación (Con Agua / Sin Agua) y no del estado del backend. La anotación
// nunca se envía al gateway. Todas las anotaciones viven en una sola clave como un objeto
// JSON programId → estado; la última escritura gana.
package annotations

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/beego/beego/v2/client/cache"
	"github.com/beego/beego/v2/core/logs"

	"github.com/udistrital/agua_mid/internal/status"
)

// StorageKey es la clave única donde se persiste el mapa de anotaciones.
const StorageKey = "water_status"

// Store lee y escribe anotaciones sobre un adaptador de caché de beego.
type Store struct {
	backend cache.Cache
	mu      sync.Mutex
}

// NewStore crea el store sobre el adaptador indicado ("memory" o "file").
func NewStore(adapter, config string) (*Store, error) {
	if strings.TrimSpace(adapter) == "" {
		adapter = "memory"
	}
	c, err := cache.NewCache(adapter, config)
	if err != nil {
		return nil, fmt.Errorf("annotations cache %s: %w", adapter, err)
	}
	return NewStoreWithCache(c), nil
}

// NewStoreWithCache permite inyectar un cache.Cache ya construido.
func NewStoreWithCache(c cache.Cache) *Store {
	return &Store{backend: c}
}

// All retorna una copia de todas las anotaciones.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get retorna la anotación del programa, o "" si no tiene.
func (s *Store) Get(ctx context.Context, programID string) (string, error) {
	all, err := s.All(ctx)
	if err != nil {
		return "", err
	}
	return all[programID], nil
}

// Set registra CON_AGUA o SIN_AGUA para el programa.
func (s *Store) Set(ctx context.Context, programID, value string) error {
	value = strings.ToUpper(strings.TrimSpace(value))
	if !status.IsWaterAnnotation(value) {
		return fmt.Errorf("anotación inválida %q", value)
	}
	programID = strings.TrimSpace(programID)
	if programID == "" {
		return fmt.Errorf("programa requerido")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	all[programID] = value
	return s.save(ctx, all)
}

// Delete elimina la anotación del programa si existe.
func (s *Store) Delete(ctx context.Context, programID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := all[programID]; !ok {
		return nil
	}
	delete(all, programID)
	return s.save(ctx, all)
}

func (s *Store) load(ctx context.Context) (map[string]string, error) {
	out := map[string]string{}
	exists, err := s.backend.IsExist(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("anotaciones: consultando %s: %w", StorageKey, err)
	}
	if !exists {
		return out, nil
	}
	raw, err := s.backend.Get(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	var payload string
	switch v := raw.(type) {
	case string:
		payload = v
	case []byte:
		payload = string(v)
	default:
		return nil, fmt.Errorf("anotaciones: tipo inesperado %T en %s", raw, StorageKey)
	}
	if strings.TrimSpace(payload) == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		logs.Warn("anotaciones corruptas, se descartan: %v", err)
		return map[string]string{}, nil
	}
	return out, nil
}

func (s *Store) save(ctx context.Context, all map[string]string) error {
	b, err := json.Marshal(all)
	if err != nil {
		return err
	}
	return s.backend.Put(ctx, StorageKey, string(b), 0)
}
