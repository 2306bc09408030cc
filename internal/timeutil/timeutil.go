// Package timeutil concentra las reglas de fecha y hora de la distribución.
//
// La fecha "de hoy" se calcula con un desfase fijo (UTC-5) independiente de la zona
// del servidor, mientras que la hora actual se toma del reloj local. Esa asimetría es
// intencional y las validaciones dependen de ella.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/udistrital/agua_mid/internal/clock"
)

// DefaultOffsetHours es el desfase de la zona horaria operativa.
const DefaultOffsetHours = -5

const minutesPerDay = 24 * 60

// Today retorna la fecha actual (YYYY-MM-DD) aplicando el desfase sobre UTC.
func Today(c clock.Clock, tzOffsetHours int) string {
	now := c.Now().UTC().Add(time.Duration(tzOffsetHours) * time.Hour)
	return now.Format("2006-01-02")
}

// CurrentTime retorna HH:mm del reloj local, sin desfase.
func CurrentTime(c clock.Clock) string {
	return c.Now().Format("15:04")
}

// ToMinutes convierte HH:mm a minutos desde medianoche.
func ToMinutes(hhmm string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// IsValidHHMM indica si el valor es una hora HH:mm válida.
func IsValidHHMM(hhmm string) bool {
	_, ok := ToMinutes(hhmm)
	return ok
}

// IsGreaterThan compara minutos desde medianoche, sin considerar el cruce de día.
// Valores inválidos nunca son mayores.
func IsGreaterThan(t1, t2 string) bool {
	a, ok1 := ToMinutes(t1)
	b, ok2 := ToMinutes(t2)
	if !ok1 || !ok2 {
		return false
	}
	return a > b
}

// DurationHours calcula la duración en horas entre start y end. Si end no es posterior
// a start se asume que la ventana cruza la medianoche.
func DurationHours(start, end string) float64 {
	s, ok1 := ToMinutes(start)
	e, ok2 := ToMinutes(end)
	if !ok1 || !ok2 {
		return 0
	}
	var minutes int
	if e > s {
		minutes = e - s
	} else {
		minutes = (minutesPerDay - s) + e
	}
	return math.Round(float64(minutes)/60*100) / 100
}

// FormatDisplayDate convierte YYYY-MM-DD a DD/MM/YYYY; valores inválidos se devuelven tal cual.
func FormatDisplayDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(isoDate))
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}

// IsValidDate indica si el valor respeta el formato YYYY-MM-DD.
func IsValidDate(isoDate string) bool {
	_, err := time.Parse("2006-01-02", isoDate)
	return err == nil
}

// FormatHours presenta una duración en horas con dos decimales ("2.50 h").
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2f h", h)
}
