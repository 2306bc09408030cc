// Package status deriva etiquetas y clases visuales a partir del estado del backend
// y resuelve qué endpoint usar en cada transición de un programa.
package status

import (
	"strings"

	"github.com/udistrital/agua_mid/models"
)

var labels = map[string]string{
	models.ProgramStatusActive:     "Activo",
	models.ProgramStatusPlanned:    "Planificado",
	models.ProgramStatusInProgress: "En Progreso",
	models.ProgramStatusCompleted:  "Completado",
	models.ProgramStatusCancelled:  "Cancelado",
	models.StatusInactive:          "Inactivo",
	models.WaterGiven:              "Con Agua",
	models.WaterNotGiven:           "Sin Agua",
}

var badgeClasses = map[string]string{
	models.ProgramStatusActive:     "bg-green-100 text-green-800",
	models.ProgramStatusCompleted:  "bg-green-100 text-green-800",
	models.ProgramStatusPlanned:    "bg-blue-100 text-blue-800",
	models.ProgramStatusInProgress: "bg-yellow-100 text-yellow-800",
	models.ProgramStatusCancelled:  "bg-red-100 text-red-800",
	models.StatusInactive:          "bg-red-100 text-red-800",
	models.WaterGiven:              "bg-cyan-100 text-cyan-800",
	models.WaterNotGiven:           "bg-orange-100 text-orange-800",
}

const unknownBadge = "bg-gray-100 text-gray-800"

// Label retorna la etiqueta a mostrar. Una anotación de agua (override) tiene
// prioridad sobre el estado del backend.
func Label(raw, override string) string {
	if o := normalize(override); isWater(o) {
		return labels[o]
	}
	code := normalize(raw)
	if l, ok := labels[code]; ok {
		return l
	}
	return raw
}

// BadgeClass aplica la misma precedencia que Label para la clase CSS.
func BadgeClass(raw, override string) string {
	if o := normalize(override); isWater(o) {
		return badgeClasses[o]
	}
	if c, ok := badgeClasses[normalize(raw)]; ok {
		return c
	}
	return unknownBadge
}

// IsWaterAnnotation indica si el valor es CON_AGUA o SIN_AGUA.
func IsWaterAnnotation(v string) bool {
	return isWater(normalize(v))
}

func isWater(v string) bool {
	return v == models.WaterGiven || v == models.WaterNotGiven
}

func normalize(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
