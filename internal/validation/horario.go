package validation

import (
	"strings"

	"github.com/udistrital/agua_mid/internal/timeutil"
)

// ScheduleForm son los campos editables de un horario.
type ScheduleForm struct {
	ScheduleName string   `json:"scheduleName" validate:"required,max=100,letters"`
	ZoneID       string   `json:"zoneId" validate:"required"`
	StreetID     string   `json:"streetId" validate:"required"`
	DaysOfWeek   []string `json:"daysOfWeek" validate:"min=1,dive,oneof=LUNES MARTES MIERCOLES JUEVES VIERNES SABADO DOMINGO"`
	StartTime    string   `json:"startTime" validate:"required,hhmm"`
	EndTime      string   `json:"endTime" validate:"required,hhmm"`
}

// ValidateSchedule aplica las reglas del formulario de horarios.
// La hora de fin debe ser posterior a la de inicio aunque la duración admita cruce de medianoche.
func ValidateSchedule(form ScheduleForm) Errors {
	form.ScheduleName = strings.TrimSpace(form.ScheduleName)
	form.StartTime = strings.TrimSpace(form.StartTime)
	form.EndTime = strings.TrimSpace(form.EndTime)
	days := make([]string, len(form.DaysOfWeek))
	for i, d := range form.DaysOfWeek {
		days[i] = strings.ToUpper(strings.TrimSpace(d))
	}
	form.DaysOfWeek = days

	errs := structErrors(form, map[string]string{
		"scheduleName.pattern": "El nombre del horario solo puede contener letras y espacios",
		"daysOfWeek.minItems":  "Debe seleccionar al menos un día",
	})

	if !errs.Has("startTime") && !errs.Has("endTime") && !timeutil.IsGreaterThan(form.EndTime, form.StartTime) {
		errs.Add("endTime", CodeTimeOrder, "La hora de fin debe ser posterior a la hora de inicio")
	}
	return errs
}
