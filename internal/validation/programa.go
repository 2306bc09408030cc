package validation

import (
	"fmt"
	"strings"

	"github.com/udistrital/agua_mid/internal/timeutil"
)

// ProgramForm son los campos editables de un programa de distribución.
type ProgramForm struct {
	ProgramDate      string `json:"programDate" validate:"required"`
	ScheduleID       string `json:"scheduleId" validate:"required"`
	RouteID          string `json:"routeId" validate:"required"`
	ZoneID           string `json:"zoneId" validate:"required"`
	StreetID         string `json:"streetId" validate:"required"`
	PlannedStartTime string `json:"plannedStartTime" validate:"required,hhmm"`
	PlannedEndTime   string `json:"plannedEndTime" validate:"required,hhmm"`
	ActualStartTime  string `json:"actualStartTime" validate:"omitempty,hhmm"`
	ActualEndTime    string `json:"actualEndTime" validate:"omitempty,hhmm"`
	Observations     string `json:"observations" validate:"max=500,letters"`
}

// Normalize recorta espacios sobrantes.
func (f *ProgramForm) Normalize() {
	f.ProgramDate = strings.TrimSpace(f.ProgramDate)
	f.ScheduleID = strings.TrimSpace(f.ScheduleID)
	f.RouteID = strings.TrimSpace(f.RouteID)
	f.ZoneID = strings.TrimSpace(f.ZoneID)
	f.StreetID = strings.TrimSpace(f.StreetID)
	f.PlannedStartTime = strings.TrimSpace(f.PlannedStartTime)
	f.PlannedEndTime = strings.TrimSpace(f.PlannedEndTime)
	f.ActualStartTime = strings.TrimSpace(f.ActualStartTime)
	f.ActualEndTime = strings.TrimSpace(f.ActualEndTime)
	f.Observations = strings.TrimSpace(f.Observations)
}

// ProgramRules parametriza la regla de fecha.
// RequireToday se activa al crear, y al editar solo si la fecha cambió.
type ProgramRules struct {
	Today        string
	RequireToday bool
}

// ValidateProgram aplica todas las reglas del formulario de programas.
func ValidateProgram(form ProgramForm, rules ProgramRules) Errors {
	form.Normalize()
	errs := structErrors(form, map[string]string{
		"observations.pattern": "Las observaciones solo pueden contener letras y espacios",
	})

	if rules.RequireToday && form.ProgramDate != "" && form.ProgramDate != rules.Today {
		errs.Add("programDate", CodeInvalidDate,
			fmt.Sprintf("Solo se puede programar para la fecha actual (%s)", timeutil.FormatDisplayDate(rules.Today)))
	}

	if !errs.Has("plannedStartTime") && !errs.Has("plannedEndTime") &&
		!timeutil.IsGreaterThan(form.PlannedEndTime, form.PlannedStartTime) {
		errs.Add("plannedEndTime", CodeTimeOrder, "La hora de fin planificada debe ser posterior a la hora de inicio")
	}

	hasStart, hasEnd := form.ActualStartTime != "", form.ActualEndTime != ""
	switch {
	case hasStart && !hasEnd:
		errs.Add("actualEndTime", CodePairRequired, "Debe indicar la hora de fin real junto con la de inicio")
	case hasEnd && !hasStart:
		errs.Add("actualStartTime", CodePairRequired, "Debe indicar la hora de inicio real junto con la de fin")
	case hasStart && hasEnd && !errs.Has("actualStartTime") && !errs.Has("actualEndTime"):
		if !timeutil.IsGreaterThan(form.ActualEndTime, form.ActualStartTime) {
			errs.Add("actualEndTime", CodeTimeOrder, "La hora de fin real debe ser posterior a la hora de inicio real")
		}
	}
	return errs
}
