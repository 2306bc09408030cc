// Package validation implementa las reglas de los formularios de programas, rutas y horarios.
// Cada validador es una función pura que devuelve un mapa campo → error; un mapa vacío
// significa que el formulario puede enviarse.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/udistrital/agua_mid/helpers"
	"github.com/udistrital/agua_mid/internal/timeutil"
)

// Códigos de error expuestos al front-end.
const (
	CodeRequired      = "required"
	CodeInvalidDate   = "invalidDate"
	CodeInvalidTime   = "invalidTime"
	CodeTimeOrder     = "timeOrder"
	CodePairRequired  = "pairRequired"
	CodePattern       = "pattern"
	CodeMaxLength     = "maxLength"
	CodeMinLength     = "minLength"
	CodeMinZones      = "minZones"
	CodeMinItems      = "minItems"
	CodeDuplicateZone = "duplicateZone"
	CodeDuration      = "duration"
	CodeInvalidDay    = "invalidDay"
)

// Solo letras (con tildes, ñ y ü) y el espacio; tabuladores y saltos de línea no valen.
var lettersPattern = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñÜü ]*$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("letters", func(fl validator.FieldLevel) bool {
			return lettersPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return timeutil.IsValidHHMM(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Errors agrupa los errores por campo; solo se conserva el primero de cada campo.
type Errors map[string]helpers.FieldError

// Add registra el error si el campo aún no tiene uno.
func (e Errors) Add(field, code, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = helpers.FieldError{Code: code, Message: message}
}

// Has indica si el campo tiene error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Valid indica si no hay errores.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Err convierte el mapa en el error que bloquea el envío, o nil si es válido.
func (e Errors) Err() error {
	if e.Valid() {
		return nil
	}
	return helpers.NewValidationError(map[string]helpers.FieldError(e))
}

// structErrors ejecuta las reglas declarativas y traduce cada fallo a código y mensaje.
func structErrors(form any, overrides map[string]string) Errors {
	out := Errors{}
	err := engine().Struct(form)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add("form", CodeRequired, err.Error())
		return out
	}
	for _, fe := range verrs {
		field := fieldKey(fe.Namespace())
		code, msg := describe(field, fe)
		if custom, ok := overrides[field+"."+code]; ok {
			msg = custom
		}
		out.Add(field, code, msg)
	}
	return out
}

// fieldKey reduce "RouteForm.zones[0].estimatedDuration" a "zones".
func fieldKey(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	if idx := strings.IndexAny(namespace, "[."); idx >= 0 {
		namespace = namespace[:idx]
	}
	return namespace
}

func describe(field string, fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return CodeRequired, "Este campo es obligatorio"
	case "hhmm":
		return CodeInvalidTime, "Formato de hora inválido (HH:mm)"
	case "letters":
		return CodePattern, "Solo se permiten letras y espacios"
	case "max":
		return CodeMaxLength, fmt.Sprintf("Máximo %s caracteres", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			if field == "zones" {
				return CodeMinZones, fmt.Sprintf("Debe seleccionar al menos %s zonas", fe.Param())
			}
			return CodeMinItems, fmt.Sprintf("Debe seleccionar al menos %s elementos", fe.Param())
		}
		return CodeMinLength, fmt.Sprintf("Mínimo %s caracteres", fe.Param())
	case "gt":
		return CodeDuration, "La duración estimada debe ser mayor a 0"
	case "oneof":
		return CodeInvalidDay, "Día de la semana no reconocido"
	default:
		return fe.Tag(), "Valor inválido"
	}
}
