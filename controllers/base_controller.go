package controllers

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/udistrital/agua_mid/helpers"
	internalhelpers "github.com/udistrital/agua_mid/internal/helpers"
	"github.com/udistrital/agua_mid/models/requestresponse"

	beego "github.com/beego/beego/v2/server/web"
)

// BaseController centraliza la construcción de respuestas estándar.
type BaseController struct {
	beego.Controller
}

// RespondError transforma cualquier error en la respuesta estándar. Los errores de
// validación viajan en Data como mapa campo → {code, message}.
func (c *BaseController) RespondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	var data interface{}
	if len(appErr.Fields) > 0 {
		data = appErr.Fields
	}
	c.WriteJSON(requestresponse.NewError(appErr.Status, appErr.Message, data))
}

// WriteJSON escribe el sobre con su status y el id de correlación de la petición.
func (c *BaseController) WriteJSON(payload requestresponse.APIResponseDTO) {
	c.Ctx.Output.SetStatus(payload.Status)
	c.Data["json"] = payload.WithRequestID(internalhelpers.RequestID(c.Ctx))
	_ = c.ServeJSON()
}

// ParseJSONBody deserializa el cuerpo de la petición en dest.
func (c *BaseController) ParseJSONBody(out interface{}) error {
	raw := c.Ctx.Input.RequestBody

	if len(raw) == 0 && c.Ctx.Request != nil && c.Ctx.Request.Body != nil {
		b, err := io.ReadAll(c.Ctx.Request.Body)
		if err != nil {
			return err
		}
		raw = b

		// cache + reinyectar
		c.Ctx.Input.RequestBody = b
		c.Ctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	}

	return json.Unmarshal(raw, out)
}
