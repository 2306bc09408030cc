package errorhandler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/udistrital/agua_mid/models/requestresponse"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
)

// ErrorHandlerController se registra en el router para gestionar 404 y otros fallos.
type ErrorHandlerController struct {
	beego.Controller
}

// Error404 centraliza la respuesta cuando la ruta no existe.
func (c *ErrorHandlerController) Error404() {
	c.respond(http.StatusNotFound, fmt.Sprintf("Ruta no encontrada: %s %s", c.Ctx.Request.Method, c.Ctx.Request.URL.Path))
}

// Error405 responde cuando el método no está permitido en la ruta.
func (c *ErrorHandlerController) Error405() {
	c.respond(http.StatusMethodNotAllowed, fmt.Sprintf("Método %s no permitido en %s", c.Ctx.Request.Method, c.Ctx.Request.URL.Path))
}

// Error500 cubre los errores internos que beego delega al controlador de errores.
func (c *ErrorHandlerController) Error500() {
	c.respond(http.StatusInternalServerError, "Error interno del servidor.")
}

func (c *ErrorHandlerController) respond(status int, message string) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = requestresponse.NewError(status, message, nil)
	_ = c.ServeJSON()
}

// RecoverPanic reemplaza el recover por defecto de beego (BConfig.RecoverFunc) y
// entrega la respuesta estándar en lugar de la página de error.
func RecoverPanic(ctx *context.Context, cfg *beego.Config) {
	r := recover()
	if r == nil || r == beego.ErrAbort {
		return
	}
	logs.Error("panic atendiendo %s %s (request_id=%s): %v", ctx.Input.Method(), ctx.Input.URL(), ctx.Input.Header("X-Request-Id"), r)
	if cfg != nil && cfg.RunMode == beego.DEV {
		debug.PrintStack()
	}

	appName := "agua_mid"
	if cfg != nil && cfg.AppName != "" {
		appName = cfg.AppName
	}
	message := fmt.Sprintf("Error service %s: An internal server error occurred.", appName)
	message += fmt.Sprintf(" Request Info: URL: %s, Method: %s", ctx.Input.URL(), ctx.Input.Method())
	message += " Time: " + time.Now().UTC().Format(time.RFC3339)

	if ctx.ResponseWriter.Started {
		return
	}
	status := http.StatusInternalServerError
	ctx.Output.SetStatus(status)
	_ = ctx.Output.JSON(requestresponse.NewError(status, message, nil), false, false)
}
