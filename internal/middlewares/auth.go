package middlewares

import (
	"errors"
	"sync"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"

	internalhelpers "github.com/udistrital/agua_mid/internal/helpers"
)

// AuthErrorKey guarda en el contexto el error de un token presente pero mal formado.
const AuthErrorKey = "auth_error"

var (
	authOnce sync.Once
)

// UseAuth registra el middleware de autenticación una sola vez.
func UseAuth() {
	authOnce.Do(func() {
		beego.InsertFilter("/v1/*", beego.BeforeRouter, AuthFilter)
	})
}

// AuthFilter marca en el contexto los tokens presentes pero mal formados.
func AuthFilter(ctx *context.Context) {
	requestID := internalhelpers.RequestID(ctx)
	// El token es opcional: solo se registra el error si vino mal formado.
	if _, err := internalhelpers.Claims(ctx); err != nil && !errors.Is(err, internalhelpers.ErrNoAuthHeader) {
		logs.Debug("token inválido en %s (request_id=%s): %v", ctx.Input.URL(), requestID, err)
		ctx.Input.SetData(AuthErrorKey, err)
	}
}
