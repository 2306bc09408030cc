package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/stretchr/testify/assert"

	internalhelpers "github.com/udistrital/agua_mid/internal/helpers"
)

func TestAuthFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/programas", nil)
	req.Header.Set("Authorization", "Bearer nojwt")
	rec := httptest.NewRecorder()
	ctx := context.NewContext()
	ctx.Reset(rec, req)

	AuthFilter(ctx)
	assert.ErrorIs(t, ctx.Input.GetData(AuthErrorKey).(error), internalhelpers.ErrInvalidToken)
	assert.NotEmpty(t, rec.Header().Get(internalhelpers.RequestIDHeader))
}

func TestAuthFilter_NoHeaderIsFine(t *testing.T) {
	ctx := context.NewContext()
	ctx.Reset(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/rutas", nil))
	AuthFilter(ctx)
	assert.Nil(t, ctx.Input.GetData(AuthErrorKey))
}
