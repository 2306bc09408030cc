package errorhandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"

	"github.com/udistrital/agua_mid/models/requestresponse"
)

func TestRecoverPanic_WritesStandardEnvelope(t *testing.T) {
	ctx := context.NewContext()
	rec := httptest.NewRecorder()
	ctx.Reset(rec, httptest.NewRequest(http.MethodGet, "/v1/programas", nil))

	func() {
		defer RecoverPanic(ctx, &beego.Config{AppName: "agua_mid", RunMode: beego.PROD})
		panic("boom")
	}()

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body requestresponse.APIResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusInternalServerError, body.Status)
	assert.Contains(t, body.Message, "agua_mid")
}

func TestRecoverPanic_IgnoresAbort(t *testing.T) {
	ctx := context.NewContext()
	rec := httptest.NewRecorder()
	ctx.Reset(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	func() {
		defer RecoverPanic(ctx, nil)
		panic(beego.ErrAbort)
	}()
	assert.Empty(t, rec.Body.String())
}
