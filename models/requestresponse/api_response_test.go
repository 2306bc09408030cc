package requestresponse

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesSuccess(t *testing.T) {
	assert.True(t, New(201, "", nil).Success)
	assert.Equal(t, "OK", New(200, "", nil).Message)

	r := New(404, "", nil)
	assert.False(t, r.Success)
	assert.Equal(t, "Error", r.Message)
}

func TestNewError_KeepsFailureOn2xx(t *testing.T) {
	r := NewError(200, "", nil)
	assert.False(t, r.Success)
	assert.Equal(t, "Error", r.Message)
}

func TestWithRequestID_Serialized(t *testing.T) {
	raw, err := json.Marshal(NewSuccess(200, "", []int{1}).WithRequestID("req-1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Success":true,"Status":200,"Message":"OK","Data":[1],"RequestId":"req-1"}`, string(raw))

	raw, err = json.Marshal(NewSuccess(200, "", nil))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "RequestId")
}
