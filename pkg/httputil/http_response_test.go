package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/habitgrid/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusConflict, "habit already exists", errors.New("duplicate title"))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, httputil.ErrorResponse{Code: http.StatusConflict, Message: "habit already exists", Details: "duplicate title"}, resp)
}

func TestReadJSON(t *testing.T) {
	var dst struct {
		Title string `json:"title"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"run"}`))
	require.NoError(t, httputil.ReadJSON(httptest.NewRecorder(), r, &dst))
	assert.Equal(t, "run", dst.Title)

	r = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, httputil.ReadJSON(httptest.NewRecorder(), r, &dst), httputil.ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("corrupted"))
	assert.Error(t, httputil.ReadJSON(httptest.NewRecorder(), r, &dst))
}
