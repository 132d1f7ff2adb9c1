package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
)

func TestParseFlash(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  layout.FlashMessage
	}{
		{"typed", "success:Done", layout.FlashMessage{Type: "success", Message: "Done"}},
		{"escaped", "error%3AThis+cell+is+already+occupied%21", layout.FlashMessage{Type: "error", Message: "This cell is already occupied!"}},
		{"colon in message", "info:a:b", layout.FlashMessage{Type: "info", Message: "a:b"}},
		{"untyped", "hello", layout.FlashMessage{Type: "info", Message: "hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, &tt.want, parseFlash(tt.value))
		})
	}
}

func TestSetStatusSkipsEmptyMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	SetStatus(rr, model.StatusMessage{})
	assert.Empty(t, rr.Result().Cookies())
}

func TestFlashRoundTrip(t *testing.T) {
	rr := httptest.NewRecorder()
	SetStatus(rr, model.Success("You scored 4 points!"))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	var got *layout.FlashMessage
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetFlash(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NotNil(t, got)
	assert.Equal(t, "success", got.Type)
	assert.Equal(t, "You scored 4 points!", got.Message)

	cleared := rr.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestFlashWithoutCookie(t *testing.T) {
	var got *layout.FlashMessage
	called := false
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got = GetFlash(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Nil(t, got)
}
