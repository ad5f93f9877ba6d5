package bodyparser

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonParser() http.Handler {
	mw := New(map[string][]string{KindJSON: {"application/json"}})
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if parsed, ok := FromContext(r.Context()); ok {
			body := parsed.(map[string]any)
			w.Header().Set("X-Title", body["title"].(string))
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestBodyParser_ParsesMatchingContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"dune"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec := httptest.NewRecorder()

	jsonParser().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dune", rec.Header().Get("X-Title"))
}

func TestBodyParser_IgnoresOtherContentTypes(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader("title=dune"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	jsonParser().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Title"))
}

func TestBodyParser_RejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	jsonParser().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestBodyParser_BodyStaysReadable verifies that downstream handlers can
// still read the raw body after parsing.
func TestBodyParser_BodyStaysReadable(t *testing.T) {
	payload := `{"title":"dune"}`
	var raw []byte
	mw := New(map[string][]string{KindJSON: {"application/json"}})
	handler := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, payload, string(raw))
}

func TestFromContext_AbsentWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := FromContext(req.Context())

	assert.False(t, ok)
}
