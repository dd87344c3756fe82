package cover

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHTTPHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRenderer := NewMockRenderer(ctrl)
	handler := NewHTTPHandler(mockRenderer)

	spec := Spec{Title: "Dune", Author: "Frank Herbert", Width: 96, Height: 128}

	t.Run("success", func(t *testing.T) {
		mockRenderer.EXPECT().Render(spec).Return([]byte("<svg></svg>"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/book-cover?title=Dune&author=Frank%20Herbert", nil)

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		assert.Equal(t, "public, max-age=31536000, immutable", w.Header().Get("Cache-Control"))
		assert.Equal(t, spec.ETag(), w.Header().Get("ETag"))
		assert.Equal(t, "<svg></svg>", w.Body.String())
	})

	t.Run("defaults on malformed size", func(t *testing.T) {
		mockRenderer.EXPECT().Render(DefaultSpec()).Return([]byte("<svg/>"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/book-cover?width=wide&height=tall", nil)

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not modified", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/book-cover?title=Dune&author=Frank%20Herbert", nil)
		r.Header.Set("If-None-Match", spec.ETag())

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotModified, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestETagMatches(t *testing.T) {
	assert.False(t, etagMatches("", `"a"`))
	assert.True(t, etagMatches(`"a"`, `"a"`))
	assert.True(t, etagMatches(`"b", W/"a"`, `"a"`))
	assert.True(t, etagMatches("*", `"a"`))
	assert.False(t, etagMatches(`"b"`, `"a"`))
}
