package book

import (
	"net/http"

	"bookfaker/internal/httpx"
	"bookfaker/internal/logging"
)

type HTTPHandler struct {
	gen Generator
}

func NewHTTPHandler(gen Generator) *HTTPHandler {
	return &HTTPHandler{gen: gen}
}

type listResponse struct {
	Books      []Record `json:"books"`
	NextCursor string   `json:"nextCursor,omitempty"`
}

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q := ParseQuery(r.URL.Query())

	books := h.gen.Batch(q)
	if books == nil {
		books = []Record{}
	}

	logging.Ctx(r.Context()).Debug().
		Int64("seed", q.Seed).
		Str("locale", q.Locale.String()).
		Int("offset", q.Offset).
		Int("limit", q.Limit).
		Msg("batch generated")

	httpx.JSON(w, http.StatusOK, listResponse{Books: books, NextCursor: NextCursor(q)})
}

// RandomSeed handles GET /api/seed
func (h *HTTPHandler) RandomSeed(w http.ResponseWriter, r *http.Request) {
	seed, err := RandomSeed()
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("random seed")
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"seed": seed})
}
