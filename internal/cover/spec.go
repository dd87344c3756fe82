package cover

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Spec identifies one cover render. Two equal specs always render the same
// document, so a Spec doubles as a cache key.
type Spec struct {
	Title  string
	Author string
	Width  int `validate:"gte=16,lte=2048"`
	Height int `validate:"gte=16,lte=2048"`
}

// DefaultSpec returns the spec used when no parameters are given.
func DefaultSpec() Spec {
	return Spec{Title: DefaultTitle, Author: DefaultAuthor, Width: DefaultWidth, Height: DefaultHeight}
}

// ParseSpec reads a spec from query parameters. Missing, malformed, or out
// of range values fall back to their defaults.
func ParseSpec(v url.Values) Spec {
	spec := DefaultSpec()
	if title := v.Get("title"); title != "" {
		spec.Title = title
	}
	if author := v.Get("author"); author != "" {
		spec.Author = author
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.Get("width"))); err == nil {
		spec.Width = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.Get("height"))); err == nil {
		spec.Height = n
	}
	return sanitize(spec)
}

func sanitize(spec Spec) Spec {
	var verrs validator.ValidationErrors
	if !errors.As(validate.Struct(spec), &verrs) {
		return spec
	}
	for _, fe := range verrs {
		switch fe.StructField() {
		case "Width":
			spec.Width = DefaultWidth
		case "Height":
			spec.Height = DefaultHeight
		}
	}
	return spec
}

// Key is the content address of the render. Text fields are length
// prefixed, so distinct specs never share a key whatever bytes they hold.
func (s Spec) Key() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height) +
		":" + strconv.Itoa(len(s.Title)) + ":" + s.Title +
		":" + strconv.Itoa(len(s.Author)) + ":" + s.Author
}

// ETag is a strong entity tag derived from Key.
func (s Spec) ETag() string {
	sum := sha256.Sum256([]byte(s.Key()))
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// Validate reports whether the dimensions are within range.
func (s Spec) Validate() error {
	return validate.Struct(s)
}
