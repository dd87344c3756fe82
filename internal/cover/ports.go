package cover

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=cover

// Renderer produces the SVG bytes for a spec.
type Renderer interface {
	Render(spec Spec) []byte
}

// Recorder observes cache effectiveness.
type Recorder interface {
	CoverCacheHit()
	CoverCacheMiss()
}
