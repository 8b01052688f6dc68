package pixl

// Option configures a Renderer during creation.
// Use functional options to customize rendering.
//
// Example:
//
//	// Default: aliased, no clear, single-threaded
//	r := pixl.NewRenderer()
//
//	// Anti-aliased, cleared to black, four row bands
//	r := pixl.NewRenderer(
//	    pixl.WithAntiAlias(true),
//	    pixl.WithBackground(pixl.Black),
//	    pixl.WithWorkers(4),
//	)
type Option func(*renderOptions)

// renderOptions holds optional configuration for Renderer creation.
type renderOptions struct {
	antiAlias  bool
	background RGBA
	clear      bool
	workers    int
}

// defaultOptions returns the default render options.
func defaultOptions() renderOptions {
	return renderOptions{
		antiAlias: false,
		clear:     false, // Buffer is drawn over as-is
		workers:   1,
	}
}

// WithAntiAlias enables or disables fractional edge coverage.
func WithAntiAlias(enabled bool) Option {
	return func(o *renderOptions) {
		o.antiAlias = enabled
	}
}

// WithBackground clears the buffer to c at the start of every pass.
// Without it the pass draws over the buffer's current contents.
func WithBackground(c RGBA) Option {
	return func(o *renderOptions) {
		o.background = c
		o.clear = true
	}
}

// WithWorkers splits each pass into up to n horizontal row bands rendered
// concurrently. Values below 2 keep the pass on the calling goroutine.
// Output is byte-identical to a single-threaded pass.
func WithWorkers(n int) Option {
	return func(o *renderOptions) {
		o.workers = max(n, 1)
	}
}
