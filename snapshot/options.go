package snapshot

import "github.com/hupe1980/vecx"

// Options configures snapshot encoding and logging.
type Options struct {
	// Compression selects the payload compression algorithm.
	Compression CompressionType

	// Logger receives structured logs for Save/Load operations.
	// Defaults to a no-op logger.
	Logger *vecx.Logger
}

// Option configures snapshot behavior.
type Option func(*Options)

// WithCompression selects the payload compression algorithm.
// The default is CompressionNone.
func WithCompression(ct CompressionType) Option {
	return func(o *Options) {
		o.Compression = ct
	}
}

// WithLogger configures structured logging for snapshot operations.
// If nil is passed, logging stays disabled.
func WithLogger(l *vecx.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func applyOptions(optFns []Option) Options {
	opts := Options{
		Compression: CompressionNone,
		Logger:      vecx.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}
