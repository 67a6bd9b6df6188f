package midi

import (
	"runtime"

	"go.uber.org/zap"
)

type options struct {
	log         *zap.Logger
	concurrency int
	sysExData   bool
}

// Option configures a Decoder or a TrackReader.
type Option func(*options)

// WithLogger sets the logger diagnostics and failures are reported to.
// The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithConcurrency bounds how many tracks a Decoder decodes at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithSysExData controls whether system exclusive payloads are kept. When
// false only their length is reported.
func WithSysExData(retain bool) Option {
	return func(o *options) {
		o.sysExData = retain
	}
}

func newOptions(opts []Option) options {
	o := options{
		log:         zap.NewNop(),
		concurrency: runtime.GOMAXPROCS(0),
		sysExData:   true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
