package sipbloom

import (
	"crypto/rand"
	"io"
)

// config holds the construction settings a filter is built with.
type config struct {
	rand   io.Reader
	hasher Hasher
}

func defaultConfig() config {
	return config{
		rand:   rand.Reader,
		hasher: SipHasher{},
	}
}

// Option configures a Filter at construction.
type Option func(*config)

// WithRand sets the source the hash keys are drawn from. The default is
// crypto/rand.Reader. A nil reader keeps the default.
func WithRand(r io.Reader) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithHasher sets the keyed hash family. The default is SipHasher.
// A nil hasher keeps the default.
func WithHasher(h Hasher) Option {
	return func(c *config) {
		if h != nil {
			c.hasher = h
		}
	}
}
