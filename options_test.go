package sipbloom

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	cfg := defaultConfig()
	for _, opt := range []Option{WithRand(nil), WithHasher(nil)} {
		opt(&cfg)
	}

	require.Equal(t, rand.Reader, cfg.rand)
	require.Equal(t, SipHasher{}, cfg.hasher)
}

func TestOptionsOverride(t *testing.T) {
	src := seededRand(3)
	cfg := defaultConfig()
	WithRand(src)(&cfg)
	WithHasher(XXH3Hasher{})(&cfg)

	require.Same(t, src, cfg.rand)
	require.Equal(t, XXH3Hasher{}, cfg.hasher)
}
