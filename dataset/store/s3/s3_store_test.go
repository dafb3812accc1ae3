package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPrefix(t *testing.T) {
	s := New(nil, "bucket", WithPrefix("panels/"))

	assert.Equal(t, "panels/chr20.hap", s.key("chr20.hap"))

	noPrefix := New(nil, "bucket")
	assert.Equal(t, "chr20.hap", noPrefix.key("chr20.hap"))
}

func TestWithRateLimit(t *testing.T) {
	s := New(nil, "bucket", WithRateLimit(5))
	require.NotNil(t, s.limiter)
	assert.Equal(t, 5, s.limiter.Burst())

	// Sub-1 rps still gets a usable burst.
	s = New(nil, "bucket", WithRateLimit(0.5))
	require.NotNil(t, s.limiter)
	assert.Equal(t, 1, s.limiter.Burst())
}
