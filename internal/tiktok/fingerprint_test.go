package tiktok

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintShape(t *testing.T) {
	f := NewFingerprinter()
	for range 1000 {
		token := f.Generate()

		require.True(t, strings.HasPrefix(token, "verify_"), token)
		rest := strings.TrimPrefix(token, "verify_")
		sep := strings.IndexByte(rest, '_')
		require.Greater(t, sep, 0, token)

		ts, pattern := rest[:sep], rest[sep+1:]
		_, err := strconv.ParseInt(ts, 36, 64)
		require.NoError(t, err, "timestamp %q is not base36", ts)
		require.Len(t, token, len("verify_")+len(ts)+1+36)
		require.Len(t, pattern, 36)

		for i := range 36 {
			c := pattern[i]
			switch i {
			case 8, 13, 18, 23:
				require.Equal(t, byte('_'), c, "position %d of %q", i, pattern)
			case 14:
				require.Equal(t, byte('4'), c, "position %d of %q", i, pattern)
			case 19:
				require.Contains(t, "89AB", string(c), "position %d of %q", i, pattern)
			default:
				require.Contains(t, fingerprintChars, string(c), "position %d of %q", i, pattern)
			}
		}
	}
}

func TestFingerprintDeterministicSource(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	newFP := func() *Fingerprinter {
		r := rand.New(rand.NewPCG(1, 2))
		return &Fingerprinter{intn: r.IntN, now: func() time.Time { return now }}
	}

	a, b := newFP().Generate(), newFP().Generate()
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "verify_"+strconv.FormatInt(now.UnixMilli(), 36)+"_"))
}

func TestFingerprintFreshPerCall(t *testing.T) {
	f := NewFingerprinter()
	seen := map[string]bool{}
	for range 100 {
		token := f.Generate()
		assert.False(t, seen[token], "token repeated: %s", token)
		seen[token] = true
	}
}

func TestFingerprintVariantBits(t *testing.T) {
	for o := range len(fingerprintChars) {
		f := &Fingerprinter{intn: func(int) int { return o }, now: time.Now}
		pattern := f.Generate()
		pattern = pattern[len(pattern)-36:]
		assert.Equal(t, fingerprintChars[o&3|8], pattern[19])
	}
}
