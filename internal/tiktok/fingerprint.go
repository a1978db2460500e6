package tiktok

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const fingerprintChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// fingerprintLen is the length of the random segment of a verifyFp token.
const fingerprintLen = 36

// Fingerprinter produces verifyFp tokens:
// verify_<base36 unix millis>_<36 chars laid out like a v4 UUID>.
type Fingerprinter struct {
	intn func(n int) int
	now  func() time.Time
}

// NewFingerprinter returns a Fingerprinter backed by math/rand/v2.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{intn: rand.IntN, now: time.Now}
}

// Generate returns a fresh token. Tokens are never reused.
func (f *Fingerprinter) Generate() string {
	var b strings.Builder
	b.WriteString("verify_")
	b.WriteString(strconv.FormatInt(f.now().UnixMilli(), 36))
	b.WriteByte('_')
	for i := range fingerprintLen {
		switch i {
		case 8, 13, 18, 23:
			b.WriteByte('_')
		case 14:
			b.WriteByte('4')
		default:
			o := f.intn(len(fingerprintChars))
			if i == 19 {
				o = o&3 | 8 // variant bits 10xx
			}
			b.WriteByte(fingerprintChars[o])
		}
	}
	return b.String()
}
