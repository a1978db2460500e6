package toolutil

import (
	"errors"
	"testing"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
)

func TestTrimTag(t *testing.T) {
	tests := []struct{ in, want string }{
		{"dance", "dance"},
		{"#dance", "dance"},
		{"  #dance ", "dance"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TrimTag(tt.in); got != tt.want {
			t.Errorf("TrimTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimHandle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"alice", "alice"},
		{"@Alice", "Alice"},
		{" @alice ", "alice"},
	}
	for _, tt := range tests {
		if got := TrimHandle(tt.in); got != tt.want {
			t.Errorf("TrimHandle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormCursor(t *testing.T) {
	if got := NormCursor(-5); got != 0 {
		t.Errorf("NormCursor(-5) = %d, want 0", got)
	}
	if got := NormCursor(30); got != 30 {
		t.Errorf("NormCursor(30) = %d, want 30", got)
	}
}

func TestEnvelope(t *testing.T) {
	res, out, err := Envelope(nil, tiktok.ErrInvalidInput)
	if !errors.Is(err, tiktok.ErrInvalidInput) || res != nil || out != nil {
		t.Errorf("Envelope(err) = %v, %v, %v", res, out, err)
	}

	env := &tiktok.Envelope{Meta: tiktok.ComputeMeta(true, 200, 0)}
	res, out, err = Envelope(env, nil)
	if err != nil || res != nil {
		t.Fatalf("Envelope(env) = %v, %v", res, err)
	}
	if out != env {
		t.Errorf("out = %v, want the envelope", out)
	}
}
