package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
)

func ptr[T any](v T) *T { return &v }

func TestPrintEnvelopeFeedTable(t *testing.T) {
	env := &tiktok.Envelope{
		Meta:      tiktok.Meta{Success: true, HTTPCode: 200, AppCode: int64(0), Message: ptr("OK")},
		Items:     []tiktok.FeedItem{{ID: ptr("7001"), Description: ptr("hello"), Author: tiktok.Author{UniqueID: ptr("someone")}, Stats: tiktok.Stats{PlayCount: ptr(int64(42))}}},
		HasMore:   true,
		MaxCursor: "123",
		MinCursor: "0",
	}
	var buf bytes.Buffer
	if err := printEnvelope(&buf, env, false); err != nil {
		t.Fatalf("printEnvelope: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"success=true http=200 code=0 OK", "7001", "someone", "hello", "42", "hasMore=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintEnvelopeFailure(t *testing.T) {
	env := &tiktok.Envelope{Meta: tiktok.Meta{HTTPCode: 504, Message: ptr("Unknown error")}}
	var buf bytes.Buffer
	if err := printEnvelope(&buf, env, false); err != nil {
		t.Fatalf("printEnvelope: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "success=false http=504 code=<nil> Unknown error" {
		t.Errorf("output = %q", got)
	}
}

func TestPrintEnvelopeJSON(t *testing.T) {
	env := &tiktok.Envelope{Meta: tiktok.Meta{Success: true, HTTPCode: 200}}
	var buf bytes.Buffer
	if err := printEnvelope(&buf, env, true); err != nil {
		t.Fatalf("printEnvelope: %v", err)
	}
	if !strings.Contains(buf.String(), `"success": true`) {
		t.Errorf("JSON output = %s", buf.String())
	}
	if strings.Contains(buf.String(), "hasMore") {
		t.Error("non-feed envelope should omit paging fields")
	}
}

func TestPrintEnvelopeTruncatesDescription(t *testing.T) {
	long := strings.Repeat("word ", 40)
	env := &tiktok.Envelope{
		Meta:  tiktok.Meta{Success: true, HTTPCode: 200},
		Items: []tiktok.FeedItem{{ID: ptr("1"), Description: ptr(long)}},
	}
	var buf bytes.Buffer
	if err := printEnvelope(&buf, env, false); err != nil {
		t.Fatalf("printEnvelope: %v", err)
	}
	if strings.Contains(buf.String(), long) {
		t.Error("long description printed in full")
	}
	if !strings.Contains(buf.String(), "…") {
		t.Error("truncated description has no ellipsis")
	}
}
