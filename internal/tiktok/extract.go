package tiktok

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page state markers around the SIGI_STATE blob.
const (
	stateStartMarker = "window['SIGI_STATE']="
	stateEndMarker   = ";window['SIGI_RETRY']="
	stateScriptID    = "SIGI_STATE"
)

// ExtractJSON parses a JSON endpoint body.
func ExtractJSON(body []byte) (Doc, error) {
	d, err := decodeDoc(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return d, nil
}

// ExtractBlob parses the JSON between the first start marker and the next
// end marker. found is false only when the start marker is absent; a
// missing end marker or unparsable blob yields (nil, true).
func ExtractBlob(html, start, end string) (d Doc, found bool) {
	idx := strings.Index(html, start)
	if idx < 0 {
		return nil, false
	}
	rest := html[idx+len(start):]
	n := strings.Index(rest, end)
	if n < 0 {
		slog.Debug("tiktok: blob end marker not found", slog.String("marker", end))
		return nil, true
	}
	d, err := decodeDoc([]byte(rest[:n]))
	if err != nil {
		slog.Debug("tiktok: blob is not valid JSON", slog.Any("error", err))
		return nil, true
	}
	return d, true
}

// ExtractScript parses the contents of <script id="id"> as JSON. Newer
// page builds ship the state this way instead of a window assignment.
func ExtractScript(html, id string) (Doc, bool) {
	page, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}
	sel := page.Find("script#" + id).First()
	if sel.Length() == 0 {
		return nil, false
	}
	d, err := decodeDoc([]byte(strings.TrimSpace(sel.Text())))
	if err != nil {
		slog.Debug("tiktok: script is not valid JSON", slog.String("id", id), slog.Any("error", err))
		return nil, true
	}
	return d, true
}

// extractState pulls the page state, optionally falling back to the
// script-tag form.
func extractState(html string, scriptFallback bool) Doc {
	if d, found := ExtractBlob(html, stateStartMarker, stateEndMarker); found {
		return d
	}
	if scriptFallback {
		d, _ := ExtractScript(html, stateScriptID)
		return d
	}
	return nil
}
