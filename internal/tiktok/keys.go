package tiktok

import (
	"net/url"
	"strings"
)

// videoKey canonicalizes a video URL for caching. Scheme and host are case
// insensitive; path, query and fragment are kept verbatim since short-link
// codes are case-sensitive.
func videoKey(u *url.URL) string {
	k := *u
	k.Scheme = strings.ToLower(k.Scheme)
	k.Host = strings.ToLower(k.Host)
	return k.String()
}
