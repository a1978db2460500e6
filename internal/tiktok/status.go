package tiktok

import (
	"encoding/json"
	"strconv"
)

// UnknownError is the message for app codes missing from StatusMessages.
const UnknownError = "Unknown error"

// TransportFailureCode is the HTTP code reported when no response arrived.
const TransportFailureCode = 504

type noAppCode struct{}

// NoAppCode is passed to ComputeMeta by page endpoints, which carry no
// application status; success then depends on the transport alone.
var NoAppCode Doc = noAppCode{}

// ComputeMeta merges transport outcome, HTTP status and app code.
// Success requires an app code that is an integer zero: nil and the
// string "0" do not count.
func ComputeMeta(transportOK bool, httpCode int, appCode Doc) Meta {
	if _, ok := appCode.(noAppCode); ok {
		return Meta{Success: transportOK, HTTPCode: httpCode}
	}
	m := Meta{
		Success:  transportOK && isIntZero(appCode),
		HTTPCode: httpCode,
		AppCode:  appCode,
	}
	if appCode != nil {
		msg := statusMessage(appCode)
		m.Message = &msg
	}
	return m
}

func isIntZero(code Doc) bool {
	switch v := code.(type) {
	case json.Number:
		n, err := v.Int64()
		return err == nil && n == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	}
	return false
}

func statusMessage(code Doc) string {
	var key int64
	switch v := code.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return UnknownError
		}
		key = n
	case int:
		key = int64(v)
	case int64:
		key = v
	case float64:
		key = int64(v)
		if float64(key) != v {
			return UnknownError
		}
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return UnknownError
		}
		key = n
	default:
		return UnknownError
	}
	if msg, ok := StatusMessages[key]; ok {
		return msg
	}
	return UnknownError
}

// transportFailure is the meta for a request that never got a response.
func transportFailure() Meta {
	return ComputeMeta(false, TransportFailureCode, nil)
}
