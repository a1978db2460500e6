package tiktok

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetaTransportFailureDominates(t *testing.T) {
	codes := []Doc{nil, json.Number("0"), 0, int64(0), "0", json.Number("10202"), "weird", NoAppCode}
	for _, httpCode := range []int{0, 200, 404, 500, 504} {
		for _, code := range codes {
			m := ComputeMeta(false, httpCode, code)
			assert.False(t, m.Success, "httpCode=%d appCode=%v", httpCode, code)
			assert.Equal(t, httpCode, m.HTTPCode)
		}
	}
}

func TestComputeMetaSuccess(t *testing.T) {
	tests := []struct {
		name    string
		appCode Doc
		want    bool
	}{
		{"json zero", json.Number("0"), true},
		{"int zero", 0, true},
		{"int64 zero", int64(0), true},
		{"float zero", float64(0), true},
		{"string zero", "0", false},
		{"nil", nil, false},
		{"non-zero", json.Number("10204"), false},
		{"fractional", json.Number("0.5"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeMeta(true, 200, tt.appCode)
			assert.Equal(t, tt.want, m.Success)
			assert.Equal(t, tt.appCode, m.AppCode)
		})
	}
}

func TestComputeMetaMessage(t *testing.T) {
	t.Run("nil code has no message", func(t *testing.T) {
		assert.Nil(t, ComputeMeta(true, 200, nil).Message)
	})

	t.Run("known codes", func(t *testing.T) {
		m := ComputeMeta(true, 200, json.Number("10202"))
		if assert.NotNil(t, m.Message) {
			assert.Equal(t, "User not exist", *m.Message)
		}
		m = ComputeMeta(true, 200, "10204")
		if assert.NotNil(t, m.Message) {
			assert.Equal(t, "Video not exist", *m.Message)
		}
		m = ComputeMeta(true, 200, json.Number("0"))
		if assert.NotNil(t, m.Message) {
			assert.Equal(t, "OK", *m.Message)
		}
	})

	t.Run("unknown codes", func(t *testing.T) {
		for _, code := range []Doc{json.Number("99999"), json.Number("-7"), 123456, "abc", "10202x", json.Number("1.5"), true} {
			m := ComputeMeta(true, 200, code)
			if assert.NotNil(t, m.Message, "code %v", code) {
				assert.Equal(t, UnknownError, *m.Message, "code %v", code)
			}
		}
	})
}

func TestComputeMetaNoAppCode(t *testing.T) {
	m := ComputeMeta(true, 200, NoAppCode)
	assert.True(t, m.Success)
	assert.Nil(t, m.AppCode)
	assert.Nil(t, m.Message)

	m = ComputeMeta(false, 404, NoAppCode)
	assert.False(t, m.Success)
	assert.Equal(t, 404, m.HTTPCode)
}

func TestTransportFailureMeta(t *testing.T) {
	m := transportFailure()
	assert.False(t, m.Success)
	assert.Equal(t, 504, m.HTTPCode)
	assert.Nil(t, m.AppCode)
	assert.Nil(t, m.Message)
}
