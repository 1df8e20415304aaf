package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "clipstream",
			"log": map[string]any{
				"pretty": true,
				"level":  "info",
			},
		},
		"secretKey": map[string]any{
			"access":  "a",
			"refresh": "r",
		},
		"tokenTTL": map[string]any{
			"access":  "15m",
			"refresh": "720h",
		},
		"http": map[string]any{
			"maxRequestBodySize": "64MB",
		},
	}

	tests := []struct {
		name     string
		rawKey   string
		expected string
	}{
		{
			name:     "aligns camelCase segment with existing yaml key",
			rawKey:   "SECRETKEY_ACCESS",
			expected: "secretKey.access",
		},
		{
			name:     "aligns nested segments",
			rawKey:   "ENV_LOG_LEVEL",
			expected: "env.log.level",
		},
		{
			name:     "aligns mixed-case leaf",
			rawKey:   "ENV_SERVICENAME",
			expected: "env.serviceName",
		},
		{
			name:     "aligns token ttl section",
			rawKey:   "TOKENTTL_REFRESH",
			expected: "tokenTTL.refresh",
		},
		{
			name:     "keeps unknown segments lowercased",
			rawKey:   "UNKNOWN_SETTING",
			expected: "unknown.setting",
		},
		{
			name:     "stops aligning after unknown segment",
			rawKey:   "HTTP_MAXREQUESTBODYSIZE",
			expected: "http.maxRequestBodySize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "secretkey", normalizeToken("secretKey"))
	assert.Equal(t, "maxrequestbodysize", normalizeToken("max_request-body.size"))
	assert.Equal(t, "", normalizeToken("---"))
}
