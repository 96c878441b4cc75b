package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":            "",
			"connectTimeout": "10s",
		},
		"jwt": map[string]any{
			"expiresIn": "24h",
		},
		"http": map[string]any{
			"port": 5000,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "JWT_EXPIRESIN", want: "jwt.expiresIn"},
		{envKey: "HTTP_PORT", want: "http.port"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
