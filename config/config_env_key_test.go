package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"assistant": map[string]any{
			"apiKey":     "",
			"flashModel": "",
		},
		"session": map[string]any{
			"bucketUrl": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ASSISTANT_APIKEY", want: "assistant.apiKey"},
		{envKey: "ASSISTANT_FLASHMODEL", want: "assistant.flashModel"},
		{envKey: "SESSION_BUCKETURL", want: "session.bucketUrl"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
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
