package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"stripe": map[string]any{
			"secretKey":     "",
			"webhookSecret": "",
			"siteUrl":       "",
		},
		"pricing": map[string]any{
			"default": 399,
		},
		"rateLimit": map[string]any{
			"purchasePerIp": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STRIPE_WEBHOOKSECRET", want: "stripe.webhookSecret"},
		{envKey: "STRIPE_SITEURL", want: "stripe.siteUrl"},
		{envKey: "PRICING_DEFAULT", want: "pricing.default"},
		{envKey: "RATELIMIT_PURCHASEPERIP", want: "rateLimit.purchasePerIp"},
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
