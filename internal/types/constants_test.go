package types

import "testing"

func contains(origins []string, want string) bool {
	for _, origin := range origins {
		if origin == want {
			return true
		}
	}
	return false
}

func TestAllowedOriginsDefaults(t *testing.T) {
	t.Setenv("CLIENT_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	origins := AllowedOrigins()

	if len(origins) != len(defaultOrigins) {
		t.Fatalf("expected only defaults, got %v", origins)
	}
	for _, want := range defaultOrigins {
		if !contains(origins, want) {
			t.Fatalf("default origin %q missing from %v", want, origins)
		}
	}
}

// Origins set after package init must still be picked up: main loads
// .env long after this package initializes.
func TestAllowedOriginsReadEnvLate(t *testing.T) {
	t.Setenv("CLIENT_URL", "https://app.example.com")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	origins := AllowedOrigins()

	for _, want := range []string{
		"https://app.example.com",
		"https://a.example.com",
		"https://b.example.com",
	} {
		if !contains(origins, want) {
			t.Fatalf("origin %q missing from %v", want, origins)
		}
	}

	if contains(origins, "") {
		t.Fatalf("empty origin leaked into %v", origins)
	}
}
