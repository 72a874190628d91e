package auth

import "testing"

func TestIsTokenService(t *testing.T) {
	if !isTokenService("hetzner") {
		t.Error("expected hetzner to be a token service")
	}
	for _, name := range []string{"rds", "sqs", ""} {
		if isTokenService(name) {
			t.Errorf("expected %q not to be a token service", name)
		}
	}
}
