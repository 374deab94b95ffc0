package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

const testToken = "Bot.verysecret.token-value"

func TestSecretString_String(t *testing.T) {
	s := SecretString(testToken)

	result := s.String()

	if result != redactedPlaceholder {
		t.Errorf("String() = %q, want %q", result, redactedPlaceholder)
	}
	if strings.Contains(result, testToken) {
		t.Error("String() leaked the raw secret value")
	}
}

func TestSecretString_Sprintf(t *testing.T) {
	s := SecretString(testToken)

	// %s and %v both route through the Stringer interface.
	for _, verb := range []string{"%s", "%v"} {
		result := fmt.Sprintf("token="+verb, s)
		if strings.Contains(result, testToken) {
			t.Errorf("fmt.Sprintf(%s) leaked the raw secret: %s", verb, result)
		}
		if result != "token="+redactedPlaceholder {
			t.Errorf("fmt.Sprintf(%s) = %q, want redacted form", verb, result)
		}
	}
}

func TestSecretString_MarshalJSON(t *testing.T) {
	type payload struct {
		Token SecretString `json:"token"`
	}

	data, err := json.Marshal(payload{Token: SecretString(testToken)})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if strings.Contains(string(data), testToken) {
		t.Errorf("MarshalJSON leaked the raw secret: %s", data)
	}
	if !strings.Contains(string(data), redactedPlaceholder) {
		t.Errorf("MarshalJSON = %s, want redacted placeholder", data)
	}
}

func TestSecretString_Unmask(t *testing.T) {
	s := SecretString(testToken)
	if s.Unmask() != testToken {
		t.Errorf("Unmask() = %q, want the raw value", s.Unmask())
	}
}
