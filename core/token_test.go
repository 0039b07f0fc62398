package core

import (
	"testing"
	"time"
)

func TestToken_OAuth2RoundTrip(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token := Token{Token: "t", TokenType: "bearer", RefreshToken: "r", Scope: "read", ExpiresIn: 3600}

	converted := token.OAuth2(issued)
	if converted.AccessToken != "t" || converted.RefreshToken != "r" || converted.TokenType != "bearer" {
		t.Fatalf("unexpected conversion %#v", converted)
	}
	if !converted.Expiry.Equal(issued.Add(time.Hour)) {
		t.Fatalf("unexpected expiry %v", converted.Expiry)
	}

	back := TokenFromOAuth2(converted)
	if back.Token != "t" || back.Scope != "read" || back.ExpiresIn != 3600 {
		t.Fatalf("unexpected round trip %#v", back)
	}
}

func TestToken_OAuth2WithoutIssueTime(t *testing.T) {
	converted := Token{Token: "t", ExpiresIn: 60}.OAuth2(time.Time{})
	if !converted.Expiry.IsZero() {
		t.Fatalf("expected expiry to stay unset, got %v", converted.Expiry)
	}
	if TokenFromOAuth2(nil) != (Token{}) {
		t.Fatalf("expected empty token for nil input")
	}
}
