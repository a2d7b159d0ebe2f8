package application

import (
	"errors"
	"strings"
	"testing"
	"time"

	domainerrors "toolhub/contexts/identity-access/token-service/domain/errors"
)

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time { return c.at }

func TestIssueThenVerifyRoundTrip(t *testing.T) {
	service := Service{Secret: []byte("test-secret"), TokenTTL: time.Hour}

	issued, err := service.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := service.Verify("Bearer " + issued.AccessToken)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("unexpected claim email %s", claims.Email)
	}
}

func TestVerifyMissingHeader(t *testing.T) {
	service := Service{Secret: []byte("test-secret")}

	_, err := service.Verify("")
	if !errors.Is(err, domainerrors.ErrMissingCredential) {
		t.Fatalf("expected missing credential, got %v", err)
	}
}

func TestVerifyRejectsMalformedScheme(t *testing.T) {
	service := Service{Secret: []byte("test-secret")}

	for _, header := range []string{"Bearer", "Basic abc.def.ghi", "Bearer "} {
		if _, err := service.Verify(header); !errors.Is(err, domainerrors.ErrInvalidCredential) {
			t.Fatalf("header %q: expected invalid credential, got %v", header, err)
		}
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	service := Service{Secret: []byte("test-secret")}

	issued, err := service.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	tampered := issued.AccessToken[:len(issued.AccessToken)-2] + "xx"

	if _, err := service.Verify("Bearer " + tampered); !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := Service{Secret: []byte("issuer-secret")}
	verifier := Service{Secret: []byte("other-secret")}

	issued, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Verify("Bearer " + issued.AccessToken); !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	past := fixedClock{at: time.Now().UTC().Add(-48 * time.Hour)}
	issuer := Service{Secret: []byte("test-secret"), TokenTTL: time.Hour, Clock: past}
	verifier := Service{Secret: []byte("test-secret")}

	issued, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Verify("Bearer " + issued.AccessToken); !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential for expired token, got %v", err)
	}
}

func TestAuthorizeExactMatchOnly(t *testing.T) {
	service := Service{Secret: []byte("test-secret")}

	issued, err := service.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	claims, err := service.Verify("Bearer " + issued.AccessToken)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if err := service.Authorize(claims, "a@x.com"); err != nil {
		t.Fatalf("expected authorize success, got %v", err)
	}
	if err := service.Authorize(claims, "b@x.com"); !errors.Is(err, domainerrors.ErrOwnershipMismatch) {
		t.Fatalf("expected ownership mismatch, got %v", err)
	}
	if err := service.Authorize(claims, "A@x.com"); !errors.Is(err, domainerrors.ErrOwnershipMismatch) {
		t.Fatalf("expected case-sensitive mismatch, got %v", err)
	}
}

func TestIssueRequiresEmail(t *testing.T) {
	service := Service{Secret: []byte("test-secret")}

	if _, err := service.Issue("  "); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestIssuedTokenHasThreeSegments(t *testing.T) {
	service := Service{Secret: []byte("test-secret")}

	issued, err := service.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if parts := strings.Split(issued.AccessToken, "."); len(parts) != 3 {
		t.Fatalf("expected compact JWS, got %d segments", len(parts))
	}
}
