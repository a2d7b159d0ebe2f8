package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoginIssuesUsableToken(t *testing.T) {
	server, _ := newTestServer(t)

	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"alice@example.com"}`))
	loginRec := doRequest(server, loginReq)
	if loginRec.Code != http.StatusOK {
		t.Fatalf("login: status %d: %s", loginRec.Code, loginRec.Body.String())
	}

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(loginRec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Data.AccessToken == "" {
		t.Fatal("expected access token")
	}

	req := httptest.NewRequest(http.MethodGet, "/orders/alice@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.AccessToken)
	if rec := doRequest(server, req); rec.Code != http.StatusOK {
		t.Fatalf("issued token rejected: status %d", rec.Code)
	}
}

func TestLoginRequiresEmail(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
	if rec := doRequest(server, req); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpsertUserReturnsFreshToken(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/users/alice@example.com",
		strings.NewReader(`{"name":"Alice","location":"Dhaka"}`))
	req.Header.Set("Authorization", bearerToken(t, server, "alice@example.com"))
	rec := doRequest(server, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert user: status %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			User struct {
				Email string `json:"email"`
				Name  string `json:"name"`
			} `json:"user"`
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.User.Email != "alice@example.com" || resp.Data.User.Name != "Alice" {
		t.Fatalf("unexpected profile: %+v", resp.Data.User)
	}
	if resp.Data.AccessToken == "" {
		t.Fatal("expected refreshed access token")
	}
}

func TestGetUserIsOwnerOnly(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/users/bob@example.com", nil)
	req.Header.Set("Authorization", bearerToken(t, server, "alice@example.com"))
	if rec := doRequest(server, req); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestListUsersRequiresAdmin(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", bearerToken(t, server, "alice@example.com"))
	if rec := doRequest(server, req); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestGrantRoleRequiresAdminActor(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/roles/bob@example.com/grant",
		strings.NewReader(`{"role_id":"admin"}`))
	req.Header.Set("Authorization", bearerToken(t, server, "alice@example.com"))
	if rec := doRequest(server, req); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestReviewAuthorComesFromCredential(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/reviews",
		strings.NewReader(`{"user_name":"Alice","rating":5,"comment":"great"}`))
	req.Header.Set("Authorization", bearerToken(t, server, "alice@example.com"))
	rec := doRequest(server, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("add review: status %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			UserEmail string `json:"user_email"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.UserEmail != "alice@example.com" {
		t.Fatalf("expected credential email as author, got %q", resp.Data.UserEmail)
	}
}
