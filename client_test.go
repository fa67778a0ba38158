package curbwise

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, server
}

func TestAuthorizationHeader(t *testing.T) {
	t.Run("NoCredentialSendsNoHeader", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Header["Authorization"]; ok {
				t.Errorf("expected no Authorization header, got %q", r.Header.Get("Authorization"))
			}
			w.Write([]byte(`{}`))
		}))
		var out struct{}
		if err := client.sendAndDecode(context.Background(), http.MethodGet, "/me", nil, &out); err != nil {
			t.Fatalf("request failed: %v", err)
		}
	})

	t.Run("CredentialSendsExactBearer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer my-secret-token" {
				t.Errorf("expected 'Bearer my-secret-token', got %q", got)
			}
			w.Write([]byte(`{}`))
		}))
		defer server.Close()
		client, err := NewClient(Config{BaseURL: server.URL, AccessToken: "my-secret-token"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		var out struct{}
		if err := client.sendAndDecode(context.Background(), http.MethodGet, "/me", nil, &out); err != nil {
			t.Fatalf("request failed: %v", err)
		}
	})

	t.Run("BearerPrefixStripped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer my-secret-token" {
				t.Errorf("expected 'Bearer my-secret-token', got %q", got)
			}
			w.Write([]byte(`{}`))
		}))
		defer server.Close()
		client, err := NewClient(Config{BaseURL: server.URL, AccessToken: "Bearer my-secret-token"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		var out struct{}
		if err := client.sendAndDecode(context.Background(), http.MethodGet, "/me", nil, &out); err != nil {
			t.Fatalf("request failed: %v", err)
		}
	})
}

func TestErrorNormalization(t *testing.T) {
	t.Run("DetailSurfacedVerbatim", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"detail":"Forbidden"}`))
		}))
		err := client.sendAndDecode(context.Background(), http.MethodGet, "/violations", nil, nil)
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "Forbidden" {
			t.Errorf("expected message 'Forbidden', got %q", err.Error())
		}
		apiErr, ok := err.(APIError)
		if !ok {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.Status != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", apiErr.Status)
		}
		if !apiErr.IsAuthFailure() {
			t.Error("expected 403 to count as an auth failure")
		}
	})

	t.Run("UnparseableBodyFallsBack", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>boom</html>`))
		}))
		err := client.sendAndDecode(context.Background(), http.MethodGet, "/violations", nil, nil)
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "HTTP error 500" {
			t.Errorf("expected 'HTTP error 500', got %q", err.Error())
		}
	})

	t.Run("TransportFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()
		client, err := NewClient(Config{BaseURL: server.URL})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		err = client.sendAndDecode(context.Background(), http.MethodGet, "/violations", nil, nil)
		if _, ok := err.(TransportError); !ok {
			t.Fatalf("expected TransportError, got %T: %v", err, err)
		}
	})

	t.Run("MalformedSuccessBody", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		var out struct{}
		err := client.sendAndDecode(context.Background(), http.MethodGet, "/me", nil, &out)
		if _, ok := err.(DecodeError); !ok {
			t.Fatalf("expected DecodeError, got %T: %v", err, err)
		}
	})
}

func TestNewClientValidation(t *testing.T) {
	cases := []struct {
		name    string
		baseURL string
	}{
		{"MissingScheme", "api.curbwise.io"},
		{"MissingHost", "https://"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewClient(Config{BaseURL: tc.baseURL}); err == nil {
				t.Errorf("expected error for base URL %q", tc.baseURL)
			}
		})
	}

	t.Run("TrailingSlashTrimmed", func(t *testing.T) {
		client, err := NewClient(Config{BaseURL: "https://api.example.com/v1/"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if got := client.buildURL("/me"); got != "https://api.example.com/v1/me" {
			t.Errorf("unexpected URL %q", got)
		}
	})
}

func TestLoginExchangeIsFormEncoded(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
			t.Errorf("expected form-encoded body, got content type %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm failed: %v", err)
		}
		if r.PostForm.Get("username") != "pat" || r.PostForm.Get("password") != "hunter2" {
			t.Errorf("unexpected form values: %v", r.PostForm)
		}
		w.Write([]byte(`{"access_token":"T","user":{"id":"3f0d1c6e-2f6a-4bbd-9a20-14d07a1a1f01","username":"pat","email":"pat@example.com","role":"inspector","is_active":true}}`))
	}))
	resp, err := client.Auth.Login(context.Background(), "pat", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.AccessToken != "T" {
		t.Errorf("expected token T, got %q", resp.AccessToken)
	}
	if resp.User.Role != RoleInspector {
		t.Errorf("expected inspector role, got %q", resp.User.Role)
	}
}
