package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"quizdeck/internal/service"
)

func TestAuthHandlers_RegisterAndLogin(t *testing.T) {
	auth := &mockAuth{registerToken: "tok-new", loginToken: "tok-existing"}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	// register success → 201 {token}
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", `{"username":"u","password":"p"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok-new" {
		t.Fatalf("expected token tok-new, got %v", m["token"])
	}
	if auth.lastRegisterUsername != "u" || auth.lastRegisterPassword != "p" {
		t.Fatalf("register credentials not forwarded: %q/%q", auth.lastRegisterUsername, auth.lastRegisterPassword)
	}

	// login success → 200 {token}
	w = doJSON(r, http.MethodPost, "/api/auth/login", "", `{"username":"u","password":"p"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok-existing" {
		t.Fatalf("expected token tok-existing, got %v", m["token"])
	}

	// malformed body → 400
	w = doJSON(r, http.MethodPost, "/api/auth/login", "", `{"username":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
}

func TestAuthHandlers_RegisterErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"missing fields", service.ErrInvalidInput, http.StatusBadRequest},
		{"duplicate username", service.ErrUsernameTaken, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{registerErr: tc.err}
			s := &service.Service{Authorization: auth}
			r := newTestRouter(s)

			w := doJSON(r, http.MethodPost, "/api/auth/register", "", `{"username":"u","password":"p"}`)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d; body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.err.Error() {
				t.Fatalf("error message: got %q, want %q", out.Error, tc.err.Error())
			}
		})
	}
}

func TestAuthHandlers_LoginInvalidCredentials(t *testing.T) {
	auth := &mockAuth{loginErr: service.ErrInvalidCredentials}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", `{"username":"ghost","password":"pw"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401; body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "invalid credentials" {
		t.Fatalf("error message: got %q", out.Error)
	}
}
