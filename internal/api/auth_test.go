package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mcastellanos/storefront/internal/user"
)

func TestRegisterLoginMe(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/auth/register", "",
		`{"name":"Ana","email":"ana@example.com","password":"s3cret"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}
	var reg struct {
		Success bool        `json:"success"`
		Token   string      `json:"token"`
		User    user.Public `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reg.Success || reg.Token == "" || reg.User.Role != user.RoleCustomer {
		t.Fatalf("register response = %s", w.Body.String())
	}
	if containsField(w.Body.Bytes(), "password_hash") {
		t.Fatal("response leaks the password hash")
	}

	w = f.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"ana@example.com","password":"s3cret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = f.do(t, http.MethodGet, "/api/auth/me", login.Token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d, body %s", w.Code, w.Body.String())
	}
	var me struct {
		User user.Public `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if me.User.ID != reg.User.ID || me.User.Email != "ana@example.com" {
		t.Fatalf("me = %+v, want the registered user", me.User)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/api/auth/register", "",
		`{"name":"Ana","email":"ana@example.com","password":"right"}`)

	w := f.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"ana@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/auth/register", "", `{"name":"","email":"a@b.c","password":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: status = %d, want 400", w.Code)
	}

	f.do(t, http.MethodPost, "/api/auth/register", "", `{"name":"Ana","email":"dup@example.com","password":"x"}`)
	w = f.do(t, http.MethodPost, "/api/auth/register", "", `{"name":"Bea","email":"dup@example.com","password":"y"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate email: status = %d, want 400", w.Code)
	}
}

func containsField(b []byte, field string) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return false
	}
	u, ok := m["user"]
	if !ok {
		return false
	}
	var um map[string]json.RawMessage
	if err := json.Unmarshal(u, &um); err != nil {
		return false
	}
	_, ok = um[field]
	return ok
}
