package api

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionCookie = "portfolio_session"

// SessionGate decides whether a request may perform administrative writes.
// The session is a signed HS256 token in an HttpOnly cookie carrying a single
// boolean "admin" claim; no session state is kept server-side.
type SessionGate struct {
	adminPassword string
	secret        []byte
	ttl           time.Duration
}

func NewSessionGate(adminPassword string, secret []byte, ttl time.Duration) *SessionGate {
	return &SessionGate{adminPassword: adminPassword, secret: secret, ttl: ttl}
}

type loginRequest struct {
	Password string `json:"password"`
}

func (g *SessionGate) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if !g.passwordMatches(req.Password) {
		writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(g.ttl).Unix(),
	})
	signed, err := token.SignedString(g.secret)
	if err != nil {
		writeError(w, "could not establish session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(g.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}

func (g *SessionGate) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}

func (g *SessionGate) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]bool{"admin": g.isAdmin(r)}, http.StatusOK)
}

// RequireAdmin guards the admin subrouter. A missing session and a bad one
// are indistinguishable to the caller.
func (g *SessionGate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.isAdmin(r) {
			writeError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// passwordMatches accepts either a plaintext configured secret (constant-time
// equality) or a bcrypt hash of it.
func (g *SessionGate) passwordMatches(password string) bool {
	if strings.HasPrefix(g.adminPassword, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(g.adminPassword), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(g.adminPassword), []byte(password)) == 1
}

func (g *SessionGate) isAdmin(r *http.Request) bool {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return false
	}

	token, err := jwt.Parse(c.Value, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	admin, ok := claims["admin"].(bool)

	return ok && admin
}
