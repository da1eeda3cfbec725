package core

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gvvenom/likespanel/internal/model"
)

// Cookie names carried by the application.
const (
	CookieApp   = "app_session_id"
	CookieVip   = "vip_session"
	CookieAdmin = "admin_session"
)

// SessionTTL is the fixed lifetime of every issued session.
const SessionTTL = 24 * time.Hour

// SessionService issues and validates HMAC-signed session tokens carried in
// cookies. There is no server-side session state: possession of an unexpired,
// correctly signed token is the whole credential.
type SessionService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewSessionService(secret, issuer string) *SessionService {
	return &SessionService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// IssueVip creates a signed token identifying a VIP user.
func (s *SessionService) IssueVip(userID int64, username string) (string, error) {
	return s.issue(userID, username, model.RoleVip)
}

// IssueAdmin creates a signed token binding the admin identity. The claim
// replaces the bare marker cookie: every protected call verifies the
// signature, role, and expiry.
func (s *SessionService) IssueAdmin(username string) (string, error) {
	return s.issue(0, username, model.RoleAdmin)
}

func (s *SessionService) issue(sub int64, username, role string) (string, error) {
	now := s.now()
	claims := model.SessionClaims{
		Sub:      sub,
		Username: username,
		Role:     role,
		Iat:      now.Unix(),
		Exp:      now.Add(SessionTTL).Unix(),
		Iss:      s.issuer,
	}
	return s.sign(claims)
}

// Validate parses and verifies a session token, returning its claims.
func (s *SessionService) Validate(token string) (*model.SessionClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid token format")
	}

	signingInput := parts[0] + "." + parts[1]
	expectedSig := s.hmacSign([]byte(signingInput))
	actualSig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("invalid signature encoding")
	}
	if subtle.ConstantTimeCompare(expectedSig, actualSig) != 1 {
		return nil, fmt.Errorf("invalid signature")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid payload encoding")
	}

	var claims model.SessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("invalid claims: %w", err)
	}

	if s.now().Unix() > claims.Exp {
		return nil, fmt.Errorf("token expired")
	}

	return &claims, nil
}

func (s *SessionService) sign(claims model.SessionClaims) (string, error) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(claimsJSON)

	signingInput := header + "." + payload
	sig := base64.RawURLEncoding.EncodeToString(s.hmacSign([]byte(signingInput)))

	return signingInput + "." + sig, nil
}

func (s *SessionService) hmacSign(data []byte) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(data)
	return mac.Sum(nil)
}

// SetSessionCookie attaches a session token to the response with the fixed
// 24-hour max age.
func SetSessionCookie(w http.ResponseWriter, name, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie revokes a session cookie by reissuing it with a negative
// max age.
func ClearSessionCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SecureRequest reports whether the request arrived over HTTPS, directly or
// via a forwarding proxy. Cookie attributes follow the request's protocol.
func SecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return r.Header.Get("X-Forwarded-Proto") == "https"
}
