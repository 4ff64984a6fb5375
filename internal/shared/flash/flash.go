package flash

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName is the cookie carrying pending messages between a redirect and the next page.
	CookieName = "rb_flash"
	ttl        = 5 * time.Minute
)

// ErrInvalidFlash is returned for tampered, expired or malformed cookies.
var ErrInvalidFlash = errors.New("invalid flash cookie")

type claims struct {
	Messages []string `json:"msgs"`
	jwt.RegisteredClaims
}

// Store signs flash messages into an HS256 cookie.
type Store struct {
	secret []byte
	secure bool
}

// NewStore returns a Store keyed by secret.
func NewStore(secret string, secure bool) *Store {
	return &Store{secret: []byte(secret), secure: secure}
}

// Set replaces the pending messages on the response.
func (s *Store) Set(c *gin.Context, messages ...string) error {
	token, err := s.sign(messages, time.Now())
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(ttl/time.Second), "/", "", s.secure, true)
	return nil
}

// Pop returns the pending messages and clears the cookie. A missing or
// invalid cookie yields no messages.
func (s *Store) Pop(c *gin.Context) []string {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)

	messages, err := s.verify(raw)
	if err != nil {
		return nil
	}
	return messages
}

func (s *Store) sign(messages []string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign flash: %w", err)
	}
	return signed, nil
}

func (s *Store) verify(raw string) ([]string, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(raw, parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidFlash
	}
	return parsed.Messages, nil
}
