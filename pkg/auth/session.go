package auth

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	SessionCookie = "biblioteca_session"
	issuer        = "biblioteca"
)

var ErrInvalidSession = errors.New("invalid session")

type Config struct {
	Secret string        `envconfig:"SESSION_SECRET" required:"true" json:"-"`
	TTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	Secure bool          `envconfig:"SESSION_SECURE"`
}

// Claims are carried by the signed session cookie. Subject holds the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Sessions signs and verifies session cookies.
type Sessions struct {
	key    []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewSessions(cfg Config) *Sessions {
	return &Sessions{
		key:    []byte(cfg.Secret),
		ttl:    cfg.TTL,
		secure: cfg.Secure,
		now:    time.Now,
	}
}

// Issue returns a session cookie identifying userID.
func (s *Sessions) Issue(userID int) (*http.Cookie, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return nil, errors.Wrap(err, "sign session")
	}
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(s.ttl),
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Clear returns a cookie that removes the session on the client.
func (s *Sessions) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// UserID verifies the token and returns the user id it was issued for.
func (s *Sessions) UserID(token string) (int, error) {
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidSession
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 {
		return 0, ErrInvalidSession
	}
	return id, nil
}
