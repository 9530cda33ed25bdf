package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// SessionManager signs the session tokens handed out after a simulated
// register or social login. A token only scopes overlay state to its session
// id; it grants nothing else.
type SessionManager struct {
	signingKey []byte
	ttl        time.Duration
}

func NewSessionManager(signingKey string, ttl time.Duration) *SessionManager {
	return &SessionManager{signingKey: []byte(signingKey), ttl: ttl}
}

type SessionClaims struct {
	jwt.RegisteredClaims
	UserType domain.UserType `json:"user_type"`
}

// Session.ID is unique per issued token. Social logins share a canned user
// id, so overlays are keyed on ID rather than UserID.
type Session struct {
	ID       string
	UserID   string
	UserType domain.UserType
}

func (m *SessionManager) Issue(userID string, userType domain.UserType) (token string, expiresIn int64, err error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserType: userType,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.signingKey)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(m.ttl.Seconds()), nil
}

func (m *SessionManager) Parse(tokenStr string) (Session, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return m.signingKey, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := tok.Claims.(*SessionClaims)
	if !ok || !tok.Valid || claims.Subject == "" || claims.ID == "" {
		return Session{}, ErrInvalidToken
	}
	return Session{ID: claims.ID, UserID: claims.Subject, UserType: claims.UserType}, nil
}
