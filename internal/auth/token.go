package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/eduportal/config"
	"github.com/pkg/errors"
)

const issuer = "eduportal"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims represents the authorization claims carried by a session token.
// RegisteredClaims.ID is the session id and Subject the user id.
type Claims struct {
	jwt.RegisteredClaims
	UserType string `json:"user_type,omitempty"`
}

func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidToken, "subject is not a user id")
	}
	return uint(id), nil
}

// TokenManager signs and verifies session tokens with HS256.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	ttl := cfg.Auth.JWTTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(cfg.Auth.JWTSecret), ttl: ttl, now: time.Now}
}

// Generate returns a signed token for the session and its expiry.
func (m *TokenManager) Generate(sessionID string, userID uint, userType string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserType: userType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "signing token")
	}
	return ss, expiresAt, nil
}

// Parse verifies the signature, issuer and expiry of a token.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if claims.ID == "" {
		return nil, errors.Wrap(ErrInvalidToken, "missing session id")
	}
	return claims, nil
}
