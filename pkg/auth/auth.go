package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrEmptySecret  = errors.New("token secret cannot be empty")
)

type Config struct {
	Secret   string        `mapstructure:"jwt_secret"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
	Cost     int           `mapstructure:"bcrypt_cost"`
}

// Claims are the application claims carried by every bearer token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

// Issuer signs and verifies HS256 bearer tokens.
type Issuer struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
	cost   int
}

// NewIssuer creates an Issuer from the config. A zero TTL defaults to 24 hours and a zero cost to bcrypt.DefaultCost.
func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	cost := cfg.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &Issuer{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		cost:   cost,
		now:    time.Now,
	}, nil
}

// Sign issues a token for the user that expires after the configured TTL.
func (i *Issuer) Sign(id int64, username string) (string, error) {
	now := i.now()

	claims := Claims{
		ID:       id,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Parse verifies the token signature and expiry and returns its claims.
func (i *Issuer) Parse(token string) (*Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return &claims, nil
}

// HashPassword returns the bcrypt hash of the password.
func (i *Issuer) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), i.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the password matches the bcrypt hash.
func (i *Issuer) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
