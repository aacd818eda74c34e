// Package roomtoken mints LiveKit-compatible room access tokens.
package roomtoken

import (
	"errors"
	"time"

	"appointment-agent/internal/pkg/clock"
	"appointment-agent/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingCredentials = errors.New("api key and secret are required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
)

// VideoGrant mirrors the "video" claim understood by the media server.
type VideoGrant struct {
	RoomJoin bool   `json:"roomJoin,omitempty"`
	Room     string `json:"room,omitempty"`
}

type Claims struct {
	Name  string      `json:"name,omitempty"`
	Video *VideoGrant `json:"video,omitempty"`
	jwt.RegisteredClaims
}

type Issuer struct {
	apiKey   string
	secret   []byte
	room     string
	identity string
	ttl      time.Duration
	clock    clock.Clock
}

func NewIssuer(cfg config.LiveKitConfig, clk clock.Clock) *Issuer {
	return &Issuer{
		apiKey:   cfg.APIKey,
		secret:   []byte(cfg.APISecret),
		room:     cfg.RoomName,
		identity: cfg.ParticipantName,
		ttl:      cfg.TokenTTL,
		clock:    clk,
	}
}

// Issue returns a signed token allowing the fixed participant to join the fixed room.
func (i *Issuer) Issue() (string, error) {
	if i.apiKey == "" || len(i.secret) == 0 {
		return "", ErrMissingCredentials
	}

	now := i.clock.Now()
	claims := Claims{
		Video: &VideoGrant{
			RoomJoin: true,
			Room:     i.room,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.apiKey,
			Subject:   i.identity,
			ID:        i.identity,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	},
		jwt.WithIssuer(i.apiKey),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
