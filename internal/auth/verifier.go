package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"imgproxy/config"
)

// Subject is the verified caller identity for the lifetime of one request.
type Subject struct {
	UID string
}

// Verifier checks an opaque bearer credential and resolves it to a subject.
// It is constructed once at startup and injected into the api service, so
// tests can substitute their own.
type Verifier interface {
	Verify(token string) (Subject, error)
}

var ErrNoSubject = errors.New("token carries no subject")

// JWTVerifier validates HS256-signed tokens against a shared secret.
type JWTVerifier struct {
	secret []byte
	opts   []jwt.ParserOption
}

func NewJWTVerifier(cfg config.AuthConfig) *JWTVerifier {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &JWTVerifier{
		secret: []byte(cfg.Secret),
		opts:   opts,
	}
}

func (v *JWTVerifier) Verify(token string) (Subject, error) {

	parsed, err := jwt.Parse(token, v.keyFunc, v.opts...)
	if err != nil {
		return Subject{}, err
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return Subject{}, err
	}
	if sub == "" {
		return Subject{}, ErrNoSubject
	}

	return Subject{UID: sub}, nil
}

func (v *JWTVerifier) keyFunc(token *jwt.Token) (any, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("signing secret not configured")
	}
	return v.secret, nil
}
