package jwtx

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints JWTs. The directory never issues tokens to clients; signers
// back local tooling and tests that need a token the verifier will accept.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
}

type pemSigner struct {
	kid    string
	method jwt.SigningMethod
	key    crypto.Signer
}

// NewSigner loads a PKCS8 PEM private key and picks the algorithm from
// its type: Ed25519 signs EdDSA, P-256 signs ES256, RSA signs RS256.
func NewSigner(kid string, pemKey []byte) (Signer, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM private key")
	}
	if block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("jwtx: expected PRIVATE KEY, got %q (PKCS8 required)", block.Type)
	}

	priv, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse PKCS8: %w", err)
	}

	s := &pemSigner{kid: kid}
	switch key := priv.(type) {
	case ed25519.PrivateKey:
		s.method, s.key = jwt.SigningMethodEdDSA, key
	case *ecdsa.PrivateKey:
		if key.Curve != elliptic.P256() {
			return nil, errors.New("jwtx: ECDSA key must use P-256")
		}
		s.method, s.key = jwt.SigningMethodES256, key
	case *rsa.PrivateKey:
		if key.N.BitLen() < 2048 {
			return nil, errors.New("jwtx: RSA key must be at least 2048 bits")
		}
		s.method, s.key = jwt.SigningMethodRS256, key
	default:
		return nil, fmt.Errorf("jwtx: unsupported private key type %T", priv)
	}
	return s, nil
}

func (s *pemSigner) Alg() string { return s.method.Alg() }
func (s *pemSigner) KID() string { return s.kid }

// Sign serialises claims into a compact JWT with the kid header set.
func (s *pemSigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(s.method, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

func (s *pemSigner) PublicJWK() JWK {
	switch pub := s.key.Public().(type) {
	case ed25519.PublicKey:
		return NewEd25519JWK(s.kid, s.Alg(), pub)
	case *ecdsa.PublicKey:
		return NewES256JWK(s.kid, s.Alg(), pub)
	case *rsa.PublicKey:
		return NewRSAJWK(s.kid, s.Alg(), pub)
	}
	return JWK{}
}
