package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/assignbox/pkg/cryptox"
	"github.com/aussiebroadwan/assignbox/pkg/jwtx"
)

// InitSessionKeys builds the HS256 signer and verifier for session tokens.
//
// When JWT_SECRET is empty a random secret is generated for this process
// only, so every restart logs all clients out. A configured secret shorter
// than jwtx.MinSecretLength is rejected.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.HS256Signer, *jwtx.HS256Verifier, error) {
	secret := []byte(cfg.JWTSecret)

	if len(secret) == 0 {
		tok, err := cryptox.NewSessionSecret(cryptox.SessionSecretSize)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = []byte(tok)

		logger.Warn("JWT_SECRET not set, using an ephemeral session secret; sessions will not survive a restart")
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid JWT_SECRET: %w", err)
	}

	logger.Info("session signing configured",
		"algorithm", signer.Alg(),
		"issuer", cfg.JWTIssuer,
		"session_ttl", cfg.SessionTTL,
		"cookie_max_age", cfg.CookieMaxAge,
	)

	return signer, jwtx.NewVerifierHS256(secret, cfg.JWTIssuer), nil
}
