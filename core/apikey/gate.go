package apikey

import (
	"crypto/subtle"

	"github.com/trezcool/mindcanvas/core"
)

// Header carries the shared secret on every protected request.
const Header = "X-API-Key"

// Gate checks request credentials against the secret captured at startup.
type Gate struct {
	secret []byte
}

func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Check succeeds only if `key` is present and equal to the configured secret.
func (g *Gate) Check(key string) error {
	if key == "" {
		return core.NewUnauthorizedError("missing key")
	}
	if len(g.secret) == 0 || subtle.ConstantTimeCompare([]byte(key), g.secret) == 0 {
		return core.NewUnauthorizedError("wrong key")
	}
	return nil
}
