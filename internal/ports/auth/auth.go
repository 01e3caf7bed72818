package auth

import "context"

// Claims es la identidad verificada del caller. UserID es el holder del registro.
type Claims struct {
	UserID string
	Issuer string
}

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
