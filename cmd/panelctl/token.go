package main

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionExpiry busca en la cabecera Cookie un JWT con exp y devuelve su
// vencimiento. No verifica la firma: es solo informativo.
func sessionExpiry(cookieHeader string) (time.Time, bool) {
	cookies, err := http.ParseCookie(cookieHeader)
	if err != nil {
		return time.Time{}, false
	}
	parser := jwt.NewParser()
	for _, ck := range cookies {
		var claims jwt.RegisteredClaims
		if _, _, err := parser.ParseUnverified(ck.Value, &claims); err != nil {
			continue
		}
		if claims.ExpiresAt != nil {
			return claims.ExpiresAt.Time, true
		}
	}
	return time.Time{}, false
}
