// internal/ratelimiter/identity.go
package ratelimiter

import (
	"net/http"
	"strings"
)

// UnknownClient es el identificador cuando no hay cabecera de reenvío.
const UnknownClient = "unknown"

// ClientIP devuelve el primer IP de X-Forwarded-For (el cliente original detrás de proxies).
//
// La cabecera la puede falsificar el cliente si ningún proxy de confianza la
// reescribe: sirve para disuadir abusos, no como frontera de seguridad.
func ClientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff == "" {
		return UnknownClient
	}

	ip := strings.TrimSpace(strings.Split(xff, ",")[0])
	if ip == "" {
		return UnknownClient
	}
	return ip
}

// Key arma el identificador namespaced por ruta, ej. "contact_1.2.3.4".
func Key(route, origin string) string {
	return route + "_" + origin
}
