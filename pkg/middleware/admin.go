package middleware

import (
	"net/http"

	"github.com/vfg2006/ticket-reconciler-api/pkg/apiErrors"
	"github.com/vfg2006/ticket-reconciler-api/pkg/log"
)

const adminTokenHeader = "X-Admin-Token"

// AdminOnly restringe a rota a chamadores com um token presente na
// allow-list administrativa. A lista vem da configuração injetada na
// inicialização, nunca de estado global lido no momento da chamada.
func AdminOnly(allowedTokens []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedTokens))
	for _, token := range allowedTokens {
		if token != "" {
			allowed[token] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(adminTokenHeader)
			if token == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidAdminToken, "Token administrativo ausente", nil)
				return
			}

			if !allowed[token] {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).
					Warn("Tentativa de acesso administrativo com token fora da allow-list")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Token administrativo não autorizado", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
