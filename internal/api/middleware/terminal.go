package middleware

import (
	"context"
	"net/http"

	"github.com/tannerhall/floorman/internal/api/apierr"
)

// TerminalHeader identifies the workstation a request comes from. Seating
// sessions are scoped per terminal so two desks never share an in-flight
// assignment.
const TerminalHeader = "X-Terminal-ID"

type contextKey string

const terminalKey contextKey = "terminal"

// Terminal creates middleware that requires the terminal header and stores
// its value in the request context
func Terminal() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			terminal := r.Header.Get(TerminalHeader)
			if terminal == "" {
				apierr.WriteError(w, apierr.NewTerminalRequiredError())
				return
			}

			ctx := context.WithValue(r.Context(), terminalKey, terminal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MustGetTerminal returns the terminal from the context, panicking if absent.
// Only use in handlers behind the Terminal middleware.
func MustGetTerminal(ctx context.Context) string {
	terminal, ok := ctx.Value(terminalKey).(string)
	if !ok {
		panic("terminal not found in context; is the Terminal middleware missing?")
	}
	return terminal
}
