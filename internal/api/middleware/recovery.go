package middleware

import (
	"log/slog"
	"net/http"

	"github.com/tannerhall/floorman/internal/api/apierr"
	"github.com/tannerhall/floorman/internal/middleware"
)

// Recovery converts panics into JSON 500 responses so a desk terminal
// never receives a bare text error page.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
