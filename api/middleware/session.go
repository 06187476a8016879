package middleware

import (
	"context"
	"net/http"
	"priority1_quote_server/lib"
	"priority1_quote_server/structs"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing session data in request context
type contextKey string

const SessionContextKey contextKey = "session"

// SessionMiddleware attaches the caller's session to the request context,
// starting a new one (and setting its cookie) when none can be resumed.
func (mw *Middleware) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieName := mw.cfg.Session.CookieName
		token, _ := lib.GetCookieValue(cookieName, r)

		session, newToken, exp, err := mw.sessionService.ResumeOrCreate(r.Context(), token)
		if err != nil {
			mw.logger.Error("Failed to load session", gecho.Field("error", err))
			gecho.ServiceUnavailable(w,
				gecho.WithMessage("error.session.unavailable"),
				gecho.Send(),
			)
			return
		}

		if newToken != "" {
			lib.SetCookie(cookieName, newToken, exp, mw.CookieOptions(), w)
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionFromContext is a helper function to extract the session from request context
func GetSessionFromContext(ctx context.Context) (*structs.Session, bool) {
	session, ok := ctx.Value(SessionContextKey).(*structs.Session)
	return session, ok && session != nil
}
