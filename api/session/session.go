package session

import (
	"net/http"
	"priority1_quote_server/api/middleware"
	"priority1_quote_server/handling"
	"priority1_quote_server/lib"
	"time"

	"github.com/MonkyMars/gecho"
)

// HandleGetSession handles GET /session. It resumes or starts the caller's
// session, issues a fresh CSRF token and returns the session view.
func (srm *SessionRoutesManager) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		handling.HandleError(lib.ErrSessionNotFound, "session missing from context", srm.logger, w)
		return
	}

	token, err := lib.GenerateCSRFToken()
	if err != nil {
		srm.logger.Error("Failed to generate CSRF token", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.csrf.failedToGenerate"),
			gecho.Send(),
		)
		return
	}

	expiry := time.Now().Add(srm.cfg.Session.TTL)
	lib.SetCSRFCookie(token, expiry, srm.mw.CookieOptions(), w)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"session":    session.View(),
			"csrf_token": token,
		}),
		gecho.Send(),
	)
}

// HandleDeleteSession handles DELETE /session. The next request starts over
// with an empty session.
func (srm *SessionRoutesManager) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		handling.HandleError(lib.ErrSessionNotFound, "session missing from context", srm.logger, w)
		return
	}

	if err := srm.sessionService.Destroy(r.Context(), session.Id); err != nil {
		handling.HandleError(err, "failed to delete session", srm.logger, w)
		return
	}

	opts := srm.mw.CookieOptions()
	lib.ClearCookie(srm.cfg.Session.CookieName, opts, w)
	lib.ClearCookie(lib.CSRFCookieName, opts, w)

	srm.logger.Info("Session discarded", gecho.Field("session_id", session.Id))

	gecho.Success(w,
		gecho.WithMessage("success.session.deleted"),
		gecho.Send(),
	)
}
