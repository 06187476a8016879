package quotes

import (
	"net/http"
	"priority1_quote_server/handling"

	"github.com/MonkyMars/gecho"
)

// HandleGetDraft handles GET /quotes/draft (phase 4). The draft is rendered
// on every call and never stored.
func (qrm *QuoteRoutesManager) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	session, ok := qrm.session(w, r)
	if !ok {
		return
	}

	draft, err := qrm.quoteService.Draft(session)
	if err != nil {
		handling.HandlePhaseError(err, "failed to render email draft", qrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(draft),
		gecho.Send(),
	)
}
