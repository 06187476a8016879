package quotes

import (
	"net/http"
	"priority1_quote_server/api/health"
	"priority1_quote_server/handling"
	"priority1_quote_server/lib"
	"priority1_quote_server/services"

	"github.com/MonkyMars/gecho"
)

// HandleGenerateQuote handles POST /quotes/generate (phase 2). A failed
// collaborator call still answers 200 with the fallback options and a
// degraded flag.
func (qrm *QuoteRoutesManager) HandleGenerateQuote(w http.ResponseWriter, r *http.Request) {
	session, ok := qrm.session(w, r)
	if !ok {
		return
	}

	result, err := qrm.quoteService.FetchQuotes(r.Context(), session)
	if err != nil {
		handling.HandlePhaseError(err, "failed to fetch quotes", qrm.logger, w)
		return
	}

	health.QuotesGenerated.WithLabelValues(result.Source).Inc()
	if result.Degraded {
		health.QuotesFallback.Inc()
	}

	if err := qrm.sessionService.Save(r.Context(), session); err != nil {
		handling.HandleError(err, "failed to save session", qrm.logger, w)
		return
	}

	message := "Quote generated and saved."
	switch {
	case result.Degraded:
		message = "Error calling the rate quote service, using fallback quote options."
	case result.Source == services.QuoterModeStub:
		message = "Quote generated and saved (simulated)."
	}

	gecho.Success(w,
		gecho.WithMessage(message),
		gecho.WithData(result),
		gecho.Send(),
	)
}

// HandleGetOptions handles GET /quotes/options
func (qrm *QuoteRoutesManager) HandleGetOptions(w http.ResponseWriter, r *http.Request) {
	session, ok := qrm.session(w, r)
	if !ok {
		return
	}

	if len(session.QuoteOptions) == 0 {
		handling.HandlePhaseError(lib.ErrNoQuotes, "", qrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"request_id":      session.RequestId,
			"quote_options":   session.QuoteOptions,
			"labels":          session.QuoteOptions.Labels(),
			"selected_option": session.SelectedOption,
		}),
		gecho.Send(),
	)
}
