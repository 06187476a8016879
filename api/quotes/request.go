package quotes

import (
	"errors"
	"fmt"
	"net/http"
	"priority1_quote_server/handling"
	"priority1_quote_server/lib"
	"priority1_quote_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleSubmitRequest handles POST /quotes/request (phase 1)
func (qrm *QuoteRoutesManager) HandleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	session, ok := qrm.session(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ShipmentRequest](r)
	if err != nil {
		var validationErr *lib.ValidationError
		if errors.As(err, &validationErr) {
			handling.HandlePhaseError(err, "", qrm.logger, w)
			return
		}
		gecho.BadRequest(w,
			gecho.WithMessage("error.quote.invalidRequestBody"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	requestId, err := qrm.quoteService.SubmitRequest(session, body)
	if err != nil {
		handling.HandlePhaseError(err, "failed to submit shipment request", qrm.logger, w)
		return
	}

	if err := qrm.sessionService.Save(r.Context(), session); err != nil {
		handling.HandleError(err, "failed to save session", qrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage(fmt.Sprintf("Request submitted successfully with ID: %s", requestId)),
		gecho.WithData(map[string]any{
			"request_id":   requestId,
			"request_data": session.RequestData,
			"phase":        session.Phase(),
		}),
		gecho.Send(),
	)
}

// HandleGetRequest handles GET /quotes/request for reviewing the submitted request
func (qrm *QuoteRoutesManager) HandleGetRequest(w http.ResponseWriter, r *http.Request) {
	session, ok := qrm.session(w, r)
	if !ok {
		return
	}

	if session.RequestData == nil {
		handling.HandlePhaseError(lib.ErrNoRequest, "", qrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"request_id":   session.RequestId,
			"request_data": session.RequestData,
		}),
		gecho.Send(),
	)
}
