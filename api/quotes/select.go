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

// HandleSelectOption handles POST /quotes/select (phase 3)
func (qrm *QuoteRoutesManager) HandleSelectOption(w http.ResponseWriter, r *http.Request) {
	session, ok := qrm.session(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SelectOptionRequest](r)
	if err != nil {
		var validationErr *lib.ValidationError
		if errors.As(err, &validationErr) {
			handling.HandlePhaseError(err, "", qrm.logger, w)
			return
		}
		gecho.BadRequest(w,
			gecho.WithMessage("error.quote.invalidSelectionBody"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	price, err := qrm.quoteService.SelectOption(session, body.Option)
	if err != nil {
		handling.HandlePhaseError(err, "failed to select quote option", qrm.logger, w)
		return
	}

	if err := qrm.sessionService.Save(r.Context(), session); err != nil {
		handling.HandleError(err, "failed to save session", qrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage(fmt.Sprintf("You selected: %s with value %s", body.Option, price)),
		gecho.WithData(map[string]any{
			"selected_option": body.Option,
			"price":           price,
			"phase":           session.Phase(),
		}),
		gecho.Send(),
	)
}
