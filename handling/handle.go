package handling

import (
	"errors"
	"net/http"
	"priority1_quote_server/lib"

	"github.com/MonkyMars/gecho"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.InternalServerError(w).Send()
}

// HandlePhaseError maps quote phase errors to client responses. Anything it
// does not recognise is logged and reported as an internal error.
func HandlePhaseError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	var validationErr *lib.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return gecho.BadRequest(w,
			gecho.WithMessage("error.quote.invalidRequest"),
			gecho.WithData(validationErr),
		).Send()
	case errors.Is(err, lib.ErrUnknownOption):
		return gecho.BadRequest(w,
			gecho.WithMessage("error.quote.unknownOption"),
			gecho.WithData(map[string]string{"error": err.Error()}),
		).Send()
	case errors.Is(err, lib.ErrNoRequest):
		return gecho.Conflict(w,
			gecho.WithMessage("error.quote.noRequest"),
		).Send()
	case errors.Is(err, lib.ErrNoQuotes):
		return gecho.Conflict(w,
			gecho.WithMessage("error.quote.noQuotes"),
		).Send()
	case errors.Is(err, lib.ErrNoSelection):
		return gecho.Conflict(w,
			gecho.WithMessage("error.quote.noSelection"),
		).Send()
	}

	return HandleError(err, msg, logger, w)
}
