package services

import (
	"context"
	"errors"
	"fmt"
	"priority1_quote_server/lib"
	"priority1_quote_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"golang.org/x/sync/singleflight"
)

// QuoteSourceFallback marks option sets that replaced a failed quoter call.
const QuoteSourceFallback = "fallback"

// sharedQuoteTimeout bounds a quoter call that no single request owns
const sharedQuoteTimeout = 30 * time.Second

// QuoteService runs the four quote phases against a session. Each phase
// writes its own slot and clears the slots that depend on it.
type QuoteService struct {
	logger *gecho.Logger
	quoter RateQuoter

	// repeated generate clicks for one request share a single quoter call
	inflight singleflight.Group
}

func NewQuoteService(logger *gecho.Logger, quoter RateQuoter) *QuoteService {
	return &QuoteService{
		logger: logger,
		quoter: quoter,
	}
}

// SubmitRequest stores a new shipment request under a fresh request id.
// Quotes and selections made for an earlier request are discarded.
func (qs *QuoteService) SubmitRequest(session *structs.Session, req *structs.ShipmentRequest) (string, error) {
	if err := lib.Validate(req); err != nil {
		return "", err
	}

	requestId := lib.NewRequestId()

	err := errors.Join(
		session.Set(structs.SlotRequestData, req),
		session.Set(structs.SlotRequestId, requestId),
		session.Set(structs.SlotQuoteOptions, nil),
		session.Set(structs.SlotSelectedOption, nil),
	)
	if err != nil {
		return "", err
	}

	qs.logger.Info("Shipment request submitted",
		gecho.Field("session_id", session.Id),
		gecho.Field("request_id", requestId),
	)
	return requestId, nil
}

// FetchQuotes asks the rate quoter for options on the stored request. A
// failing quoter never fails the phase: the fallback set is stored instead
// and the result is marked degraded.
func (qs *QuoteService) FetchQuotes(ctx context.Context, session *structs.Session) (*structs.QuoteResult, error) {
	if session.RequestData == nil {
		return nil, lib.ErrNoRequest
	}

	result := &structs.QuoteResult{Source: qs.quoter.Name()}

	options, err := qs.quote(ctx, session)
	if err != nil || len(options) == 0 {
		qs.logger.Warn("Rate quoter failed, using fallback quote options",
			gecho.Field("session_id", session.Id),
			gecho.Field("request_id", session.RequestId),
			gecho.Field("quoter", qs.quoter.Name()),
			gecho.Field("error", err),
		)
		options = FallbackQuoteOptions()
		result.Source = QuoteSourceFallback
		result.Degraded = true
	}

	result.Options = options.Clone()
	err = errors.Join(
		session.Set(structs.SlotQuoteOptions, options),
		session.Set(structs.SlotSelectedOption, nil),
	)
	if err != nil {
		return nil, err
	}

	qs.logger.Info("Quote options stored",
		gecho.Field("session_id", session.Id),
		gecho.Field("request_id", session.RequestId),
		gecho.Field("options", len(options)),
		gecho.Field("source", result.Source),
	)
	return result, nil
}

// quote shares one quoter call between concurrent fetches of the same
// request. The call outlives any single caller; each caller stops waiting
// when its own context ends.
func (qs *QuoteService) quote(ctx context.Context, session *structs.Session) (structs.QuoteOptions, error) {
	key := session.Id + ":" + session.RequestId
	req := *session.RequestData
	callCtx := context.WithoutCancel(ctx)

	ch := qs.inflight.DoChan(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(callCtx, sharedQuoteTimeout)
		defer cancel()
		return qs.quoter.Quote(ctx, &req)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			qs.logger.Debug("Joined in-flight quote request", gecho.Field("request_id", session.RequestId))
		}
		options, _ := res.Val.(structs.QuoteOptions)
		return options.Clone(), res.Err
	}
}

// SelectOption records the chosen option and returns its price.
func (qs *QuoteService) SelectOption(session *structs.Session, label string) (string, error) {
	if len(session.QuoteOptions) == 0 {
		return "", lib.ErrNoQuotes
	}

	price, ok := session.QuoteOptions.Price(label)
	if !ok {
		return "", fmt.Errorf("%w: %q", lib.ErrUnknownOption, label)
	}

	if err := session.Set(structs.SlotSelectedOption, label); err != nil {
		return "", err
	}

	qs.logger.Info("Quote option selected",
		gecho.Field("session_id", session.Id),
		gecho.Field("option", label),
		gecho.Field("price", price),
	)
	return price, nil
}

// Draft renders the email summary for the session's current selection.
func (qs *QuoteService) Draft(session *structs.Session) (*structs.EmailDraftResponse, error) {
	if session.RequestData == nil {
		return nil, lib.ErrNoRequest
	}
	if session.SelectedOption == "" {
		return nil, lib.ErrNoSelection
	}

	price, ok := session.QuoteOptions.Price(session.SelectedOption)
	if !ok {
		return nil, lib.ErrNoSelection
	}

	return &structs.EmailDraftResponse{
		RequestId: session.RequestId,
		Option:    session.SelectedOption,
		Price:     price,
		Draft:     lib.RenderDraft(session.RequestData, session.SelectedOption, price),
	}, nil
}
