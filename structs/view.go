package structs

// Phase is the furthest step a session can act on.
type Phase string

const (
	PhaseSubmitRequest Phase = "submit_request"
	PhaseGenerateQuote Phase = "generate_quote"
	PhaseSelectOption  Phase = "select_option"
	PhaseEmailDraft    Phase = "email_draft"
)

// SessionView is what the client sees of a session.
type SessionView struct {
	SessionId      string           `json:"session_id"`
	Phase          Phase            `json:"phase"`
	RequestId      string           `json:"request_id,omitempty"`
	RequestData    *ShipmentRequest `json:"request_data,omitempty"`
	QuoteOptions   QuoteOptions     `json:"quote_options,omitempty"`
	SelectedOption string           `json:"selected_option,omitempty"`
	SelectedPrice  string           `json:"selected_price,omitempty"`
}

type SelectOptionRequest struct {
	Option string `json:"option" validate:"required"`
}

type EmailDraftResponse struct {
	RequestId string `json:"request_id"`
	Option    string `json:"option"`
	Price     string `json:"price"`
	Draft     string `json:"draft"`
}

// Phase reports which phase the session has unlocked.
func (s *Session) Phase() Phase {
	switch {
	case s.RequestData == nil:
		return PhaseSubmitRequest
	case len(s.QuoteOptions) == 0:
		return PhaseGenerateQuote
	case s.SelectedOption == "":
		return PhaseSelectOption
	default:
		return PhaseEmailDraft
	}
}

func (s *Session) View() *SessionView {
	view := &SessionView{
		SessionId:      s.Id,
		Phase:          s.Phase(),
		RequestId:      s.RequestId,
		QuoteOptions:   s.QuoteOptions.Clone(),
		SelectedOption: s.SelectedOption,
	}
	if s.RequestData != nil {
		req := *s.RequestData
		view.RequestData = &req
	}
	if price, ok := s.QuoteOptions.Price(s.SelectedOption); ok {
		view.SelectedPrice = price
	}
	return view
}
