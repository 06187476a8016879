package structs

import (
	"errors"
	"fmt"
	"time"
)

// Slot names one value held in a Session.
type Slot string

const (
	SlotRequestData    Slot = "request_data"
	SlotRequestId      Slot = "request_id"
	SlotQuoteOptions   Slot = "quote_options"
	SlotSelectedOption Slot = "selected_option"
)

var ErrUnknownSlot = errors.New("unknown session slot")

// Slots lists every slot in dependency order.
func Slots() []Slot {
	return []Slot{SlotRequestData, SlotRequestId, SlotQuoteOptions, SlotSelectedOption}
}

// Session is the state of one user's run through the quote phases. It is
// owned by a single session and never shared.
type Session struct {
	Id             string           `json:"id"`
	RequestData    *ShipmentRequest `json:"request_data,omitempty"`
	RequestId      string           `json:"request_id,omitempty"`
	QuoteOptions   QuoteOptions     `json:"quote_options,omitempty"`
	SelectedOption string           `json:"selected_option,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		Id:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Get returns the value held in slot. Unset slots report false.
func (s *Session) Get(slot Slot) (any, bool) {
	switch slot {
	case SlotRequestData:
		if s.RequestData == nil {
			return nil, false
		}
		req := *s.RequestData
		return &req, true
	case SlotRequestId:
		return s.RequestId, s.RequestId != ""
	case SlotQuoteOptions:
		return s.QuoteOptions.Clone(), len(s.QuoteOptions) > 0
	case SlotSelectedOption:
		return s.SelectedOption, s.SelectedOption != ""
	}
	return nil, false
}

// Set overwrites slot with value. A nil value clears the slot.
func (s *Session) Set(slot Slot, value any) error {
	switch slot {
	case SlotRequestData:
		switch v := value.(type) {
		case nil:
			s.RequestData = nil
		case *ShipmentRequest:
			if v == nil {
				s.RequestData = nil
				break
			}
			req := *v
			s.RequestData = &req
		case ShipmentRequest:
			s.RequestData = &v
		default:
			return slotTypeError(slot, value)
		}
	case SlotRequestId, SlotSelectedOption:
		var str string
		switch v := value.(type) {
		case nil:
		case string:
			str = v
		default:
			return slotTypeError(slot, value)
		}
		if slot == SlotRequestId {
			s.RequestId = str
		} else {
			s.SelectedOption = str
		}
	case SlotQuoteOptions:
		switch v := value.(type) {
		case nil:
			s.QuoteOptions = nil
		case QuoteOptions:
			s.QuoteOptions = v.Clone()
		default:
			return slotTypeError(slot, value)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}

	s.Touch()
	return nil
}

// Touch marks the session as modified.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	out := *s
	if s.RequestData != nil {
		req := *s.RequestData
		out.RequestData = &req
	}
	out.QuoteOptions = s.QuoteOptions.Clone()
	return &out
}

func slotTypeError(slot Slot, value any) error {
	return fmt.Errorf("session slot %q cannot hold %T", slot, value)
}
