package structs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// QuoteOption is a single service tier with its displayed price.
type QuoteOption struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

// QuoteOptions is an option set in presentation order. On the wire it is a
// JSON object mapping label to price, and key order is preserved both ways.
type QuoteOptions []QuoteOption

// QuoteResponse is the body returned by the rate-quoting service.
type QuoteResponse struct {
	QuoteOptions QuoteOptions `json:"quote_options"`
}

// QuoteResult is the outcome of the quote retrieval phase.
type QuoteResult struct {
	Options  QuoteOptions `json:"quote_options"`
	Source   string       `json:"source"`
	Degraded bool         `json:"degraded"`
}

// Price returns the price for label.
func (q QuoteOptions) Price(label string) (string, bool) {
	for _, opt := range q {
		if opt.Label == label {
			return opt.Price, true
		}
	}
	return "", false
}

// Labels returns the option labels in presentation order.
func (q QuoteOptions) Labels() []string {
	labels := make([]string, len(q))
	for i, opt := range q {
		labels[i] = opt.Label
	}
	return labels
}

// Clone returns a copy that shares no backing array with q.
func (q QuoteOptions) Clone() QuoteOptions {
	if q == nil {
		return nil
	}
	out := make(QuoteOptions, len(q))
	copy(out, q)
	return out
}

func (q QuoteOptions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range q {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(opt.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(opt.Price)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (q *QuoteOptions) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*q = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("quote options must be a JSON object")
	}

	out := QuoteOptions{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected quote option key %v", tok)
		}

		var price string
		if err := dec.Decode(&price); err != nil {
			return fmt.Errorf("quote option %q: price must be a string: %w", label, err)
		}

		// A repeated label keeps its first position and takes the last price.
		if i, seen := index[label]; seen {
			out[i].Price = price
			continue
		}
		index[label] = len(out)
		out = append(out, QuoteOption{Label: label, Price: price})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*q = out
	return nil
}
