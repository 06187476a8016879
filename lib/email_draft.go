package lib

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"priority1_quote_server/structs"
)

const (
	draftSubject = "Subject: Your Shipping Quote Proposal\n\n"
	draftOpening = "Dear Valued Customer,\n\n" +
		"Thank you for your interest in our shipping services. " +
		"We have received your request with the following details:\n\n"
	draftOffer   = "\nBased on the details provided, we are pleased to offer you the following shipping option:\n"
	draftClosing = "If you have any questions or need further assistance, please do not hesitate to contact us.\n\n" +
		"Best regards,\n" +
		"Your Shipping Team"
)

// RenderDraft composes the email summary for a selected quote option. The
// output depends only on its arguments.
func RenderDraft(req *structs.ShipmentRequest, option, price string) string {
	var b strings.Builder

	b.WriteString(draftSubject)
	b.WriteString(draftOpening)

	for _, field := range req.Fields() {
		fmt.Fprintf(&b, "- %s: %s\n", FieldLabel(field.Key), FormatFieldValue(field.Value))
	}

	b.WriteString(draftOffer)
	fmt.Fprintf(&b, "**%s** at a rate of %s.\n\n", option, price)
	b.WriteString(draftClosing)

	return b.String()
}

// FieldLabel turns a wire name into a display label: underscores become
// spaces, the first letter is upper-cased and the rest lower-cased.
func FieldLabel(key string) string {
	key = strings.ReplaceAll(key, "_", " ")
	if key == "" {
		return key
	}
	first, size := utf8.DecodeRuneInString(key)
	return string(unicode.ToUpper(first)) + strings.ToLower(key[size:])
}

// FormatFieldValue renders a request value for display. Floats use the
// shortest round-trip digits with at least one fractional digit (5 is shown
// as 5.0) and switch to exponent form below 1e-4 or from 1e16 on.
func FormatFieldValue(v any) string {
	switch val := v.(type) {
	case float64:
		return formatFloat(val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

func formatFloat(val float64) string {
	switch {
	case math.IsNaN(val):
		return "nan"
	case math.IsInf(val, 1):
		return "inf"
	case math.IsInf(val, -1):
		return "-inf"
	}

	exp := strconv.FormatFloat(val, 'e', -1, 64)
	if val != 0 {
		if e, err := strconv.Atoi(exp[strings.IndexByte(exp, 'e')+1:]); err == nil && (e < -4 || e >= 16) {
			return exp
		}
	}

	s := strconv.FormatFloat(val, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
