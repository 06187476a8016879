package lib

import (
	"strings"
	"testing"

	"priority1_quote_server/structs"

	"github.com/stretchr/testify/assert"
)

func electronicsRequest() *structs.ShipmentRequest {
	return &structs.ShipmentRequest{
		BoxesNumber:             2,
		Weight:                  10.5,
		Height:                  5,
		Width:                   5,
		Length:                  5,
		CargoType:               "electronics",
		WeightUnit:              "lbs",
		DimensionUnit:           "in",
		AirportZipcodeLoading:   "60007",
		AirportZipcodeDischarge: "90045",
	}
}

func TestRenderDraft_Scenario(t *testing.T) {
	draft := RenderDraft(electronicsRequest(), "Express", "$450")

	assert.Contains(t, draft, "- Cargo type: electronics\n")
	assert.Contains(t, draft, "Express** at a rate of $450")
	assert.True(t, strings.HasPrefix(draft, "Subject: Your Shipping Quote Proposal\n\nDear Valued Customer,\n\n"))
	assert.True(t, strings.HasSuffix(draft, "Best regards,\nYour Shipping Team"))
}

func TestRenderDraft_FieldLinesInOrder(t *testing.T) {
	draft := RenderDraft(electronicsRequest(), "Express", "$450")

	expected := "- Boxes number: 2\n" +
		"- Weight: 10.5\n" +
		"- Height: 5.0\n" +
		"- Width: 5.0\n" +
		"- Length: 5.0\n" +
		"- Cargo type: electronics\n" +
		"- Weightunit: lbs\n" +
		"- Dimensionunit: in\n" +
		"- Airport zipcode loading: 60007\n" +
		"- Airport zipcode discharge: 90045\n" +
		"\nBased on the details provided"

	assert.Contains(t, draft, expected)
}

func TestRenderDraft_Idempotent(t *testing.T) {
	req := electronicsRequest()

	first := RenderDraft(req, "Standard", "$300")
	second := RenderDraft(req, "Standard", "$300")

	assert.Equal(t, first, second)
}

func TestRenderDraft_NoEscaping(t *testing.T) {
	req := electronicsRequest()
	req.CargoType = "<b>fragile</b> & heavy"

	draft := RenderDraft(req, "Tier *1*", "€1,000")

	assert.Contains(t, draft, "- Cargo type: <b>fragile</b> & heavy\n")
	assert.Contains(t, draft, "**Tier *1*** at a rate of €1,000.")
}

func TestFieldLabel(t *testing.T) {
	cases := map[string]string{
		"boxes_number":              "Boxes number",
		"weightUnit":                "Weightunit",
		"dimensionunit":             "Dimensionunit",
		"airport_zipcode_discharge": "Airport zipcode discharge",
		"":                          "",
	}

	for in, want := range cases {
		assert.Equal(t, want, FieldLabel(in), "label for %q", in)
	}
}

func TestFormatFieldValue(t *testing.T) {
	assert.Equal(t, "2", FormatFieldValue(2))
	assert.Equal(t, "0.0", FormatFieldValue(0.0))
	assert.Equal(t, "10.5", FormatFieldValue(10.5))
	assert.Equal(t, "12.25", FormatFieldValue(12.25))
	assert.Equal(t, "120.0", FormatFieldValue(120.0))
	assert.Equal(t, "", FormatFieldValue(""))
}

func TestFormatFieldValue_ExponentForm(t *testing.T) {
	cases := map[float64]string{
		1e16:    "1e+16",
		1.5e16:  "1.5e+16",
		1e15:    "1000000000000000.0",
		1e-05:   "1e-05",
		2.5e-07: "2.5e-07",
		0.0001:  "0.0001",
		-1e20:   "-1e+20",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatFieldValue(in), "value %v", in)
	}
}
