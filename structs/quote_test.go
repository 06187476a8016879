package structs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteOptions_UnmarshalPreservesOrder(t *testing.T) {
	var resp QuoteResponse
	err := json.Unmarshal([]byte(`{"quote_options":{"Overnight":"$600","Standard":"$300","Express":"$450"}}`), &resp)
	require.NoError(t, err)

	assert.Equal(t, []string{"Overnight", "Standard", "Express"}, resp.QuoteOptions.Labels())

	price, ok := resp.QuoteOptions.Price("Express")
	assert.True(t, ok)
	assert.Equal(t, "$450", price)
}

func TestQuoteOptions_MarshalPreservesOrder(t *testing.T) {
	opts := QuoteOptions{
		{Label: "Standard", Price: "$300"},
		{Label: "Express", Price: "$450"},
		{Label: "Overnight", Price: "$600"},
	}

	data, err := json.Marshal(opts)
	require.NoError(t, err)
	assert.Equal(t, `{"Standard":"$300","Express":"$450","Overnight":"$600"}`, string(data))

	var decoded QuoteOptions
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, opts, decoded)
}

func TestQuoteOptions_DuplicateLabelKeepsFirstPosition(t *testing.T) {
	var opts QuoteOptions
	require.NoError(t, json.Unmarshal([]byte(`{"A":"$1","B":"$2","A":"$3"}`), &opts))

	assert.Equal(t, QuoteOptions{{Label: "A", Price: "$3"}, {Label: "B", Price: "$2"}}, opts)
}

func TestQuoteOptions_RejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"array":         `[{"label":"A","price":"$1"}]`,
		"numeric price": `{"A":300}`,
		"truncated":     `{"A":"$1"`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var opts QuoteOptions
			assert.Error(t, json.Unmarshal([]byte(body), &opts))
		})
	}
}

func TestQuoteOptions_NullAndMissing(t *testing.T) {
	var resp QuoteResponse
	require.NoError(t, json.Unmarshal([]byte(`{"quote_options":null}`), &resp))
	assert.Empty(t, resp.QuoteOptions)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &resp))
	assert.Empty(t, resp.QuoteOptions)
}

func TestQuoteOptions_PriceUnknownLabel(t *testing.T) {
	opts := QuoteOptions{{Label: "Standard", Price: "$300"}}

	_, ok := opts.Price("Economy")
	assert.False(t, ok)
}

func TestQuoteOptions_CloneIsIndependent(t *testing.T) {
	opts := QuoteOptions{{Label: "Standard", Price: "$300"}}
	clone := opts.Clone()
	clone[0].Price = "$1"

	assert.Equal(t, "$300", opts[0].Price)
	assert.Nil(t, QuoteOptions(nil).Clone())
}
