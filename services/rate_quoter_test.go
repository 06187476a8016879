package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"priority1_quote_server/lib"
	"priority1_quote_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveRateQuoter_Quote(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"quote_options":{"Overnight":"$610","Economy":"$95","Express":"$455"}}`)
	}))
	defer srv.Close()

	quoter := NewLiveRateQuoter(gecho.NewDefaultLogger(), srv.URL, "key-123", srv.Client())
	options, err := quoter.Quote(context.Background(), testShipment())
	require.NoError(t, err)

	assert.Equal(t, []string{"Overnight", "Economy", "Express"}, options.Labels())
	price, ok := options.Price("Economy")
	assert.True(t, ok)
	assert.Equal(t, "$95", price)

	assert.Equal(t, "Bearer key-123", gotAuth)
	assert.Equal(t, "lbs", gotBody["weightUnit"])
	assert.Equal(t, "in", gotBody["dimensionunit"])
	assert.Equal(t, float64(2), gotBody["boxes_number"])
	assert.Equal(t, "60007", gotBody["airport_zipcode_loading"])
	assert.Equal(t, QuoterModeLive, quoter.Name())
}

func TestLiveRateQuoter_NoKeyNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"quote_options":{"Standard":"$1"}}`)
	}))
	defer srv.Close()

	quoter := NewLiveRateQuoter(gecho.NewDefaultLogger(), srv.URL, "", srv.Client())
	options, err := quoter.Quote(context.Background(), testShipment())
	require.NoError(t, err)
	assert.Len(t, options, 1)
}

func TestLiveRateQuoter_Failures(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, lib.ErrQuoterStatus},
		{"unauthorized", http.StatusUnauthorized, ``, lib.ErrQuoterStatus},
		{"malformed", http.StatusOK, `{"quote_options":`, lib.ErrQuoterResponse},
		{"wrong shape", http.StatusOK, `{"quote_options":["Standard"]}`, lib.ErrQuoterResponse},
		{"empty", http.StatusOK, `{"quote_options":{}}`, lib.ErrQuoterResponse},
		{"missing", http.StatusOK, `{}`, lib.ErrQuoterResponse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			quoter := NewLiveRateQuoter(gecho.NewDefaultLogger(), srv.URL, "", srv.Client())
			options, err := quoter.Quote(context.Background(), testShipment())

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, options)
		})
	}
}

func TestLiveRateQuoter_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	quoter := NewLiveRateQuoter(gecho.NewDefaultLogger(), url, "", &http.Client{Timeout: time.Second})
	_, err := quoter.Quote(context.Background(), testShipment())
	assert.Error(t, err)
}

func TestStubRateQuoter_HonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := StubRateQuoter{}.Quote(ctx, testShipment())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRateQuoter_Mode(t *testing.T) {
	logger := gecho.NewDefaultLogger()
	cfg := &structs.Config{Quoter: &structs.QuoterConfig{Endpoint: "http://localhost:1"}}

	for mode, want := range map[string]string{
		"":     QuoterModeStub,
		"stub": QuoterModeStub,
		"LIVE": QuoterModeLive,
		"live": QuoterModeLive,
		"warp": QuoterModeStub,
	} {
		cfg.Quoter.Mode = mode
		assert.Equal(t, want, NewRateQuoter(logger, cfg).Name(), "mode %q", mode)
	}
}
