package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"priority1_quote_server/lib"
	"priority1_quote_server/structs"
	"strings"

	"github.com/MonkyMars/gecho"
)

const (
	QuoterModeStub = "stub"
	QuoterModeLive = "live"
)

// maxQuoteResponseBytes bounds how much of a collaborator response is read.
const maxQuoteResponseBytes = 1 << 20

// RateQuoter asks a rate-quoting service for the options available to a
// shipment request.
type RateQuoter interface {
	Quote(ctx context.Context, req *structs.ShipmentRequest) (structs.QuoteOptions, error)
	Name() string
}

// FallbackQuoteOptions is the fixed option set used by the stub quoter and
// whenever the live service cannot be used.
func FallbackQuoteOptions() structs.QuoteOptions {
	return structs.QuoteOptions{
		{Label: "Standard", Price: "$300"},
		{Label: "Express", Price: "$450"},
		{Label: "Overnight", Price: "$600"},
	}
}

// NewRateQuoter returns the quoter selected by cfg.Quoter.Mode. Unknown
// modes fall back to the stub.
func NewRateQuoter(logger *gecho.Logger, cfg *structs.Config) RateQuoter {
	switch strings.ToLower(cfg.Quoter.Mode) {
	case QuoterModeLive:
		client := &http.Client{Timeout: cfg.Quoter.Timeout}
		return NewLiveRateQuoter(logger, cfg.Quoter.Endpoint, cfg.Quoter.ApiKey, client)
	case QuoterModeStub, "":
	default:
		logger.Warn("Unknown quoter mode, using stub", gecho.Field("mode", cfg.Quoter.Mode))
	}
	return StubRateQuoter{}
}

// StubRateQuoter answers every request with the fallback option set.
type StubRateQuoter struct{}

func (StubRateQuoter) Quote(ctx context.Context, _ *structs.ShipmentRequest) (structs.QuoteOptions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return FallbackQuoteOptions(), nil
}

func (StubRateQuoter) Name() string {
	return QuoterModeStub
}

// LiveRateQuoter posts shipment requests to the rate-quoting HTTP API.
type LiveRateQuoter struct {
	logger   *gecho.Logger
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewLiveRateQuoter(logger *gecho.Logger, endpoint, apiKey string, client *http.Client) *LiveRateQuoter {
	if client == nil {
		client = http.DefaultClient
	}
	return &LiveRateQuoter{
		logger:   logger,
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   client,
	}
}

func (lq *LiveRateQuoter) Name() string {
	return QuoterModeLive
}

func (lq *LiveRateQuoter) Quote(ctx context.Context, req *structs.ShipmentRequest) (structs.QuoteOptions, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shipment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, lq.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if lq.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+lq.apiKey)
	}

	lq.logger.Debug("Requesting quote rates", gecho.Field("endpoint", lq.endpoint))

	resp, err := lq.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, fmt.Errorf("%w: %d", lib.ErrQuoterStatus, resp.StatusCode)
	}

	var quoteResp structs.QuoteResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxQuoteResponseBytes)).Decode(&quoteResp); err != nil {
		return nil, fmt.Errorf("%w: %v", lib.ErrQuoterResponse, err)
	}
	if len(quoteResp.QuoteOptions) == 0 {
		return nil, fmt.Errorf("%w: no quote options", lib.ErrQuoterResponse)
	}

	return quoteResp.QuoteOptions, nil
}
