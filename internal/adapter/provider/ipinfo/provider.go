// Package ipinfo looks up IP geolocation through the ipinfo.io API.
package ipinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/telemetry-backend/internal/config"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
	"github.com/heartmarshall/telemetry-backend/internal/provider"
)

// maxResponseBytes caps how much of a provider response is read.
const maxResponseBytes = 64 << 10

// Provider fetches IP geolocation from ipinfo.io.
// Each Lookup issues exactly one request; there is no retry and no cache.
type Provider struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from GeoConfig.
// An empty token is accepted here; Lookup reports it as a configuration error.
func NewProvider(cfg config.GeoConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "ipinfo"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, token string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		log:        logger.With("adapter", "ipinfo"),
	}
}

// Lookup resolves ip to a GeoResult.
// A response without geographic data (e.g. a private address) is a valid,
// all-nil result, not an error.
func (p *Provider) Lookup(ctx context.Context, ip string) (*provider.GeoResult, error) {
	if p.token == "" {
		return nil, fmt.Errorf("ipinfo: access token is not set: %w", domain.ErrConfiguration)
	}

	reqURL := p.baseURL + "/" + url.PathEscape(ip) + "?" + url.Values{"token": {p.token}}.Encode()

	p.log.DebugContext(ctx, "ipinfo request", slog.String("ip", ip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ipinfo: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redact(urlErr.URL, p.token)
		}
		p.log.ErrorContext(ctx, "ipinfo request failed", slog.String("ip", ip), slog.String("error", err.Error()))
		return nil, fmt.Errorf("ipinfo: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("ipinfo: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ipinfo: unexpected status %d%s", resp.StatusCode, errorDetail(body))
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("ipinfo: decode json: %w", err)
	}

	result := mapAPIResponse(ip, payload)

	p.log.DebugContext(ctx, "ipinfo response",
		slog.String("ip", ip),
		slog.Bool("bogon", payload.Bogon),
		slog.Bool("empty", result.IsEmpty()),
	)

	return result, nil
}

// mapAPIResponse converts the API payload into a provider.GeoResult.
// The queried ip is kept when the provider does not echo one back.
func mapAPIResponse(ip string, r apiResponse) *provider.GeoResult {
	result := &provider.GeoResult{
		IP:      ip,
		City:    optional(r.City),
		Region:  optional(r.Region),
		Country: optional(r.Country),
		Loc:     optional(r.Loc),
		Org:     optional(r.Org),
	}
	if r.IP != "" {
		result.IP = r.IP
	}
	return result
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func errorDetail(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err != nil || e.Error.Title == "" {
		return ""
	}
	if e.Error.Message == "" {
		return ": " + e.Error.Title
	}
	return ": " + e.Error.Title + ": " + e.Error.Message
}

// redact strips the token from a request URL before it reaches logs or clients.
func redact(rawURL, token string) string {
	if token == "" {
		return rawURL
	}
	return strings.ReplaceAll(rawURL, token, "REDACTED")
}
