// Package wallhaven is a client for the Wallhaven API v1
// (https://wallhaven.cc/help/api). All operations are synchronous and issue
// exactly one request; Search additionally fetches the account's browsing
// settings first when an API key is configured.
package wallhaven

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
	"wallhaven-go/utils"

	"github.com/imroc/req/v3"
)

const (
	// BaseURL is the API root.
	BaseURL = "https://wallhaven.cc/api/v1"

	// EnvAPIKey is consulted when no key is passed to New.
	EnvAPIKey = "WALLHAVEN_API_KEY"

	userAgent = "wallhaven-go/1.0"
)

// Wallhaven talks to the API. Construct it with New.
type Wallhaven struct {
	httpClient *req.Client
	apiKey     string

	// Params holds the caller's explicit search parameters; every Search
	// call reads it and its entries win over fetched browsing settings.
	// Not synchronized: concurrent writers must serialize.
	Params ParameterSet

	// SkipBrowsingSettings disables the settings fetch that normally runs
	// before an authenticated search, leaving only defaults and Params.
	SkipBrowsingSettings bool

	log utils.Logger
}

type logger struct {
	l utils.Logger
}

func (l logger) Errorf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

func (l logger) Warnf(format string, v ...any) {
	l.l.Warn(fmt.Sprintf(format, v...))
}

func (l logger) Debugf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

// New builds a client. The key precedence is: apiKey argument, then the
// WALLHAVEN_API_KEY environment variable, then anonymous. When present the
// key is sent as the X-API-Key header on every request; it is never placed
// in query parameters or log output.
func New(apiKey string, l utils.Logger) *Wallhaven {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}

	httpClient := req.C().
		SetBaseURL(BaseURL).
		SetCommonHeader("user-agent", userAgent).
		SetTimeout(30 * time.Second).
		SetLogger(logger{l}).
		EnableDebugLog()
	if apiKey != "" {
		httpClient.SetCommonHeader("X-API-Key", apiKey)
	}

	return &Wallhaven{
		httpClient: httpClient,
		apiKey:     apiKey,
		Params:     ParameterSet{},
		log:        l,
	}
}

// SetBaseURL points the client at a different API root.
func (w *Wallhaven) SetBaseURL(url string) *Wallhaven {
	w.httpClient.SetBaseURL(url)
	return w
}

// SetTimeout replaces the default 30s request timeout.
func (w *Wallhaven) SetTimeout(d time.Duration) *Wallhaven {
	w.httpClient.SetTimeout(d)
	return w
}

// HasAPIKey reports whether a key was resolved at construction time.
func (w *Wallhaven) HasAPIKey() bool {
	return w.apiKey != ""
}

// requireKey gates operations that cannot work anonymously. It fails before
// any request is dispatched.
func (w *Wallhaven) requireKey(op string) error {
	if w.apiKey == "" {
		return &AuthenticationRequiredError{Operation: op}
	}
	return nil
}

// envelope is the outer object every API response shares. Meta is only
// present on listings and searches.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

// getJSON dispatches rq, maps the response status onto the error taxonomy
// and decodes the envelope of a 200. The id is carried into NotFoundError.
func (w *Wallhaven) getJSON(ctx context.Context, op, id string, rq *req.Request) (*envelope, error) {
	resp := rq.Do(ctx)
	if resp.Err != nil {
		return nil, &TransportError{Operation: op, Err: resp.Err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &UnauthorizedError{Operation: op}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &NotFoundError{Operation: op, ID: id}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitedError{Operation: op}
	case resp.StatusCode/100 != 2:
		return nil, &TransportError{Operation: op, Status: resp.StatusCode}
	}

	var env envelope
	if err := json.Unmarshal(resp.Bytes(), &env); err != nil {
		return nil, &MalformedResponseError{Entity: op, Err: err}
	}
	if env.Data == nil {
		return nil, &MalformedResponseError{Entity: op, Field: "data"}
	}
	return &env, nil
}
