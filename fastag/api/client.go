package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/cipher"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/config"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/util"
)

var logger = log.WithField("component", "fastag.api")

// Client is the encrypted transport every operation goes through: JSON
// serialize, encrypt, POST the raw ciphertext, decrypt a non-empty
// response and decode it. An empty response body comes back as a nil map
// with no error; callers that require a body must check.
type Client interface {
	PostEncrypted(ctx context.Context, op, endpoint string, payload any, opts ...RequestOption) (map[string]any, error)
}

type requestOptions struct {
	contentType   string
	channelHeader string
	subKeyHeader  string
	bearer        string
	fallback      string
}

// RequestOption adjusts the per-endpoint header quirks of the backend
// contract. Defaults match the majority of endpoints.
type RequestOption func(*requestOptions)

// WithChannelHeader overrides the channel header name for the endpoints
// that expect plain "channel" instead of "aggr_channel".
func WithChannelHeader(name string) RequestOption {
	return func(o *requestOptions) { o.channelHeader = name }
}

// WithSubscriptionKeyHeader overrides the subscription key header name;
// replaceFastag capitalizes it.
func WithSubscriptionKeyHeader(name string) RequestOption {
	return func(o *requestOptions) { o.subKeyHeader = name }
}

// WithContentType overrides the declared content type; the KYC status
// endpoint expects text/plain.
func WithContentType(ct string) RequestOption {
	return func(o *requestOptions) { o.contentType = ct }
}

// WithBearer adds an Authorization: Bearer header.
func WithBearer(token string) RequestOption {
	return func(o *requestOptions) { o.bearer = token }
}

// WithFallbackMessage sets the operation-specific message used when a
// failed response body carries no message of its own.
func WithFallbackMessage(msg string) RequestOption {
	return func(o *requestOptions) { o.fallback = msg }
}

type client struct {
	rest    *resty.Client
	baseURL string
	cfg     *config.Config
	codec   *cipher.PayloadCipher
}

// New builds the transport from process configuration.
func New(cfg *config.Config, codec *cipher.PayloadCipher) Client {
	restyClient := resty.New().SetTimeout(cfg.HTTPTimeout)
	return &client{rest: restyClient, baseURL: cfg.BaseURL(), cfg: cfg, codec: codec}
}

// NewWithHTTPClient wires a caller-supplied http.Client (custom
// transports, tests).
func NewWithHTTPClient(cfg *config.Config, codec *cipher.PayloadCipher, hc *http.Client) Client {
	restyClient := resty.NewWithClient(hc).SetTimeout(cfg.HTTPTimeout)
	return &client{rest: restyClient, baseURL: cfg.BaseURL(), cfg: cfg, codec: codec}
}

func (c *client) PostEncrypted(ctx context.Context, op, endpoint string, payload any, opts ...RequestOption) (map[string]any, error) {
	o := requestOptions{
		contentType:   "application/json",
		channelHeader: "aggr_channel",
		subKeyHeader:  "ocp-apim-subscription-key",
		fallback:      op + " failed",
	}
	for _, opt := range opts {
		opt(&o)
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, op+": marshal payload")
	}

	body, err := c.codec.Encrypt(string(plaintext))
	if err != nil {
		return nil, err
	}

	r := c.rest.R().SetContext(ctx)
	if util.HttpTraceEnabled() {
		r.EnableTrace()
	}
	r.SetHeader("Content-Type", o.contentType)
	// assigned as raw map keys: the gateway matches these names
	// case-sensitively and Header.Set would canonicalize them
	r.Header[o.channelHeader] = []string{c.cfg.Channel}
	r.Header[o.subKeyHeader] = []string{c.cfg.SubscriptionKey}
	if o.bearer != "" {
		r.SetHeader("Authorization", "Bearer "+o.bearer)
	}

	resp, err := r.SetBody(body).Post(c.baseURL + endpoint)
	if err != nil {
		return nil, &fastag.NetworkError{Op: op, Message: o.fallback, Err: err}
	}

	if util.DebugEnabled() {
		logger.Debugf("%s %s -> %d (%s, body %s)",
			op, endpoint, resp.StatusCode(), resp.Time(), util.Redact(resp.String()))
	}

	if resp.IsError() {
		return nil, &fastag.NetworkError{
			Op:         op,
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(resp.String(), o.fallback),
		}
	}

	raw := resp.String()
	if raw == "" {
		return nil, nil
	}

	decrypted, err := c.codec.Decrypt(raw)
	if err != nil {
		return nil, err
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(decrypted), &decoded); err != nil {
		return nil, &fastag.DecryptionError{Op: op, Err: errors.Wrap(err, "decode plaintext")}
	}
	return decoded, nil
}

// errorMessage mines a human readable message out of an HTTP error body.
// Error bodies are plaintext JSON, not ciphertext.
func errorMessage(body, fallback string) string {
	if body == "" {
		return fallback
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(body), &m); err == nil {
		if msg, ok := m["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return fallback
}
