package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/cipher"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/config"
)

const testKey = "0123456789abcdef0123456789abcdef"

// routeFunc answers one stubbed endpoint. Return semantics: status >= 400
// writes the body as plaintext JSON (error bodies are not encrypted on
// the wire); a nil body writes an empty 200; a string body is written raw
// (for deliberately undecryptable responses); anything else is JSON
// encoded and encrypted like the real backend does.
type routeFunc func(payload map[string]any) (int, any)

// capturedRequest keeps the raw header map: the header-name quirks under
// test (aggr_channel vs channel, subscription key case) are erased by the
// server-side canonicalization, so they are recorded in the transport.
type capturedRequest struct {
	path    string
	headers map[string][]string
	body    string
}

type captureTransport struct {
	mu   sync.Mutex
	reqs []capturedRequest
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		raw, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		body = string(raw)
		req.Body = io.NopCloser(bytes.NewReader(raw))
	}

	headers := make(map[string][]string, len(req.Header))
	for k, v := range req.Header {
		headers[k] = v
	}

	c.mu.Lock()
	c.reqs = append(c.reqs, capturedRequest{path: req.URL.Path, headers: headers, body: body})
	c.mu.Unlock()

	return http.DefaultTransport.RoundTrip(req)
}

func (c *captureTransport) requests() []capturedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]capturedRequest(nil), c.reqs...)
}

type harness struct {
	t         *testing.T
	codec     *cipher.PayloadCipher
	cfg       *config.Config
	client    Client
	corr      Correlator
	transport *captureTransport
}

func newHarness(t *testing.T, routes map[string]routeFunc) *harness {
	t.Helper()

	codec, err := cipher.New(testKey)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"resource not found"}`))
			return
		}

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		plaintext, err := codec.Decrypt(string(raw))
		require.NoError(t, err, "request body must be valid ciphertext")
		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(plaintext), &payload))

		status, body := route(payload)
		w.WriteHeader(status)
		switch v := body.(type) {
		case nil:
		case string:
			_, _ = w.Write([]byte(v))
		default:
			if status >= 400 {
				require.NoError(t, json.NewEncoder(w).Encode(v))
				return
			}
			encoded, err := json.Marshal(v)
			require.NoError(t, err)
			encrypted, err := codec.Encrypt(string(encoded))
			require.NoError(t, err)
			_, _ = w.Write([]byte(encrypted))
		}
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		BaseURLOverride: server.URL,
		EncryptionKey:   testKey,
		SubscriptionKey: "sub-key-1",
		Channel:         "TAGP",
		AgentID:         "AG0042",
		HTTPTimeout:     5 * time.Second,
	}

	transport := &captureTransport{}
	client := NewWithHTTPClient(cfg, codec, &http.Client{Transport: transport})

	return &harness{
		t:         t,
		codec:     codec,
		cfg:       cfg,
		client:    client,
		corr:      NewCorrelator(cfg),
		transport: transport,
	}
}

// decryptedPayload decodes the nth captured request body.
func (h *harness) decryptedPayload(n int) map[string]any {
	h.t.Helper()
	reqs := h.transport.requests()
	require.Greater(h.t, len(reqs), n, "expected at least %d captured requests", n+1)

	plaintext, err := h.codec.Decrypt(reqs[n].body)
	require.NoError(h.t, err)
	var payload map[string]any
	require.NoError(h.t, json.Unmarshal([]byte(plaintext), &payload))
	return payload
}

func success() map[string]any {
	return map[string]any{"response": map[string]any{"status": "success", "code": "0"}}
}

func sub(t *testing.T, payload map[string]any, key string) map[string]any {
	t.Helper()
	section, ok := payload[key].(map[string]any)
	require.True(t, ok, "payload has no %s sub-object: %v", key, payload)
	return section
}
