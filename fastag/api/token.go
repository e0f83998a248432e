package api

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/model"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/util"
)

// TokenService acquires the short-lived bearer token the VAS endpoints
// require. Tokens are not cached: each top-level operation pays one token
// round trip. Fresh-per-call keeps the client stateless; revisit only if
// the round trip ever becomes a measured problem.
type TokenService interface {
	Generate(ctx context.Context) (string, error)
}

type tokenService struct {
	client Client
	corr   Correlator
}

func NewTokenService(client Client, corr Correlator) TokenService {
	return &tokenService{client: client, corr: corr}
}

func (s *tokenService) Generate(ctx context.Context) (string, error) {
	logger.Debug("generating bearer token")

	var req model.TokenRequest
	req.TokenReq.Correlation = s.corr.Fresh()

	body, err := s.client.PostEncrypted(ctx, "tokenGeneration", tokenGenerationPath, req,
		WithFallbackMessage("token generation failed"))
	if err != nil {
		return "", err
	}

	token := extractToken(body)
	if token == "" {
		return "", fastag.ErrNoToken
	}

	logger.Debugf("bearer token acquired: %s", util.Redact(token))
	return token, nil
}

// extractToken tolerates the shapes the backend has been seen to use:
// top-level, under tokenResp, or under response.
func extractToken(body map[string]any) string {
	if body == nil {
		return ""
	}
	if t, ok := body["token"].(string); ok {
		return t
	}
	for _, key := range []string{"tokenResp", "response"} {
		if section, ok := body[key].(map[string]any); ok {
			if t, ok := section["token"].(string); ok {
				return t
			}
		}
	}
	return ""
}

// WithBearerToken composes the implicit two-step protocol explicitly:
// acquire a token, then run the operation with it. If the token call
// fails or yields no token the operation never runs.
func WithBearerToken(
	ctx context.Context,
	tokens TokenService,
	op func(ctx context.Context, bearer string) (map[string]any, error),
) (map[string]any, error) {
	token, err := tokens.Generate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "bearer token acquisition")
	}
	return op(ctx, token)
}
