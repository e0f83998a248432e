package api

import (
	"context"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/model"
)

// TagService registers a new FasTag against a wallet or replaces a
// damaged one. The replace endpoint sits behind a different gateway
// policy than the rest of the family: it expects the channel header named
// plain "channel" and the subscription key header capitalized. Both
// spellings are part of the live contract, not typos.
type TagService interface {
	RegisterFastag(ctx context.Context, params TagParams) (map[string]any, error)
	// ReplaceFastag requires a non-empty response body; an empty body is
	// an error on this endpoint, unlike the rest of the family.
	ReplaceFastag(ctx context.Context, params TagParams) (map[string]any, error)
}

type TagParams struct {
	Mobile       string
	WalletID     string
	VehicleNo    string
	ChassisNo    string
	SerialNo     string
	TID          string
	VehicleClass string
	Reason       string // replace only
	ReasonDesc   string // replace only
	RequestID    string
	SessionID    string
}

type tagService struct {
	client Client
	corr   Correlator
}

func NewTagService(client Client, corr Correlator) TagService {
	return &tagService{client: client, corr: corr}
}

func (s *tagService) RegisterFastag(ctx context.Context, params TagParams) (map[string]any, error) {
	reg, err := s.buildRegistration(params)
	if err != nil {
		return nil, err
	}

	body, err := s.client.PostEncrypted(ctx, "registerFastag", registerFastagPath,
		model.RegisterFastagRequest{RegDetails: reg},
		WithFallbackMessage("FasTag registration failed, please retry"))
	if err != nil {
		return nil, err
	}
	return requireSuccess("registerFastag", body)
}

func (s *tagService) ReplaceFastag(ctx context.Context, params TagParams) (map[string]any, error) {
	reg, err := s.buildRegistration(params)
	if err != nil {
		return nil, err
	}
	reg.Reason = params.Reason
	reg.ReasonDesc = params.ReasonDesc

	body, err := s.client.PostEncrypted(ctx, "replaceFastag", replaceFastagPath,
		model.ReplaceFastagRequest{TagReplaceReq: reg},
		WithChannelHeader("channel"),
		WithSubscriptionKeyHeader("Ocp-Apim-Subscription-Key"),
		WithFallbackMessage("FasTag replacement failed, please retry"))
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, &fastag.NetworkError{Op: "replaceFastag", Message: "FasTag replacement failed, please retry", Err: fastag.ErrEmptyBody}
	}
	return requireSuccess("replaceFastag", body)
}

func (s *tagService) buildRegistration(params TagParams) (model.TagRegistration, error) {
	if params.Mobile == "" || params.WalletID == "" || params.SerialNo == "" {
		return model.TagRegistration{}, &fastag.ValidationError{
			Field:  "tag details",
			Reason: "mobile, walletId and serialNo are required",
		}
	}

	corr := s.corr.Fresh()
	if params.RequestID != "" && params.SessionID != "" {
		corr = s.corr.Resume(params.RequestID, params.SessionID)
	}

	return model.TagRegistration{
		Correlation:  corr,
		MobileNo:     params.Mobile,
		WalletID:     params.WalletID,
		VehicleNo:    params.VehicleNo,
		ChassisNo:    params.ChassisNo,
		SerialNo:     params.SerialNo,
		TID:          params.TID,
		VehicleClass: params.VehicleClass,
	}, nil
}
