package api

import (
	"context"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/model"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/util"
)

// VASService covers the token-gated value-added endpoints: VRN change,
// VRN document upload, re-KYC image upload and the KYC status check.
// Every call performs the bearer sub-flow first; a failed token round
// trip aborts the operation. Image payloads are redacted before logging.
type VASService interface {
	UpdateVRN(ctx context.Context, params VRNParams) (map[string]any, error)
	UpdateVRNDocument(ctx context.Context, params VRNParams) (map[string]any, error)
	UploadReKYCImage(ctx context.Context, params VRNParams) (map[string]any, error)
	CheckKYCStatus(ctx context.Context, params VRNParams) (map[string]any, error)
}

type VRNParams struct {
	Mobile    string
	WalletID  string
	VehicleNo string
	ChassisNo string
	EngineNo  string
	SerialNo  string
	DocType   string
	RCFront   string
	RCBack    string
	KYCImage  string
	KYCRefNo  string
	VRN       string
}

type vasService struct {
	client Client
	corr   Correlator
	tokens TokenService
}

func NewVASService(client Client, corr Correlator, tokens TokenService) VASService {
	return &vasService{client: client, corr: corr, tokens: tokens}
}

func (s *vasService) UpdateVRN(ctx context.Context, params VRNParams) (map[string]any, error) {
	if params.Mobile == "" || params.VRN == "" {
		return nil, &fastag.ValidationError{Field: "vrn update", Reason: "mobile and vrn are required"}
	}
	return WithBearerToken(ctx, s.tokens, func(ctx context.Context, bearer string) (map[string]any, error) {
		body, err := s.client.PostEncrypted(ctx, "vrnUpdate", vrnUpdatePath, s.buildRequest(params),
			WithBearer(bearer),
			WithFallbackMessage("VRN update failed, please retry"))
		if err != nil {
			return nil, err
		}
		return requireSuccess("vrnUpdate", body)
	})
}

func (s *vasService) UpdateVRNDocument(ctx context.Context, params VRNParams) (map[string]any, error) {
	front := util.EnsureValidBase64(params.RCFront)
	back := util.EnsureValidBase64(params.RCBack)
	if front == "" || back == "" {
		return nil, &fastag.ValidationError{Field: "rc images", Reason: "both sides are required"}
	}
	params.RCFront, params.RCBack = front, back

	logger.Debugf("vrnUpdateDoc front=%s back=%s", util.Redact(front), util.Redact(back))

	return WithBearerToken(ctx, s.tokens, func(ctx context.Context, bearer string) (map[string]any, error) {
		body, err := s.client.PostEncrypted(ctx, "vrnUpdateDoc", vrnUpdateDocPath, s.buildRequest(params),
			WithBearer(bearer),
			WithFallbackMessage("VRN document update failed, please retry"))
		if err != nil {
			return nil, err
		}
		return requireSuccess("vrnUpdateDoc", body)
	})
}

func (s *vasService) UploadReKYCImage(ctx context.Context, params VRNParams) (map[string]any, error) {
	image := util.EnsureValidBase64(params.KYCImage)
	if image == "" {
		return nil, &fastag.ValidationError{Field: "kyc image", Reason: "no valid Base64 content"}
	}
	params.KYCImage = image

	logger.Debugf("uploadKYVImages image=%s", util.Redact(image))

	return WithBearerToken(ctx, s.tokens, func(ctx context.Context, bearer string) (map[string]any, error) {
		body, err := s.client.PostEncrypted(ctx, "uploadKYVImages", uploadKYVImagesPath, s.buildRequest(params),
			WithBearer(bearer),
			WithFallbackMessage("re-KYC image upload failed, please retry"))
		if err != nil {
			return nil, err
		}
		return requireSuccess("uploadKYVImages", body)
	})
}

func (s *vasService) CheckKYCStatus(ctx context.Context, params VRNParams) (map[string]any, error) {
	if params.Mobile == "" {
		return nil, &fastag.ValidationError{Field: "mobile", Reason: "required"}
	}
	return WithBearerToken(ctx, s.tokens, func(ctx context.Context, bearer string) (map[string]any, error) {
		// this endpoint declares text/plain; the body is still ciphertext
		return s.client.PostEncrypted(ctx, "checkStatusKYVImages", checkKYVStatusPath, s.buildRequest(params),
			WithBearer(bearer),
			WithContentType("text/plain"),
			WithFallbackMessage("KYC status check failed, please retry"))
	})
}

func (s *vasService) buildRequest(params VRNParams) model.VRNUpdateRequest {
	return model.VRNUpdateRequest{VRNDetails: model.VRNUpdate{
		Correlation: s.corr.Fresh(),
		MobileNo:    params.Mobile,
		WalletID:    params.WalletID,
		VehicleNo:   params.VehicleNo,
		ChassisNo:   params.ChassisNo,
		EngineNo:    params.EngineNo,
		SerialNo:    params.SerialNo,
		DocType:     params.DocType,
		RCFront:     params.RCFront,
		RCBack:      params.RCBack,
		KYCImage:    params.KYCImage,
		KYCRefNo:    params.KYCRefNo,
		VehicleVRN:  params.VRN,
	}}
}
