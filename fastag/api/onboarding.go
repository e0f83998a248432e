package api

import (
	"context"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/model"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/util"
)

// OnboardingService covers the customer creation flow: send the OTP,
// verify it, create the wallet. The backend requires session continuity
// across the three legs; callers thread the requestId/sessionId pair from
// the sendOtp response into the later calls.
type OnboardingService interface {
	SendOTP(ctx context.Context, mobile, vehicleNo, chassisNo, engineNo string, resend bool) (map[string]any, error)
	// ValidateOTP argument order is (otp, requestID, sessionID). The two
	// ids are distinct values on this leg; swapping them is rejected by
	// the backend with an unhelpful generic error.
	ValidateOTP(ctx context.Context, otp, requestID, sessionID string) (map[string]any, error)
	CreateCustomer(ctx context.Context, params CreateCustomerParams) (map[string]any, error)
}

// VerifyOTP and ValidateOTP are the same backend endpoint under two
// historical names; the interface keeps the one name.

type CreateCustomerParams struct {
	FirstName      string
	LastName       string
	Mobile         string
	DOB            string // any D-M-YYYY variant; normalized to DD-MM-YYYY
	DocumentType   model.DocumentType
	DocumentNumber string
	ExpiryDate     string
	WalletProfile  string

	// RequestID/SessionID continue an OTP flow when set; fresh ids are
	// minted otherwise.
	RequestID string
	SessionID string
}

type onboardingService struct {
	client Client
	corr   Correlator
}

func NewOnboardingService(client Client, corr Correlator) OnboardingService {
	return &onboardingService{client: client, corr: corr}
}

func (s *onboardingService) SendOTP(ctx context.Context, mobile, vehicleNo, chassisNo, engineNo string, resend bool) (map[string]any, error) {
	if mobile == "" {
		return nil, &fastag.ValidationError{Field: "mobile", Reason: "required"}
	}
	if vehicleNo == "" && chassisNo == "" && engineNo == "" {
		return nil, &fastag.ValidationError{Field: "vehicle identifier", Reason: "one of vehicleNo, chassisNo or engineNo is required"}
	}

	logger.Debugf("sendOtp for mobile %s", util.Redact(mobile))

	req := model.SendOTPRequest{ValidateCustReq: model.ValidateCustReq{
		Correlation: s.corr.Fresh(),
		MobileNo:    mobile,
		VehicleNo:   vehicleNo,
		ChassisNo:   chassisNo,
		EngineNo:    engineNo,
	}}
	if resend {
		req.ValidateCustReq.IsResendOTP = "Y"
	}

	return s.client.PostEncrypted(ctx, "sendOtp", sendOTPPath, req,
		WithFallbackMessage("could not send OTP, please retry"))
}

func (s *onboardingService) ValidateOTP(ctx context.Context, otp, requestID, sessionID string) (map[string]any, error) {
	if otp == "" {
		return nil, &fastag.ValidationError{Field: "otp", Reason: "required"}
	}

	req := model.ValidateOTPRequest{ValidateCustReq: model.ValidateCustReq{
		Correlation: s.corr.Resume(requestID, sessionID),
		OTP:         otp,
	}}

	return s.client.PostEncrypted(ctx, "validateCustomerDetails", validateCustomerPath, req,
		WithFallbackMessage("OTP verification failed, please retry"))
}

func (s *onboardingService) CreateCustomer(ctx context.Context, params CreateCustomerParams) (map[string]any, error) {
	docCode, err := params.DocumentType.Code()
	if err != nil {
		return nil, &fastag.ValidationError{Field: "documentType", Reason: err.Error()}
	}
	if params.Mobile == "" || params.FirstName == "" {
		return nil, &fastag.ValidationError{Field: "customer details", Reason: "name and mobile are required"}
	}

	corr := s.corr.Fresh()
	if params.RequestID != "" && params.SessionID != "" {
		corr = s.corr.Resume(params.RequestID, params.SessionID)
	}

	req := model.CreateCustomerRequest{CustomerDetails: model.CustomerDetails{
		Correlation:   corr,
		Name:          params.FirstName,
		LastName:      params.LastName,
		MobileNo:      params.Mobile,
		DOB:           util.NormalizeDate(params.DOB),
		DocumentType:  docCode,
		DocumentCode:  params.DocumentNumber,
		ExpiryDate:    util.NormalizeDate(params.ExpiryDate),
		WalletProfile: params.WalletProfile,
	}}

	body, err := s.client.PostEncrypted(ctx, "createCustomer", createCustomerPath, req,
		WithFallbackMessage("wallet creation failed, please retry"))
	if err != nil {
		return nil, err
	}
	return requireSuccess("createCustomer", body)
}
