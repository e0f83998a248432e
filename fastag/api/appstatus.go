package api

import (
	"context"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/model"
)

// AppStatus is the structured result of the Bajaj-app-installed check.
// The check never returns an error: failures come back with Installed
// false and the failure text in Detail, so callers can branch without a
// try/catch around an auxiliary lookup.
type AppStatus struct {
	Installed bool
	Detail    string
}

// AppStatusService answers whether the Bajaj app is installed for a
// mobile number.
type AppStatusService interface {
	CheckBajajAppStatus(ctx context.Context, mobile string) AppStatus
}

type appStatusService struct {
	client Client
	corr   Correlator
}

func NewAppStatusService(client Client, corr Correlator) AppStatusService {
	return &appStatusService{client: client, corr: corr}
}

func (s *appStatusService) CheckBajajAppStatus(ctx context.Context, mobile string) AppStatus {
	if mobile == "" {
		return AppStatus{Detail: "mobile number is required"}
	}

	var req model.AppStatusRequest
	req.AppStatusReq.Correlation = s.corr.Fresh()
	req.AppStatusReq.MobileNo = mobile

	body, err := s.client.PostEncrypted(ctx, "checkBajajAppStatus", checkAppStatusPath, req,
		WithFallbackMessage("app status check unavailable"))
	if err != nil {
		logger.Debugf("checkBajajAppStatus failed: %v", err)
		return AppStatus{Detail: err.Error()}
	}
	if body == nil {
		return AppStatus{Detail: "empty response"}
	}
	if !model.Success(body) {
		_, _, errorDesc, _ := model.ResponseSection(body)
		return AppStatus{Detail: errorDesc}
	}

	installed, _ := body["appInstalled"].(bool)
	if flag, ok := body["appInstalled"].(string); ok {
		installed = flag == "Y" || flag == "true"
	}
	return AppStatus{Installed: installed}
}
