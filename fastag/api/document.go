package api

import (
	"context"
	"errors"
	"time"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/model"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/util"
)

// DocumentService uploads KYC documents and runs the best-effort RC
// image pre-check.
type DocumentService interface {
	UploadDocument(ctx context.Context, params DocumentUploadParams) (map[string]any, error)
	// ValidateRCImages is fail-open: an unavailable endpoint (404), a
	// transport failure or an undecryptable response all count as
	// passed. Only an explicit backend rejection returns false.
	ValidateRCImages(ctx context.Context, rcFront, rcBack string) (bool, error)
}

type DocumentUploadParams struct {
	DocumentType string
	Image        string // raw picker output; repaired before sending
	ImageType    string
	SessionKey   string
	RequestID    string
	SessionID    string
}

type documentService struct {
	client     Client
	corr       Correlator
	simulation bool
}

// NewDocumentService builds the service. With simulation enabled
// UploadDocument never touches the network: it waits a fixed moment and
// returns a synthetic success envelope, for environments without live
// credentials.
func NewDocumentService(client Client, corr Correlator, simulation bool) DocumentService {
	return &documentService{client: client, corr: corr, simulation: simulation}
}

const simulatedUploadDelay = 1200 * time.Millisecond

func (s *documentService) UploadDocument(ctx context.Context, params DocumentUploadParams) (map[string]any, error) {
	image := util.EnsureValidBase64(params.Image)
	if image == "" {
		return nil, &fastag.ValidationError{Field: "image", Reason: "no valid Base64 content"}
	}
	if params.DocumentType == "" {
		return nil, &fastag.ValidationError{Field: "documentType", Reason: "required"}
	}

	logger.Debugf("uploadDocument type=%s image=%s", params.DocumentType, util.Redact(image))

	if s.simulation {
		select {
		case <-time.After(simulatedUploadDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return map[string]any{
			"response":      map[string]any{"status": "success", "code": "0"},
			"documentRefNo": "SIM-" + util.RequestID(),
		}, nil
	}

	corr := s.corr.Fresh()
	if params.RequestID != "" && params.SessionID != "" {
		corr = s.corr.Resume(params.RequestID, params.SessionID)
	}

	req := model.DocumentUploadRequest{DocumentDetails: model.DocumentUpload{
		Correlation:  corr,
		DocumentType: params.DocumentType,
		SessionKey:   params.SessionKey,
		Image:        image,
		ImageType:    params.ImageType,
	}}

	body, err := s.client.PostEncrypted(ctx, "uploadDocument", uploadDocumentPath, req,
		WithFallbackMessage("document upload failed, please retry"))
	if err != nil {
		return nil, err
	}
	return requireSuccess("uploadDocument", body)
}

func (s *documentService) ValidateRCImages(ctx context.Context, rcFront, rcBack string) (bool, error) {
	front := util.EnsureValidBase64(rcFront)
	back := util.EnsureValidBase64(rcBack)
	if front == "" || back == "" {
		return false, &fastag.ValidationError{Field: "rc images", Reason: "both sides are required"}
	}

	var req model.RCImageValidationRequest
	req.ImageDetails.Correlation = s.corr.Fresh()
	req.ImageDetails.RCFront = front
	req.ImageDetails.RCBack = back

	body, err := s.client.PostEncrypted(ctx, "validateImages", validateImagesPath, req,
		WithFallbackMessage("RC image validation unavailable"))
	if err != nil {
		var netErr *fastag.NetworkError
		var decErr *fastag.DecryptionError
		switch {
		case errors.As(err, &decErr):
			logger.Debugf("validateImages response not decryptable, treating as passed: %v", err)
			return true, nil
		case errors.As(err, &netErr):
			logger.Debugf("validateImages unavailable (http %d), treating as passed", netErr.StatusCode)
			return true, nil
		}
		return false, err
	}

	if body == nil || model.Success(body) {
		return true, nil
	}
	status, code, errorDesc, _ := model.ResponseSection(body)
	return false, &fastag.ProtocolError{Op: "validateImages", Status: status, Code: code, Description: errorDesc}
}
