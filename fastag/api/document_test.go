package api

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/model"
)

func TestUploadDocument_RepairsBase64(t *testing.T) {

	h := newHarness(t, map[string]routeFunc{
		uploadDocumentPath: func(payload map[string]any) (int, any) { return 200, success() },
	})
	service := NewDocumentService(h.client, h.corr, false)

	_, err := service.UploadDocument(context.Background(), DocumentUploadParams{
		DocumentType: "RC",
		Image:        "data:image/png;base64,AAA=",
	})
	require.NoError(t, err)

	req := sub(t, h.decryptedPayload(0), "documentDetails")
	assert.Equal(t, "AAA=", req["image"])
	assert.Equal(t, "RC", req["documentType"])
}

func TestUploadDocument_RejectsUnusableImage(t *testing.T) {

	h := newHarness(t, nil)
	service := NewDocumentService(h.client, h.corr, false)

	_, err := service.UploadDocument(context.Background(), DocumentUploadParams{DocumentType: "RC", Image: "!!!"})

	var valErr *fastag.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Empty(t, h.transport.requests())
}

func TestUploadDocument_SimulationBypassesNetwork(t *testing.T) {

	h := newHarness(t, nil) // any network call would 404 and fail the assertions
	service := NewDocumentService(h.client, h.corr, true)

	body, err := service.UploadDocument(context.Background(), DocumentUploadParams{
		DocumentType: "RC",
		Image:        "QUJDRA==",
	})
	require.NoError(t, err)
	assert.True(t, model.Success(body))
	assert.Contains(t, body["documentRefNo"], "SIM-")
	assert.Empty(t, h.transport.requests(), "simulation mode must not touch the network")
}

func TestValidateRCImages_404FailsOpen(t *testing.T) {

	h := newHarness(t, nil) // endpoint unavailable
	service := NewDocumentService(h.client, h.corr, false)

	ok, err := service.ValidateRCImages(context.Background(), "QUJDRA==", "QUJDRA==")
	require.NoError(t, err)
	assert.True(t, ok, "an unavailable check must not block registration")
}

func TestValidateRCImages_UndecryptableResponseFailsOpen(t *testing.T) {

	h := newHarness(t, map[string]routeFunc{
		validateImagesPath: func(payload map[string]any) (int, any) {
			return 200, "%%% not ciphertext %%%"
		},
	})
	service := NewDocumentService(h.client, h.corr, false)

	ok, err := service.ValidateRCImages(context.Background(), "QUJDRA==", "QUJDRA==")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateRCImages_ExplicitRejection(t *testing.T) {

	h := newHarness(t, map[string]routeFunc{
		validateImagesPath: func(payload map[string]any) (int, any) {
			return 200, map[string]any{"response": map[string]any{
				"status": "failure", "code": "31", "errorDesc": "RCIMAGE back side unreadable",
			}}
		},
	})
	service := NewDocumentService(h.client, h.corr, false)

	ok, err := service.ValidateRCImages(context.Background(), "QUJDRA==", "QUJDRA==")
	assert.False(t, ok)
	assert.True(t, fastag.IsRCImageError(err), "an explicit rejection routes to the re-capture path")
}

func TestValidateRCImages_RequiresBothSides(t *testing.T) {

	h := newHarness(t, nil)
	service := NewDocumentService(h.client, h.corr, false)

	_, err := service.ValidateRCImages(context.Background(), "QUJDRA==", "")

	var valErr *fastag.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Empty(t, h.transport.requests())
}
