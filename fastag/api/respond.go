package api

import (
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/model"
)

// requireSuccess converts a backend-signaled failure into a
// ProtocolError. Bodies without a response section pass through: the
// backend omits it on some success paths and callers branch themselves.
func requireSuccess(op string, body map[string]any) (map[string]any, error) {
	if body == nil {
		return nil, nil
	}
	status, code, errorDesc, ok := model.ResponseSection(body)
	if !ok {
		return body, nil
	}
	if model.Success(body) {
		return body, nil
	}
	return nil, &fastag.ProtocolError{Op: op, Status: status, Code: code, Description: errorDesc}
}
