package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestResponseSection(t *testing.T) {

	body := decode(t, `{"response":{"status":"failure","code":11,"errorDesc":"RCIMAGE front unreadable"}}`)

	status, code, errorDesc, ok := ResponseSection(body)
	assert.True(t, ok)
	assert.Equal(t, "failure", status)
	assert.Equal(t, "11", code, "numeric codes are stringified")
	assert.Equal(t, "RCIMAGE front unreadable", errorDesc)

	_, _, _, ok = ResponseSection(decode(t, `{"something":"else"}`))
	assert.False(t, ok)
}

func TestSuccess(t *testing.T) {

	assert.True(t, Success(decode(t, `{"response":{"status":"success","code":"0"}}`)))
	assert.True(t, Success(decode(t, `{"response":{"status":"success"}}`)))
	assert.False(t, Success(decode(t, `{"response":{"status":"failure","code":"11"}}`)))
	assert.False(t, Success(decode(t, `{"response":{"status":"success","code":"11"}}`)))
	assert.False(t, Success(decode(t, `{"noResponse":true}`)))
}

func TestNormalizeVehicleList_NestedShape(t *testing.T) {

	body := decode(t, `{"getVehicleMake":{"vehicleMakerList":["TATA","HYUNDAI"]}}`)

	list := NormalizeVehicleList(body, "getVehicleMake", "vehicleMakerList")
	assert.True(t, list.OK)
	require.Len(t, list.Items, 2)
	assert.Equal(t, Option{Label: "TATA", Value: "TATA"}, list.Items[0])
}

func TestNormalizeVehicleList_FlatShape(t *testing.T) {

	body := decode(t, `{"vehicleMakerList":[{"makerName":"MARUTI SUZUKI","code":"MS"},{"makerName":"KIA"}]}`)

	list := NormalizeVehicleList(body, "getVehicleMake", "vehicleMakerList")
	assert.True(t, list.OK)
	require.Len(t, list.Items, 2)
	assert.Equal(t, Option{Label: "MARUTI SUZUKI", Value: "MS"}, list.Items[0])
	assert.Equal(t, Option{Label: "KIA", Value: "KIA"}, list.Items[1], "value falls back to the label")
}

func TestNormalizeVehicleList_UnrecognizedShape(t *testing.T) {
	assert.False(t, NormalizeVehicleList(decode(t, `{"response":{"status":"success"}}`), "getVehicleMake", "vehicleMakerList").OK)
	assert.False(t, NormalizeVehicleList(nil, "getVehicleMake", "vehicleMakerList").OK)
}

func TestDocumentTypeCodes(t *testing.T) {

	for docType, want := range map[DocumentType]int{DocPAN: 1, DocDL: 2, DocVoterID: 3, DocPassport: 4} {
		code, err := docType.Code()
		require.NoError(t, err)
		assert.Equal(t, want, code)
	}

	_, err := DocumentType("AADHAAR").Code()
	assert.Error(t, err)
}
