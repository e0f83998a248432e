package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakerList_NestedShape(t *testing.T) {

	h := newHarness(t, map[string]routeFunc{
		vehicleMakerPath: func(payload map[string]any) (int, any) {
			return 200, map[string]any{"getVehicleMake": map[string]any{
				"vehicleMakerList": []any{"TATA", "HYUNDAI"},
			}}
		},
	})
	service := NewVehicleService(h.client, h.corr)

	list, err := service.MakerList(context.Background())
	require.NoError(t, err)
	assert.True(t, list.OK)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "TATA", list.Items[0].Label)
}

func TestMakerList_FlatShape(t *testing.T) {

	h := newHarness(t, map[string]routeFunc{
		vehicleMakerPath: func(payload map[string]any) (int, any) {
			return 200, map[string]any{
				"vehicleMakerList": []any{map[string]any{"makerName": "KIA", "code": "KI"}},
			}
		},
	})
	service := NewVehicleService(h.client, h.corr)

	list, err := service.MakerList(context.Background())
	require.NoError(t, err)
	assert.True(t, list.OK)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "KI", list.Items[0].Value)
}

func TestMakerList_FallsBackWhenEndpointDown(t *testing.T) {

	h := newHarness(t, nil) // every path 404s
	service := NewVehicleService(h.client, h.corr)

	list, err := service.MakerList(context.Background())
	require.NoError(t, err, "an unavailable lookup must not block registration")
	assert.True(t, list.OK)
	assert.NotEmpty(t, list.Items)
	assert.Equal(t, "MARUTI SUZUKI", list.Items[0].Label)
}

func TestMakerList_FallsBackOnUnrecognizedShape(t *testing.T) {

	h := newHarness(t, map[string]routeFunc{
		vehicleMakerPath: func(payload map[string]any) (int, any) {
			return 200, map[string]any{"response": map[string]any{"status": "success"}}
		},
	})
	service := NewVehicleService(h.client, h.corr)

	list, err := service.MakerList(context.Background())
	require.NoError(t, err)
	assert.True(t, list.OK)
	assert.NotEmpty(t, list.Items)
}

func TestMakerList_EmptyBodyPassesThrough(t *testing.T) {

	h := newHarness(t, map[string]routeFunc{
		vehicleMakerPath: func(payload map[string]any) (int, any) { return 200, nil },
	})
	service := NewVehicleService(h.client, h.corr)

	list, err := service.MakerList(context.Background())
	require.NoError(t, err)
	assert.False(t, list.OK, "empty body is the empty result, not the fallback")
	assert.Empty(t, list.Items)
}

func TestModelList_SendsMaker(t *testing.T) {

	h := newHarness(t, map[string]routeFunc{
		vehicleModelPath: func(payload map[string]any) (int, any) {
			return 200, map[string]any{"getVehicleModel": map[string]any{
				"vehicleModelList": []any{"NEXON", "PUNCH"},
			}}
		},
	})
	service := NewVehicleService(h.client, h.corr)

	list, err := service.ModelList(context.Background(), "TATA")
	require.NoError(t, err)
	assert.True(t, list.OK)
	require.Len(t, list.Items, 2)

	req := sub(t, h.decryptedPayload(0), "vehicleReq")
	assert.Equal(t, "TATA", req["vehicleMaker"])
}
