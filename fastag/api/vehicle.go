package api

import (
	"context"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/model"
)

// VehicleService looks up maker and model lists for the registration
// form. The backend answers the same logical list in two different
// envelope shapes; both are normalized here. The maker lookup falls back
// to a fixed list of common manufacturers when the call fails or the
// shape is unrecognized: an unavailable lookup must not block
// registration.
type VehicleService interface {
	MakerList(ctx context.Context) (model.VehicleList, error)
	ModelList(ctx context.Context, maker string) (model.VehicleList, error)
}

type vehicleService struct {
	client Client
	corr   Correlator
}

func NewVehicleService(client Client, corr Correlator) VehicleService {
	return &vehicleService{client: client, corr: corr}
}

// fallbackMakers keeps the registration form usable when the lookup is
// down. Order matches market share so the common picks stay on top.
var fallbackMakers = []string{
	"MARUTI SUZUKI", "HYUNDAI", "TATA", "MAHINDRA", "KIA",
	"TOYOTA", "HONDA", "MG", "SKODA", "VOLKSWAGEN",
	"RENAULT", "NISSAN", "FORD", "CHEVROLET",
}

func (s *vehicleService) MakerList(ctx context.Context) (model.VehicleList, error) {
	var req model.VehicleListRequest
	req.VehicleReq.Correlation = s.corr.Fresh()

	body, err := s.client.PostEncrypted(ctx, "vehicleMakerList", vehicleMakerPath, req,
		WithFallbackMessage("vehicle maker lookup failed"))
	if err != nil {
		logger.Debugf("vehicleMakerList failed, serving fallback list: %v", err)
		return fallbackList(), nil
	}
	if body == nil {
		// empty body is a soft failure: hand back the empty result
		return model.VehicleList{}, nil
	}

	list := model.NormalizeVehicleList(body, "getVehicleMake", "vehicleMakerList")
	if !list.OK {
		logger.Debug("vehicleMakerList returned an unrecognized shape, serving fallback list")
		return fallbackList(), nil
	}
	return list, nil
}

func (s *vehicleService) ModelList(ctx context.Context, maker string) (model.VehicleList, error) {
	var req model.VehicleListRequest
	req.VehicleReq.Correlation = s.corr.Fresh()
	req.VehicleReq.VehicleMaker = maker

	body, err := s.client.PostEncrypted(ctx, "vehicleModelList", vehicleModelPath, req,
		WithFallbackMessage("vehicle model lookup failed"))
	if err != nil {
		return model.VehicleList{}, err
	}
	if body == nil {
		return model.VehicleList{}, nil
	}
	return model.NormalizeVehicleList(body, "getVehicleModel", "vehicleModelList"), nil
}

func fallbackList() model.VehicleList {
	items := make([]model.Option, 0, len(fallbackMakers))
	for _, m := range fallbackMakers {
		items = append(items, model.Option{Label: m, Value: m})
	}
	return model.VehicleList{OK: true, Items: items}
}
