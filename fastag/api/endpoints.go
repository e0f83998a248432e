package api

// Aggregator endpoints, relative to the environment base URL. The split
// between ftAggregatorService and ftVasService mirrors the backend: the
// VAS family is the token-gated one.
const (
	sendOTPPath          = "/ftAggregatorService/v2/sendOtp"
	validateCustomerPath = "/ftAggregatorService/v2/validateCustomerDetails"
	createCustomerPath   = "/ftAggregatorService/v1/createCustomer"
	vehicleMakerPath     = "/ftAggregatorService/v1/vehicleMakerList"
	vehicleModelPath     = "/ftAggregatorService/v1/vehicleModelList"
	uploadDocumentPath   = "/ftAggregatorService/v1/uploadDocument"
	registerFastagPath   = "/ftAggregatorService/v2/registerFastag"
	replaceFastagPath    = "/ftAggregatorService/v2/replaceFastag"
	validateImagesPath   = "/ftAggregatorService/v1/validateImages"
	checkAppStatusPath   = "/ftAggregatorService/v1/checkBajajAppStatus"

	tokenGenerationPath = "/ftVasService/v1/tokenGeneration"
	vrnUpdatePath       = "/ftVasService/v1/vrnUpdate"
	vrnUpdateDocPath    = "/ftVasService/v1/vrnUpdateDoc"
	uploadKYVImagesPath = "/ftVasService/v1/uploadKYVImages"
	checkKYVStatusPath  = "/ftVasService/v1/checkStatusKYVImages"
)
