package model

// Correlation is the block every outbound payload carries inside its
// operation-specific sub-object. RequestID/SessionID pairs may be carried
// forward across a sendOtp -> validateOtp -> createCustomer flow when the
// backend requires session continuity; the caller threads them, the
// client never caches them.
type Correlation struct {
	RequestID   string `json:"requestId"`
	SessionID   string `json:"sessionId,omitempty"`
	ReqDateTime string `json:"reqDateTime"`
	Channel     string `json:"channel"`
	AgentID     string `json:"agentId"`
}

// ValidateCustReq is the sub-object shared by sendOtp and
// validateCustomerDetails. The backend identifies the vehicle by exactly
// one of VehicleNo, ChassisNo or EngineNo.
type ValidateCustReq struct {
	Correlation
	MobileNo    string `json:"mobileNo"`
	VehicleNo   string `json:"vehicleNo,omitempty"`
	ChassisNo   string `json:"chassisNo,omitempty"`
	EngineNo    string `json:"engineNo,omitempty"`
	OTP         string `json:"otp,omitempty"`
	IsResendOTP string `json:"isResendOtp,omitempty"`
}

// SendOTPRequest wraps ValidateCustReq under the key the wire expects.
type SendOTPRequest struct {
	ValidateCustReq ValidateCustReq `json:"validateCustReq"`
}

// ValidateOTPRequest reuses the same sub-object name on the verify leg.
type ValidateOTPRequest struct {
	ValidateCustReq ValidateCustReq `json:"validateCustReq"`
}

// CustomerDetails describes the wallet holder on createCustomer.
type CustomerDetails struct {
	Correlation
	Name          string `json:"name"`
	LastName      string `json:"lastName,omitempty"`
	MobileNo      string `json:"mobileNo"`
	DOB           string `json:"dob"`
	DocumentType  int    `json:"documentType"`
	DocumentCode  string `json:"documentCode"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	WalletProfile string `json:"walletProfile,omitempty"`
}

// CreateCustomerRequest is the createCustomer envelope.
type CreateCustomerRequest struct {
	CustomerDetails CustomerDetails `json:"custDetails"`
}

// VehicleListRequest is shared by the maker and model lookups.
type VehicleListRequest struct {
	VehicleReq struct {
		Correlation
		VehicleMaker string `json:"vehicleMaker,omitempty"`
	} `json:"vehicleReq"`
}

// DocumentUpload is the uploadDocument sub-object. Image fields carry
// repaired Base64 and must never appear whole in logs.
type DocumentUpload struct {
	Correlation
	DocumentType string `json:"documentType"`
	SessionKey   string `json:"sessionKey,omitempty"`
	Image        string `json:"image"`
	ImageType    string `json:"imageType,omitempty"`
}

// DocumentUploadRequest is the uploadDocument envelope.
type DocumentUploadRequest struct {
	DocumentDetails DocumentUpload `json:"documentDetails"`
}

// TagRegistration is the registerFastag / replaceFastag sub-object.
type TagRegistration struct {
	Correlation
	MobileNo     string `json:"mobileNo"`
	WalletID     string `json:"walletId"`
	VehicleNo    string `json:"vehicleNo,omitempty"`
	ChassisNo    string `json:"chassisNo,omitempty"`
	SerialNo     string `json:"serialNo"`
	TID          string `json:"tid,omitempty"`
	VehicleClass string `json:"vehicleClass,omitempty"`
	UDF1         string `json:"udf1,omitempty"`
	UDF2         string `json:"udf2,omitempty"`
	Reason       string `json:"reason,omitempty"`
	ReasonDesc   string `json:"reasonDesc,omitempty"`
}

// RegisterFastagRequest is the registerFastag envelope.
type RegisterFastagRequest struct {
	RegDetails TagRegistration `json:"regDetails"`
}

// ReplaceFastagRequest is the replaceFastag envelope.
type ReplaceFastagRequest struct {
	TagReplaceReq TagRegistration `json:"tagReplaceReq"`
}

// TokenRequest is the tokenGeneration envelope for the bearer sub-flow.
type TokenRequest struct {
	TokenReq struct {
		Correlation
	} `json:"tokenReq"`
}

// VRNUpdate is the sub-object for the VAS endpoints (vrnUpdate,
// vrnUpdateDoc, uploadKYVImages, checkStatusKYVImages).
type VRNUpdate struct {
	Correlation
	MobileNo   string `json:"mobileNo"`
	WalletID   string `json:"walletId,omitempty"`
	VehicleNo  string `json:"vehicleNo,omitempty"`
	ChassisNo  string `json:"chassisNo,omitempty"`
	EngineNo   string `json:"engineNo,omitempty"`
	SerialNo   string `json:"serialNo,omitempty"`
	DocType    string `json:"docType,omitempty"`
	RCFront    string `json:"rcFrontImage,omitempty"`
	RCBack     string `json:"rcBackImage,omitempty"`
	KYCImage   string `json:"kycImage,omitempty"`
	KYCRefNo   string `json:"kycRefNo,omitempty"`
	VehicleVRN string `json:"vrn,omitempty"`
}

// VRNUpdateRequest is the VAS envelope.
type VRNUpdateRequest struct {
	VRNDetails VRNUpdate `json:"vrnDetails"`
}

// RCImageValidationRequest is the best-effort pre-registration image
// check envelope.
type RCImageValidationRequest struct {
	ImageDetails struct {
		Correlation
		RCFront string `json:"rcFrontImage"`
		RCBack  string `json:"rcBackImage"`
	} `json:"imageDetails"`
}

// AppStatusRequest asks whether the Bajaj app is installed for a mobile
// number.
type AppStatusRequest struct {
	AppStatusReq struct {
		Correlation
		MobileNo string `json:"mobileNo"`
	} `json:"appStatusReq"`
}
