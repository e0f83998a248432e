package api

import (
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/config"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/model"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/util"
)

// Correlator mints the correlation block for outbound payloads. Channel
// and agent id are fixed per deployment.
type Correlator struct {
	Channel string
	AgentID string
}

func NewCorrelator(cfg *config.Config) Correlator {
	return Correlator{Channel: cfg.Channel, AgentID: cfg.AgentID}
}

// Fresh mints a new requestId/sessionId pair (equal by convention) and a
// current timestamp.
func (c Correlator) Fresh() model.Correlation {
	id := util.RequestID()
	return model.Correlation{
		RequestID:   id,
		SessionID:   id,
		ReqDateTime: util.Timestamp(),
		Channel:     c.Channel,
		AgentID:     c.AgentID,
	}
}

// Resume carries an existing requestId/sessionId pair forward through a
// multi-step flow (sendOtp -> validateOtp -> createCustomer). The
// timestamp is still recomputed.
func (c Correlator) Resume(requestID, sessionID string) model.Correlation {
	return model.Correlation{
		RequestID:   requestID,
		SessionID:   sessionID,
		ReqDateTime: util.Timestamp(),
		Channel:     c.Channel,
		AgentID:     c.AgentID,
	}
}
