package signal

import (
	"encoding/json"

	"github.com/dkeye/Cinema/internal/core"
	"github.com/rs/zerolog/log"
)

// The offer/answer/candidate bodies stay json.RawMessage end to end; the
// server never looks inside an SDP or ICE candidate.

func (ctl *WSController) handleOffer(cid core.ConnectionID, data []byte) {
	type offerPayload struct {
		Offer          json.RawMessage   `json:"offer"`
		TargetSocketID core.ConnectionID `json:"targetSocketId"`
	}
	var p offerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad offer payload")
		return
	}
	ctl.Orch.RelayOffer(cid, p.TargetSocketID, p.Offer)
}

func (ctl *WSController) handleAnswer(cid core.ConnectionID, data []byte) {
	type answerPayload struct {
		Answer         json.RawMessage   `json:"answer"`
		TargetSocketID core.ConnectionID `json:"targetSocketId"`
	}
	var p answerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad answer payload")
		return
	}
	ctl.Orch.RelayAnswer(cid, p.TargetSocketID, p.Answer)
}

func (ctl *WSController) handleCandidate(cid core.ConnectionID, data []byte) {
	type candidatePayload struct {
		Candidate      json.RawMessage   `json:"candidate"`
		TargetSocketID core.ConnectionID `json:"targetSocketId"`
	}
	var p candidatePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad candidate payload")
		return
	}
	ctl.Orch.RelayCandidate(cid, p.TargetSocketID, p.Candidate)
}
