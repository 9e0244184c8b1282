package signal

import (
	"encoding/json"

	"github.com/dkeye/Cinema/internal/core"
	"github.com/rs/zerolog/log"
)

// Chat rate limiting is an adapter concern layered in front of the relay;
// the room core itself imposes no limits.
func (ctl *WSController) handleChat(cid core.ConnectionID, data []byte) {
	type chatPayload struct {
		Message string `json:"message"`
	}
	var p chatPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad chat payload")
		return
	}
	if p.Message == "" {
		return
	}
	if !ctl.Limiter.Allow(cid) {
		log.Warn().Str("module", "signal").Str("cid", string(cid)).Msg("chat rate limited")
		return
	}
	ctl.Orch.Chat(cid, p.Message)
}
