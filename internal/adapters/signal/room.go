package signal

import (
	"encoding/json"

	"github.com/dkeye/Cinema/internal/core"
	"github.com/dkeye/Cinema/internal/domain"
	"github.com/rs/zerolog/log"
)

func (ctl *WSController) handleJoin(cid core.ConnectionID, clientToken string, data []byte) {
	type joinPayload struct {
		RoomID   string `json:"roomId"`
		UserID   string `json:"userId,omitempty"`
		UserName string `json:"userName,omitempty"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		return
	}
	if p.RoomID == "" {
		log.Warn().Str("module", "signal").Str("cid", string(cid)).Msg("join without room id")
		return
	}
	if p.UserID == "" {
		p.UserID = clientToken
	}
	log.Info().Str("module", "signal").Str("cid", string(cid)).Str("room", p.RoomID).Str("name", p.UserName).Msg("join")
	ctl.Orch.Join(cid, domain.RoomID(p.RoomID), p.UserID, p.UserName)
}

// handleLeave detaches the socket from its room without dropping the
// connection itself.
func (ctl *WSController) handleLeave(cid core.ConnectionID) {
	log.Info().Str("module", "signal").Str("cid", string(cid)).Msg("leave")
	ctl.Orch.Leave(cid)
}

func (ctl *WSController) handleCloseRoom(cid core.ConnectionID) {
	log.Info().Str("module", "signal").Str("cid", string(cid)).Msg("close-room")
	ctl.Orch.CloseRoom(cid)
}
