package signal

import (
	"encoding/json"

	"github.com/dkeye/Cinema/internal/core"
	"github.com/dkeye/Cinema/internal/domain"
	"github.com/rs/zerolog/log"
)

func (ctl *WSController) handlePlaybackControl(cid core.ConnectionID, data []byte) {
	type controlPayload struct {
		Action      core.PlaybackAction `json:"action"`
		CurrentTime *float64            `json:"currentTime,omitempty"`
	}
	var p controlPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad playback-control payload")
		return
	}
	if p.Action != core.ActionPlay && p.Action != core.ActionPause {
		log.Warn().Str("module", "signal").Str("action", string(p.Action)).Msg("unknown playback action")
		return
	}
	ctl.Orch.PlaybackControl(cid, p.Action, p.CurrentTime)
}

func (ctl *WSController) handleChangeVideo(cid core.ConnectionID, data []byte) {
	type changePayload struct {
		VideoURL  string           `json:"videoUrl"`
		VideoType domain.VideoKind `json:"videoType"`
	}
	var p changePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad change-video payload")
		return
	}
	if p.VideoURL == "" {
		return
	}
	if p.VideoType != domain.VideoYouTube && p.VideoType != domain.VideoCustom {
		p.VideoType = domain.VideoCustom
	}
	ctl.Orch.ChangeVideo(cid, p.VideoURL, p.VideoType)
}

func (ctl *WSController) handleTimeSync(cid core.ConnectionID, data []byte) {
	type syncPayload struct {
		CurrentTime float64 `json:"currentTime"`
		Duration    float64 `json:"duration"`
	}
	var p syncPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad time-sync payload")
		return
	}
	ctl.Orch.TimeSync(cid, p.CurrentTime, p.Duration)
}
