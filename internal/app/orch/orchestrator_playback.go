package orch

import (
	"github.com/dkeye/Cinema/internal/core"
	"github.com/dkeye/Cinema/internal/domain"
	"github.com/rs/zerolog/log"
)

// ChangeVideo swaps the room video and resets playback. The broadcast goes
// to every participant including the host, so the host client reconciles
// from the canonical event instead of its own optimistic update.
// Silent no-op for non-hosts.
func (o *Orchestrator) ChangeVideo(cid core.ConnectionID, url string, kind domain.VideoKind) {
	room, ok := o.roomOf(cid)
	if !ok {
		return
	}
	playback, ok := room.SetVideo(cid, domain.Video{URL: url, Kind: kind})
	if !ok {
		log.Debug().Str("module", "orch").Str("cid", string(cid)).Msg("change-video from non-host ignored")
		return
	}
	o.broadcast(room, core.EventVideoChanged, core.VideoChangedEvent{
		VideoURL:  url,
		VideoType: kind,
		Playback:  playback,
	})
}

// PlaybackControl applies a host play/pause and fans it out to the other
// participants with a server timestamp, so followers can compensate for
// relay latency. The host already applied the action locally and is excluded.
func (o *Orchestrator) PlaybackControl(cid core.ConnectionID, action core.PlaybackAction, currentTime *float64) {
	room, ok := o.roomOf(cid)
	if !ok {
		return
	}
	canonical, ok := room.SetPlaying(cid, action == core.ActionPlay, currentTime)
	if !ok {
		log.Debug().Str("module", "orch").Str("cid", string(cid)).Msg("playback-control from non-host ignored")
		return
	}
	o.broadcast(room, core.EventPlaybackControl, core.PlaybackControlEvent{
		Action:      action,
		CurrentTime: canonical,
		Timestamp:   o.Now(),
	}, cid)
}

// TimeSync is the host's ~1 Hz position sample. The server only records and
// delivers it; whether a follower resyncs is follower policy.
func (o *Orchestrator) TimeSync(cid core.ConnectionID, currentTime, duration float64) {
	room, ok := o.roomOf(cid)
	if !ok {
		return
	}
	if !room.SyncTime(cid, currentTime, duration) {
		return
	}
	o.broadcast(room, core.EventTimeSync, core.TimeSyncEvent{
		CurrentTime: currentTime,
		Duration:    duration,
		Timestamp:   o.Now(),
	}, cid)
}

func (o *Orchestrator) roomOf(cid core.ConnectionID) (core.RoomAggregate, bool) {
	roomID, ok := o.Registry.RoomOf(cid)
	if !ok {
		return nil, false
	}
	return o.Rooms.Get(roomID)
}
