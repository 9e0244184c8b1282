// Package orch coordinates rooms: presence, host-authoritative playback,
// signaling relay and chat fan-out. All state transitions happen here;
// transport endpoints are injected through the registry.
package orch

import (
	"time"

	"github.com/dkeye/Cinema/internal/app"
	"github.com/dkeye/Cinema/internal/core"
	"github.com/rs/zerolog/log"
)

type Orchestrator struct {
	Registry *app.Registry
	Rooms    core.RoomStore
	Policy   app.Policy

	// Now stamps outbound playback/chat events; swappable in tests.
	Now func() int64
}

func New(reg *app.Registry, rooms core.RoomStore, policy app.Policy) *Orchestrator {
	return &Orchestrator{
		Registry: reg,
		Rooms:    rooms,
		Policy:   policy,
		Now:      func() int64 { return time.Now().UnixMilli() },
	}
}

func (o *Orchestrator) sendTo(cid core.ConnectionID, event string, payload any) {
	conn, ok := o.Registry.Get(cid)
	if !ok {
		log.Debug().Str("module", "orch").Str("cid", string(cid)).Str("event", event).Msg("send to unknown connection dropped")
		return
	}
	f, err := core.Encode(event, payload)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Str("event", event).Msg("encode")
		return
	}
	_ = conn.TrySend(f)
}

func (o *Orchestrator) broadcast(room core.RoomAggregate, event string, payload any, exclude ...core.ConnectionID) {
	f, err := core.Encode(event, payload)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Str("event", event).Msg("encode")
		return
	}
	res := room.Broadcast(f, exclude...)
	o.onBackpressure(room, res)
}

// onBackpressure detaches members whose send queue stayed full instead of
// letting one slow consumer stall the room. Cancel tears the transport down
// and the adapter's disconnect path performs the actual leave.
func (o *Orchestrator) onBackpressure(room core.RoomAggregate, res core.PublishResult) {
	if o.Policy == nil {
		return
	}
	for _, cid := range res.Dropped {
		switch o.Policy.OnBackPressure(room, cid) {
		case app.KickMember:
			log.Warn().Str("module", "orch").Str("room", string(room.Room().ID)).Str("cid", string(cid)).Msg("kicking slow member")
			o.Registry.Cancel(cid)
		case app.MarkSlow, app.DropFrame, app.NoAction:
		}
	}
}
