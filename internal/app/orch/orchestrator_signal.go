package orch

import (
	"encoding/json"

	"github.com/dkeye/Cinema/internal/core"
	"github.com/rs/zerolog/log"
)

// RelayOffer, RelayAnswer and RelayCandidate forward WebRTC handshake
// payloads verbatim between two sockets. The relay only checks that the
// sender is a joined connection; the target is trusted as supplied. A dead
// target is dropped silently: signaling is best-effort and the initiating
// peer simply retries the handshake.

func (o *Orchestrator) RelayOffer(from, to core.ConnectionID, offer json.RawMessage) {
	o.relay(from, to, core.EventWebRTCOffer, core.OfferEvent{Offer: offer, SenderSocketID: from})
}

func (o *Orchestrator) RelayAnswer(from, to core.ConnectionID, answer json.RawMessage) {
	o.relay(from, to, core.EventWebRTCAnswer, core.AnswerEvent{Answer: answer, SenderSocketID: from})
}

func (o *Orchestrator) RelayCandidate(from, to core.ConnectionID, candidate json.RawMessage) {
	o.relay(from, to, core.EventWebRTCICECandidate, core.ICECandidateEvent{Candidate: candidate, SenderSocketID: from})
}

func (o *Orchestrator) relay(from, to core.ConnectionID, event string, payload any) {
	if _, ok := o.Registry.RoomOf(from); !ok {
		log.Debug().Str("module", "orch").Str("from", string(from)).Str("event", event).Msg("signal from roomless connection ignored")
		return
	}
	o.sendTo(to, event, payload)
}
