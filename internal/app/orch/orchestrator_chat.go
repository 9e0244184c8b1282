package orch

import (
	"github.com/dkeye/Cinema/internal/core"
)

// Chat fans a text message out to the whole room, sender included. Every
// client sees one canonical stream, so there is no optimistic-echo
// reconciliation on the client side.
func (o *Orchestrator) Chat(cid core.ConnectionID, text string) {
	room, ok := o.roomOf(cid)
	if !ok {
		return
	}
	name, ok := room.DisplayName(cid)
	if !ok {
		// stale connection that is mapped to a room it is no longer in
		return
	}
	o.broadcast(room, core.EventChatMessage, core.ChatMessageEvent{
		UserID:    cid,
		UserName:  name,
		Message:   text,
		Timestamp: o.Now(),
	})
}
