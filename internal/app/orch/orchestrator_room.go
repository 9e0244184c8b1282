package orch

import (
	"github.com/dkeye/Cinema/internal/core"
	"github.com/dkeye/Cinema/internal/domain"
	"github.com/rs/zerolog/log"
)

// Join puts the connection into the room, creating it when absent
// (first joiner is host). The joiner gets the full room-state snapshot,
// everyone else a user-joined notice, and the whole room the new roster.
func (o *Orchestrator) Join(cid core.ConnectionID, roomID domain.RoomID, userID, displayName string) {
	conn, ok := o.Registry.Get(cid)
	if !ok {
		return
	}
	if prev, ok := o.Registry.RoomOf(cid); ok && prev != roomID {
		o.Leave(cid)
		log.Info().Str("module", "orch").Str("cid", string(cid)).Str("from_room", string(prev)).Msg("left previous room on join")
	}

	if userID == "" {
		userID = string(cid)
	}
	p := domain.NewParticipant(userID, displayName)

	room := o.Rooms.GetOrCreate(roomID)
	room.AddMember(cid, p, conn)
	o.Registry.SetRoom(cid, roomID)
	log.Info().Str("module", "orch").Str("cid", string(cid)).Str("room", string(roomID)).Str("name", p.DisplayName).Msg("join")

	o.sendTo(cid, core.EventRoomState, room.Snapshot())
	o.broadcast(room, core.EventUserJoined, core.UserJoinedEvent{UserID: cid, UserName: p.DisplayName}, cid)
	o.broadcast(room, core.EventParticipantsUpdated, core.ParticipantsUpdatedEvent{Participants: room.ParticipantsSnapshot()})
}

// Leave handles both explicit leave and transport disconnect. When the host
// departs a non-empty room, host-changed is emitted strictly before the
// roster update so no client ever sees a roster without a valid host.
// Empty rooms are collected immediately.
func (o *Orchestrator) Leave(cid core.ConnectionID) {
	roomID, ok := o.Registry.RoomOf(cid)
	if !ok {
		return
	}
	o.Registry.ClearRoom(cid)
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}

	res := room.RemoveMember(cid)
	if !res.Removed {
		return
	}
	log.Info().Str("module", "orch").Str("cid", string(cid)).Str("room", string(roomID)).Msg("leave")

	if res.Empty {
		o.Rooms.Remove(roomID)
		log.Info().Str("module", "orch").Str("room", string(roomID)).Msg("room deleted (empty)")
		return
	}
	if res.HostChanged {
		o.broadcast(room, core.EventHostChanged, core.HostChangedEvent{NewHostID: res.NewHost})
	}
	o.broadcast(room, core.EventUserLeft, core.UserLeftEvent{UserID: cid})
	o.broadcast(room, core.EventParticipantsUpdated, core.ParticipantsUpdatedEvent{Participants: room.ParticipantsSnapshot()})
}

// CloseRoom lets the host tear the whole room down. Everyone else is told
// first, then all members are evicted as if each had left.
func (o *Orchestrator) CloseRoom(cid core.ConnectionID) {
	roomID, ok := o.Registry.RoomOf(cid)
	if !ok {
		return
	}
	room, ok := o.Rooms.Get(roomID)
	if !ok || room.Host() != cid {
		return
	}

	o.broadcast(room, core.EventRoomClosed, core.RoomClosedEvent{Message: "Host closed the room"}, cid)
	for _, member := range room.Connections() {
		o.Registry.ClearRoom(member)
		room.RemoveMember(member)
	}
	o.Rooms.Remove(roomID)
	log.Info().Str("module", "orch").Str("cid", string(cid)).Str("room", string(roomID)).Msg("room closed by host")
}
