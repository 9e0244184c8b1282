package core

import (
	"sync"

	"github.com/dkeye/Cinema/internal/domain"
	"github.com/rs/zerolog/log"
)

// roomImpl is a threadsafe in-memory room.
// It never closes adapter-owned resources.
type roomImpl struct {
	room *domain.Room

	mu       sync.RWMutex
	host     ConnectionID
	order    []ConnectionID // join order; drives deterministic host succession
	members  map[ConnectionID]*memberState
	video    *domain.Video
	playback domain.PlaybackState
}

type memberState struct {
	participant *domain.Participant
	conn        SignalConnection
}

func NewRoomAggregate(room *domain.Room) RoomAggregate {
	return &roomImpl{
		room:    room,
		members: make(map[ConnectionID]*memberState),
	}
}

func (r *roomImpl) Room() *domain.Room { return r.room }

func (r *roomImpl) Host() ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.host
}

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *roomImpl) Connections() []ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ConnectionID, len(r.order))
	copy(out, r.order)
	return out
}

// AddMember inserts or overwrites a participant. The first member of an
// empty room becomes host. A duplicate join from the same connection only
// refreshes meta and keeps its position in the join order.
func (r *roomImpl) AddMember(cid ConnectionID, p *domain.Participant, conn SignalConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.members) == 0 {
		r.host = cid
	}
	if _, ok := r.members[cid]; !ok {
		r.order = append(r.order, cid)
	}
	r.members[cid] = &memberState{participant: p, conn: conn}
	log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("cid", string(cid)).Str("user", p.UserID).Msg("member added")
}

// RemoveMember drops a participant and, when the host leaves a still
// populated room, promotes the earliest remaining member by join order.
func (r *roomImpl) RemoveMember(cid ConnectionID) LeaveResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := LeaveResult{}
	if _, ok := r.members[cid]; !ok {
		res.Empty = len(r.members) == 0
		return res
	}
	delete(r.members, cid)
	for i, id := range r.order {
		if id == cid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	res.Removed = true
	if r.host == cid && len(r.order) > 0 {
		r.host = r.order[0]
		res.HostChanged = true
		res.NewHost = r.host
		log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("new_host", string(r.host)).Msg("host migrated")
	}
	res.Empty = len(r.members) == 0
	log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("cid", string(cid)).Msg("member removed")
	return res
}

func (r *roomImpl) ParticipantsSnapshot() []ParticipantDTO {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.participantsLocked()
}

func (r *roomImpl) participantsLocked() []ParticipantDTO {
	out := make([]ParticipantDTO, 0, len(r.order))
	for _, cid := range r.order {
		ms := r.members[cid]
		out = append(out, ParticipantDTO{
			ID:       ms.participant.UserID,
			Name:     ms.participant.DisplayName,
			SocketID: cid,
			IsHost:   cid == r.host, // derived, never stored
		})
	}
	return out
}

func (r *roomImpl) Snapshot() RoomSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := RoomSnapshot{
		RoomID:       r.room.ID,
		HostID:       r.host,
		Participants: r.participantsLocked(),
		Playback:     r.playback,
	}
	if r.video != nil {
		snap.VideoURL = &r.video.URL
		snap.VideoType = &r.video.Kind
	}
	return snap
}

func (r *roomImpl) DisplayName(cid ConnectionID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ms, ok := r.members[cid]
	if !ok {
		return "", false
	}
	return ms.participant.DisplayName, true
}

// SetVideo replaces the room video and resets playback to a clean slate, so
// a position from the previous video never leaks into the new one.
// Host-only; reports false without touching state otherwise.
func (r *roomImpl) SetVideo(cid ConnectionID, video domain.Video) (domain.PlaybackState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cid != r.host {
		return domain.PlaybackState{}, false
	}
	v := video
	r.video = &v
	r.playback = domain.PlaybackState{}
	return r.playback, true
}

// SetPlaying applies a host play/pause, optionally pinning the position.
// Returns the now-canonical current time.
func (r *roomImpl) SetPlaying(cid ConnectionID, playing bool, currentTime *float64) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cid != r.host {
		return 0, false
	}
	r.playback.IsPlaying = playing
	if currentTime != nil {
		r.playback.CurrentTime = *currentTime
	}
	return r.playback.CurrentTime, true
}

// SyncTime overwrites position and duration unconditionally; the host is the
// single source of truth, so there is nothing to reconcile.
func (r *roomImpl) SyncTime(cid ConnectionID, currentTime, duration float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cid != r.host {
		return false
	}
	r.playback.CurrentTime = currentTime
	r.playback.Duration = duration
	return true
}

func (r *roomImpl) Broadcast(f Frame, exclude ...ConnectionID) PublishResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := PublishResult{}
	for _, cid := range r.order {
		if excluded(cid, exclude) {
			continue
		}
		if err := r.members[cid].conn.TrySend(f); err != nil {
			res.Dropped = append(res.Dropped, cid)
			continue
		}
		res.SentTo++
	}
	log.Debug().Str("module", "core.room").Str("room", string(r.room.ID)).Int("sent_to", res.SentTo).Int("dropped", len(res.Dropped)).Msg("broadcast result")
	return res
}

func excluded(cid ConnectionID, exclude []ConnectionID) bool {
	for _, e := range exclude {
		if e == cid {
			return true
		}
	}
	return false
}
