package core

import (
	"encoding/json"

	"github.com/dkeye/Cinema/internal/domain"
)

// Frame is a fully encoded wire payload.
type Frame []byte

// ConnectionID is the transport-assigned identity of one live socket.
// It doubles as the implicit host capability: whoever joined first holds it.
type ConnectionID string

// SignalConnection abstracts for a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// Envelope is the wire framing in both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Encode marshals an outbound event once, so room fan-out reuses one buffer.
func Encode(event string, payload any) (Frame, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(Envelope{Type: event, Data: data})
	if err != nil {
		return nil, err
	}
	return Frame(b), nil
}

// PublishResult reports delivery stats/backpressure to orchestrator.
type PublishResult struct {
	SentTo  int
	Dropped []ConnectionID
}

// ParticipantDTO is a read-only roster view for snapshots (no transport fields
// beyond the socket id clients need to target signaling at each other).
type ParticipantDTO struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	SocketID ConnectionID `json:"socketId"`
	IsHost   bool         `json:"isHost"`
}

// RoomSnapshot is the full room state sent to a joiner and to the REST lookup.
// VideoURL/VideoType render as null until the host sets a video.
type RoomSnapshot struct {
	RoomID       domain.RoomID        `json:"roomId"`
	HostID       ConnectionID         `json:"hostId"`
	Participants []ParticipantDTO     `json:"participants"`
	VideoURL     *string              `json:"videoUrl"`
	VideoType    *domain.VideoKind    `json:"videoType"`
	Playback     domain.PlaybackState `json:"playbackState"`
}

// LeaveResult tells the orchestrator what a removal changed, so it can emit
// host-changed strictly before the roster update.
type LeaveResult struct {
	Removed     bool
	HostChanged bool
	NewHost     ConnectionID
	Empty       bool
}

// RoomAggregate is the core-facing API of a room. It owns the membership set,
// host assignment and playback state, but never touches transport resources.
// Every method takes the room lock, so all mutations of one room serialize
// while unrelated rooms proceed concurrently.
type RoomAggregate interface {
	Room() *domain.Room
	Host() ConnectionID
	MemberCount() int
	Connections() []ConnectionID
	ParticipantsSnapshot() []ParticipantDTO
	Snapshot() RoomSnapshot
	DisplayName(cid ConnectionID) (string, bool)

	AddMember(cid ConnectionID, p *domain.Participant, conn SignalConnection)
	RemoveMember(cid ConnectionID) LeaveResult

	SetVideo(cid ConnectionID, video domain.Video) (domain.PlaybackState, bool)
	SetPlaying(cid ConnectionID, playing bool, currentTime *float64) (float64, bool)
	SyncTime(cid ConnectionID, currentTime, duration float64) bool

	Broadcast(f Frame, exclude ...ConnectionID) PublishResult
}

type RoomInfo struct {
	ID           domain.RoomID `json:"id"`
	Participants int           `json:"participants"`
}

// RoomStore maps room ids to live aggregates. A room is present iff it has
// at least one participant; empty rooms are removed by the orchestrator.
type RoomStore interface {
	GetOrCreate(id domain.RoomID) RoomAggregate
	Get(id domain.RoomID) (RoomAggregate, bool)
	List() []RoomInfo
	Remove(id domain.RoomID)
}
