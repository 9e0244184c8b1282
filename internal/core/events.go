package core

import (
	"encoding/json"

	"github.com/dkeye/Cinema/internal/domain"
)

// Outbound event names. Inbound frames reuse the webrtc-* names plus the
// client-only types handled by the signal adapter.
const (
	EventRoomState           = "room-state"
	EventUserJoined          = "user-joined"
	EventParticipantsUpdated = "participants-updated"
	EventHostChanged         = "host-changed"
	EventUserLeft            = "user-left"
	EventRoomClosed          = "room-closed"
	EventWebRTCOffer         = "webrtc-offer"
	EventWebRTCAnswer        = "webrtc-answer"
	EventWebRTCICECandidate  = "webrtc-ice-candidate"
	EventVideoChanged        = "video-changed"
	EventPlaybackControl     = "playback-control"
	EventTimeSync            = "time-sync"
	EventChatMessage         = "chat-message"
)

type PlaybackAction string

const (
	ActionPlay  PlaybackAction = "play"
	ActionPause PlaybackAction = "pause"
)

type UserJoinedEvent struct {
	UserID   ConnectionID `json:"userId"`
	UserName string       `json:"userName"`
}

type ParticipantsUpdatedEvent struct {
	Participants []ParticipantDTO `json:"participants"`
}

type HostChangedEvent struct {
	NewHostID ConnectionID `json:"newHostId"`
}

type UserLeftEvent struct {
	UserID ConnectionID `json:"userId"`
}

type RoomClosedEvent struct {
	Message string `json:"message"`
}

// Offer/answer/candidate bodies are opaque: the relay forwards them verbatim
// and never parses SDP or ICE internals.
type OfferEvent struct {
	Offer          json.RawMessage `json:"offer"`
	SenderSocketID ConnectionID    `json:"senderSocketId"`
}

type AnswerEvent struct {
	Answer         json.RawMessage `json:"answer"`
	SenderSocketID ConnectionID    `json:"senderSocketId"`
}

type ICECandidateEvent struct {
	Candidate      json.RawMessage `json:"candidate"`
	SenderSocketID ConnectionID    `json:"senderSocketId"`
}

type VideoChangedEvent struct {
	VideoURL  string               `json:"videoUrl"`
	VideoType domain.VideoKind     `json:"videoType"`
	Playback  domain.PlaybackState `json:"playbackState"`
}

type PlaybackControlEvent struct {
	Action      PlaybackAction `json:"action"`
	CurrentTime float64        `json:"currentTime"`
	Timestamp   int64          `json:"timestamp"`
}

type TimeSyncEvent struct {
	CurrentTime float64 `json:"currentTime"`
	Duration    float64 `json:"duration"`
	Timestamp   int64   `json:"timestamp"`
}

type ChatMessageEvent struct {
	UserID    ConnectionID `json:"userId"`
	UserName  string       `json:"userName"`
	Message   string       `json:"message"`
	Timestamp int64        `json:"timestamp"`
}
