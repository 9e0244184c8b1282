// Package domain contains entity without logic, just meta-data
package domain

import "time"

type RoomID string

type VideoKind string

const (
	VideoYouTube VideoKind = "youtube"
	VideoCustom  VideoKind = "custom"
)

// Video is what the room is currently watching. Nil on a fresh room.
type Video struct {
	URL  string    `json:"videoUrl"`
	Kind VideoKind `json:"videoType"`
}

// PlaybackState is host-authoritative; followers only ever read it.
type PlaybackState struct {
	IsPlaying   bool    `json:"isPlaying"`
	CurrentTime float64 `json:"currentTime"`
	Duration    float64 `json:"duration"`
}

type Room struct {
	ID        RoomID
	CreatedAt time.Time
}

func NewRoom(id RoomID) *Room {
	return &Room{ID: id, CreatedAt: time.Now()}
}
