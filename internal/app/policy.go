package app

import "github.com/dkeye/Cinema/internal/core"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	MarkSlow
	KickMember
	DropFrame
)

// Policy decides what to do with a member whose send queue is full.
type Policy interface {
	OnBackPressure(room core.RoomAggregate, cid core.ConnectionID) BackpressureAction
}

type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(room core.RoomAggregate, cid core.ConnectionID) BackpressureAction {
	return KickMember
}
