package app

import (
	"sync"

	"github.com/dkeye/Cinema/internal/core"
	"github.com/dkeye/Cinema/internal/domain"
)

type RoomStoreImpl struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]core.RoomAggregate
}

func NewRoomStore() core.RoomStore {
	return &RoomStoreImpl{rooms: make(map[domain.RoomID]core.RoomAggregate)}
}

func (s *RoomStoreImpl) GetOrCreate(id domain.RoomID) core.RoomAggregate {
	s.mu.RLock()
	room, ok := s.rooms[id]
	s.mu.RUnlock()
	if ok {
		return room
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok = s.rooms[id]; ok {
		return room
	}
	room = core.NewRoomAggregate(domain.NewRoom(id))
	s.rooms[id] = room
	return room
}

func (s *RoomStoreImpl) Get(id domain.RoomID) (core.RoomAggregate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	return room, ok
}

func (s *RoomStoreImpl) List() []core.RoomInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.RoomInfo, 0, len(s.rooms))
	for id, r := range s.rooms {
		out = append(out, core.RoomInfo{ID: id, Participants: r.MemberCount()})
	}
	return out
}

func (s *RoomStoreImpl) Remove(id domain.RoomID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}
