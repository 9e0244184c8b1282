package core

import (
	"errors"
	"testing"

	"github.com/dkeye/Cinema/internal/domain"
)

type stubConn struct {
	frames []Frame
	fail   bool
}

func (c *stubConn) TrySend(f Frame) error {
	if c.fail {
		return errors.New("queue full")
	}
	c.frames = append(c.frames, f)
	return nil
}

func (c *stubConn) Close() {}

func newTestRoom() RoomAggregate {
	return NewRoomAggregate(domain.NewRoom("r1"))
}

func addMember(r RoomAggregate, cid ConnectionID) *stubConn {
	conn := &stubConn{}
	r.AddMember(cid, domain.NewParticipant(string(cid), "user-"+string(cid)), conn)
	return conn
}

func TestFirstJoinerIsHost(t *testing.T) {
	r := newTestRoom()
	addMember(r, "a")
	addMember(r, "b")

	if got := r.Host(); got != "a" {
		t.Fatalf("host = %q, want a", got)
	}
}

func TestHostAlwaysAMember(t *testing.T) {
	r := newTestRoom()
	ops := []struct {
		join bool
		cid  ConnectionID
	}{
		{true, "a"}, {true, "b"}, {true, "c"},
		{false, "a"}, {true, "d"}, {false, "b"},
		{false, "c"}, {true, "e"}, {false, "d"},
	}
	for i, op := range ops {
		if op.join {
			addMember(r, op.cid)
		} else {
			r.RemoveMember(op.cid)
		}
		if r.MemberCount() == 0 {
			continue
		}
		host := r.Host()
		found := false
		for _, c := range r.Connections() {
			if c == host {
				found = true
			}
		}
		if !found {
			t.Fatalf("op %d: host %q not among members %v", i, host, r.Connections())
		}
	}
}

func TestHostMigrationIsDeterministic(t *testing.T) {
	elect := func() ConnectionID {
		r := newTestRoom()
		addMember(r, "a")
		addMember(r, "b")
		addMember(r, "c")
		res := r.RemoveMember("a")
		if !res.HostChanged {
			t.Fatal("expected host change")
		}
		return res.NewHost
	}
	first := elect()
	if first != "b" {
		t.Fatalf("successor = %q, want earliest remaining joiner b", first)
	}
	for i := 0; i < 10; i++ {
		if got := elect(); got != first {
			t.Fatalf("run %d elected %q, want %q", i, got, first)
		}
	}
}

func TestRemoveNonHostKeepsHost(t *testing.T) {
	r := newTestRoom()
	addMember(r, "a")
	addMember(r, "b")
	res := r.RemoveMember("b")
	if res.HostChanged {
		t.Fatal("host should not change when a follower leaves")
	}
	if r.Host() != "a" {
		t.Fatalf("host = %q, want a", r.Host())
	}
}

func TestRemoveLastMemberReportsEmpty(t *testing.T) {
	r := newTestRoom()
	addMember(r, "a")
	res := r.RemoveMember("a")
	if !res.Removed || !res.Empty {
		t.Fatalf("res = %+v, want removed and empty", res)
	}
}

func TestDuplicateJoinKeepsOrderAndHost(t *testing.T) {
	r := newTestRoom()
	addMember(r, "a")
	addMember(r, "b")
	addMember(r, "a") // refresh, not a new member

	if r.MemberCount() != 2 {
		t.Fatalf("count = %d, want 2", r.MemberCount())
	}
	if r.Host() != "a" {
		t.Fatalf("host = %q, want a", r.Host())
	}
	res := r.RemoveMember("a")
	if res.NewHost != "b" {
		t.Fatalf("successor = %q, want b", res.NewHost)
	}
}

func TestSetVideoResetsPlayback(t *testing.T) {
	r := newTestRoom()
	addMember(r, "a")

	if _, ok := r.SetVideo("a", domain.Video{URL: "https://youtu.be/abc", Kind: domain.VideoYouTube}); !ok {
		t.Fatal("host SetVideo rejected")
	}
	if _, ok := r.SetPlaying("a", true, f64(42)); !ok {
		t.Fatal("host SetPlaying rejected")
	}
	if !r.SyncTime("a", 42, 600) {
		t.Fatal("host SyncTime rejected")
	}

	playback, ok := r.SetVideo("a", domain.Video{URL: "https://example.com/v.mp4", Kind: domain.VideoCustom})
	if !ok {
		t.Fatal("host SetVideo rejected")
	}
	if playback.IsPlaying || playback.CurrentTime != 0 || playback.Duration != 0 {
		t.Fatalf("playback after SetVideo = %+v, want zero state", playback)
	}
	if snap := r.Snapshot(); snap.Playback != playback {
		t.Fatalf("snapshot playback = %+v, want %+v", snap.Playback, playback)
	}
}

func TestNonHostMutationsRejected(t *testing.T) {
	r := newTestRoom()
	addMember(r, "a")
	addMember(r, "b")
	if _, ok := r.SetPlaying("a", true, f64(7)); !ok {
		t.Fatal("host SetPlaying rejected")
	}
	before := r.Snapshot()

	if _, ok := r.SetVideo("b", domain.Video{URL: "x", Kind: domain.VideoCustom}); ok {
		t.Fatal("non-host SetVideo accepted")
	}
	if _, ok := r.SetPlaying("b", false, f64(99)); ok {
		t.Fatal("non-host SetPlaying accepted")
	}
	if r.SyncTime("b", 1, 2) {
		t.Fatal("non-host SyncTime accepted")
	}

	after := r.Snapshot()
	if after.Playback != before.Playback || after.HostID != before.HostID {
		t.Fatalf("state mutated by non-host: before %+v after %+v", before, after)
	}
}

func TestSnapshotVideoNullUntilSet(t *testing.T) {
	r := newTestRoom()
	addMember(r, "a")
	snap := r.Snapshot()
	if snap.VideoURL != nil || snap.VideoType != nil {
		t.Fatalf("fresh room video = %v/%v, want nil", snap.VideoURL, snap.VideoType)
	}

	r.SetVideo("a", domain.Video{URL: "u", Kind: domain.VideoYouTube})
	snap = r.Snapshot()
	if snap.VideoURL == nil || *snap.VideoURL != "u" {
		t.Fatalf("videoUrl = %v, want u", snap.VideoURL)
	}
	if snap.VideoType == nil || *snap.VideoType != domain.VideoYouTube {
		t.Fatalf("videoType = %v, want youtube", snap.VideoType)
	}
}

func TestParticipantsSnapshotDerivesIsHost(t *testing.T) {
	r := newTestRoom()
	addMember(r, "a")
	addMember(r, "b")
	r.RemoveMember("a")

	roster := r.ParticipantsSnapshot()
	if len(roster) != 1 {
		t.Fatalf("roster size = %d, want 1", len(roster))
	}
	if roster[0].SocketID != "b" || !roster[0].IsHost {
		t.Fatalf("roster[0] = %+v, want b as host", roster[0])
	}
}

func TestBroadcastExcludesAndReportsDropped(t *testing.T) {
	r := newTestRoom()
	a := addMember(r, "a")
	b := addMember(r, "b")
	c := addMember(r, "c")
	b.fail = true

	f, err := Encode(EventChatMessage, ChatMessageEvent{Message: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	res := r.Broadcast(f, "a")

	if len(a.frames) != 0 {
		t.Fatal("excluded member received frame")
	}
	if len(c.frames) != 1 {
		t.Fatalf("c received %d frames, want 1", len(c.frames))
	}
	if res.SentTo != 1 {
		t.Fatalf("sent_to = %d, want 1", res.SentTo)
	}
	if len(res.Dropped) != 1 || res.Dropped[0] != "b" {
		t.Fatalf("dropped = %v, want [b]", res.Dropped)
	}
}

func f64(v float64) *float64 { return &v }
