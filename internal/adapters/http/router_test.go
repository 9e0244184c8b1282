package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dkeye/Cinema/internal/app"
	"github.com/dkeye/Cinema/internal/app/orch"
	"github.com/dkeye/Cinema/internal/config"
	"github.com/dkeye/Cinema/internal/core"
	"github.com/dkeye/Cinema/internal/domain"
)

type nopConn struct{}

func (nopConn) TrySend(core.Frame) error { return nil }
func (nopConn) Close()                   {}

func newTestServer(t *testing.T) (*httptest.Server, core.RoomStore) {
	t.Helper()
	cfg := &config.Config{
		Mode:       "release",
		StaticPath: t.TempDir(),
		ReadLimit:  32768,
		PingPeriod: 54 * time.Second,
		SendQueue:  32,
		ChatLimit:  20,
		ChatWindow: 10 * time.Second,
		Secret:     "test-secret",
	}
	reg := app.NewRegistry()
	rooms := app.NewRoomStore()
	o := orch.New(reg, rooms, app.SimplePolicy{})

	r := SetupRouter(context.Background(), cfg, o, rooms)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, rooms
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/rooms/missing")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "Room not found" {
		t.Fatalf("body = %v", body)
	}
}

func TestGetRoomSnapshot(t *testing.T) {
	ts, rooms := newTestServer(t)

	room := rooms.GetOrCreate("movie-night")
	room.AddMember("A", domain.NewParticipant("u1", "Alice"), nopConn{})
	room.SetVideo("A", domain.Video{URL: "https://youtu.be/abc", Kind: domain.VideoYouTube})

	resp, err := http.Get(ts.URL + "/api/rooms/movie-night")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var snap core.RoomSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.RoomID != "movie-night" || snap.HostID != "A" {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.VideoURL == nil || *snap.VideoURL != "https://youtu.be/abc" {
		t.Fatalf("videoUrl = %v", snap.VideoURL)
	}
	if len(snap.Participants) != 1 || snap.Participants[0].Name != "Alice" || !snap.Participants[0].IsHost {
		t.Fatalf("participants = %+v", snap.Participants)
	}
}

func TestListRooms(t *testing.T) {
	ts, rooms := newTestServer(t)
	rooms.GetOrCreate("r1").AddMember("A", domain.NewParticipant("u1", ""), nopConn{})

	resp, err := http.Get(ts.URL + "/api/rooms")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var body struct {
		Rooms []core.RoomInfo `json:"rooms"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Rooms) != 1 || body.Rooms[0].ID != "r1" || body.Rooms[0].Participants != 1 {
		t.Fatalf("rooms = %+v", body.Rooms)
	}
}

func TestClientTokenCookieSet(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	for _, c := range resp.Cookies() {
		if c.Name == "ct" && c.Value != "" {
			return
		}
	}
	t.Fatal("client token cookie not set")
}
