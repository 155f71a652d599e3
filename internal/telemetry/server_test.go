package telemetry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestPublishWithoutClients(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	defer s.Close()

	// Must be a silent no-op.
	s.Publish(Snapshot{Count: 1, Max: 10})
}

func TestPublishReachesClient(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	defer s.Close()

	ts := httptest.NewServer(http.HandlerFunc(s.wsHandler))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Wait for the server side to register the connection.
	deadline := time.Now().Add(2 * time.Second)
	for {
		s.mu.Lock()
		n := len(s.conns)
		s.mu.Unlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("connection never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	want := Snapshot{
		Count:  2,
		Max:    100,
		Grains: []Grain{{X: 1.5, Y: 2.5, C: "#c2b280"}, {X: 3, Y: 4, C: "#ac9a66"}},
	}
	s.Publish(want)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var got Snapshot
	if err := json.Unmarshal(msg, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Count != want.Count || got.Max != want.Max || len(got.Grains) != len(want.Grains) {
		t.Errorf("snapshot = %+v, want %+v", got, want)
	}
	for i := range want.Grains {
		if got.Grains[i] != want.Grains[i] {
			t.Errorf("grain %d = %+v, want %+v", i, got.Grains[i], want.Grains[i])
		}
	}
}
