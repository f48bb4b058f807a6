package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv, err := NewServer("compact", map[string]string{"w": "15", "h": "11"}, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func TestMazeJSON(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/maze.json?seed=5&preset=lattice")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := uuid.Parse(snap.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", snap.ID, err)
	}
	if snap.Preset != "lattice" || snap.Seed != 5 {
		t.Fatalf("preset/seed = %s/%d", snap.Preset, snap.Seed)
	}
	if len(snap.Cells) != snap.Width*snap.Height {
		t.Fatalf("%d cells for %dx%d", len(snap.Cells), snap.Width, snap.Height)
	}
	start := snap.Start.Y*snap.Width + snap.Start.X
	if snap.Cells[start] != '1' {
		t.Fatal("start cell is not path")
	}
	walls := strings.Count(snap.Cells, "0")
	covered := 0
	for _, s := range snap.Segments {
		covered += s.Length
		if s.Variant < 0 || s.Variant >= textureVariants {
			t.Fatalf("variant %d out of range", s.Variant)
		}
	}
	// The exit door is the only wall without a segment.
	if snap.Exit != nil {
		covered++
	}
	if covered != walls {
		t.Fatalf("segments cover %d walls, grid has %d", covered, walls)
	}
}

func TestMazeJSONErrors(t *testing.T) {
	_, ts := newTestServer(t)
	cases := map[string]int{
		"/maze.json?seed=abc":   http.StatusBadRequest,
		"/maze.json?preset=hex": http.StatusBadRequest,
		"/maze.json?preset=":    http.StatusOK,
		"/nope":                 http.StatusNotFound,
	}
	for path, want := range cases {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != want {
			t.Fatalf("GET %s = %d, want %d", path, resp.StatusCode, want)
		}
	}
}

func TestIndexEmbedsSnapshot(t *testing.T) {
	srv, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(body, []byte("<canvas")) || !bytes.Contains(body, []byte(`id="initial"`)) {
		t.Fatalf("unexpected page: %s", body)
	}
	if !bytes.Contains(body, []byte(`"width":`+strconv.Itoa(srv.Current().Width))) {
		t.Fatal("page does not embed the current maze")
	}
	if !bytes.Contains(body, []byte(`<option selected>compact</option>`)) || !bytes.Contains(body, []byte(`<option>lattice</option>`)) {
		t.Fatal("preset picker should list every preset with the current one selected")
	}
}

func TestStreamBroadcastsRegeneration(t *testing.T) {
	srv, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/stream"
	a := dial(ctx, t, url)
	b := dial(ctx, t, url)

	for _, c := range []*websocket.Conn{a, b} {
		if env := readEnvelope(ctx, t, c); env.Type != TypeSnapshot {
			t.Fatalf("greeting type = %s", env.Type)
		}
	}
	if n := srv.Hub().Len(); n != 2 {
		t.Fatalf("hub has %d clients, want 2", n)
	}

	msg := []byte(`{"type":"Regenerate","seed":9}`)
	if err := a.Write(ctx, websocket.MessageText, msg); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, c := range []*websocket.Conn{a, b} {
		env := readEnvelope(ctx, t, c)
		var snap Snapshot
		if err := json.Unmarshal(env.Payload, &snap); err != nil {
			t.Fatalf("payload: %v", err)
		}
		if env.Type != TypeSnapshot || snap.Seed != 9 {
			t.Fatalf("got %s seed %d, want snapshot seed 9", env.Type, snap.Seed)
		}
	}
	if srv.Current().Seed != 9 {
		t.Fatalf("shared maze seed = %d", srv.Current().Seed)
	}

	bad := []byte(`{"type":"Regenerate","seed":1,"preset":"hex"}`)
	if err := b.Write(ctx, websocket.MessageText, bad); err != nil {
		t.Fatalf("write: %v", err)
	}
	if env := readEnvelope(ctx, t, b); env.Type != TypeError {
		t.Fatalf("got %s, want error", env.Type)
	}
}

func TestStreamSeedZeroAndOmittedSeed(t *testing.T) {
	srv, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := dial(ctx, t, "ws"+strings.TrimPrefix(ts.URL, "http")+"/stream")
	readEnvelope(ctx, t, c)

	zero := int64(0)
	cases := []struct {
		intent Intent
		want   int64
	}{
		{Intent{Type: IntentRegenerate, Seed: &zero}, 0},
		{Intent{Type: IntentRegenerate, Preset: "lattice"}, 0},
	}
	for _, tc := range cases {
		msg, err := json.Marshal(tc.intent)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := c.Write(ctx, websocket.MessageText, msg); err != nil {
			t.Fatalf("write: %v", err)
		}
		var snap Snapshot
		if err := json.Unmarshal(readEnvelope(ctx, t, c).Payload, &snap); err != nil {
			t.Fatalf("payload: %v", err)
		}
		if snap.Seed != tc.want {
			t.Fatalf("intent %s: seed %d, want %d", msg, snap.Seed, tc.want)
		}
	}
	if cur := srv.Current(); cur.Preset != "lattice" || cur.Seed != 0 {
		t.Fatalf("shared maze = %s seed %d", cur.Preset, cur.Seed)
	}
}

func TestMazeJSONSeedDefaults(t *testing.T) {
	_, ts := newTestServer(t)
	cases := map[string]int64{
		"/maze.json?seed=0": 0,
		"/maze.json":        1337,
	}
	for path, want := range cases {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		var snap Snapshot
		err = json.NewDecoder(resp.Body).Decode(&snap)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		if snap.Seed != want {
			t.Fatalf("GET %s seed = %d, want %d", path, snap.Seed, want)
		}
	}
}

type rawEnvelope struct {
	Sequence uint64          `json:"seq"`
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
}

func dial(ctx context.Context, t *testing.T, url string) *websocket.Conn {
	t.Helper()
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { c.Close(websocket.StatusNormalClosure, "") })
	return c
}

func readEnvelope(ctx context.Context, t *testing.T, c *websocket.Conn) rawEnvelope {
	t.Helper()
	_, data, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var env rawEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env
}
