package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func TestHubDropsClosedClients(t *testing.T) {
	hub := NewHub()
	accepted := make(chan *websocket.Conn, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		hub.Add(conn)
		accepted <- conn
		_, _, _ = conn.Read(context.Background())
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	serverSide := <-accepted

	hub.Broadcast([]byte(`{"type":"ping"}`))
	_, data, err := client.Read(ctx)
	if err != nil || string(data) != `{"type":"ping"}` {
		t.Fatalf("read = %q, %v", data, err)
	}

	serverSide.CloseNow()
	hub.Broadcast([]byte(`{}`))
	if hub.Len() != 0 {
		t.Fatalf("hub kept %d dead clients", hub.Len())
	}
	client.CloseNow()
}
