package monitor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T) (*Server, *EventCollector, *httptest.Server) {
	t.Helper()
	collector := NewEventCollector()
	s := NewServer("", collector)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, collector, ts
}

func TestServer_Health(t *testing.T) {
	_, _, ts := startTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Snapshot(t *testing.T) {
	_, collector, ts := startTestServer(t)
	collector.EmitTestStarted("t1", "first")
	collector.EmitTestPassed("t1", "first", time.Millisecond)

	resp, err := http.Get(ts.URL + "/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()

	var snap Snapshot
	require.NoError(
		t, json.NewDecoder(resp.Body).Decode(&snap),
	)
	assert.Equal(t, 1, snap.Stats.Tests)
	assert.Equal(t, 1, snap.Stats.Passed)
	require.Len(t, snap.Events, 2)
	assert.Equal(t, "first", snap.Events[0].TestName)
}

func TestServer_BroadcastsEventsToWebsocketClients(t *testing.T) {
	_, collector, ts := startTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	collector.EmitAssertionFailed(
		"t9", "resource text", `Expected "a" to equal "b"`,
	)

	require.NoError(
		t, conn.SetReadDeadline(time.Now().Add(5*time.Second)),
	)
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, EventAssertionFailed, event.Type)
	assert.Equal(t, "t9", event.TestID)
	assert.Contains(t, event.Message, "to equal")
}
