package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trapdata/companion/internal/bridge"
	"github.com/trapdata/companion/internal/handlers"
	"github.com/trapdata/companion/internal/host"
	"github.com/trapdata/companion/internal/view"
	"github.com/trapdata/companion/internal/ws"
)

type testApp struct {
	srv  *httptest.Server
	hub  *ws.Hub
	view *view.View
}

func newTestApp(t *testing.T, h bridge.Host) *testApp {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hub := ws.NewHub(logger)
	v := view.New(h,
		view.WithLogger(logger),
		view.OnChange(handlers.StatePusher(hub, logger)),
	)
	v.Mount()

	srv := httptest.NewServer(New(handlers.New(v, hub, "AMI Trap Data Companion", logger), logger))
	t.Cleanup(srv.Close)

	return &testApp{srv: srv, hub: hub, view: v}
}

func (a *testApp) get(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(a.srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func (a *testApp) ping(t *testing.T) int {
	t.Helper()
	resp, err := http.Post(a.srv.URL+"/api/ping", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestPageWithoutBridge(t *testing.T) {
	app := newTestApp(t, nil)

	code, body := app.get(t, "/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Hooked up with desktop app: No")
	assert.Contains(t, body, "Message received: -")

	assert.Equal(t, http.StatusConflict, app.ping(t))
}

func TestPingRoundTrip(t *testing.T) {
	api := host.NewWithClock(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		func() time.Time { return time.Unix(1700000000, 0) },
	)
	app := newTestApp(t, api)

	_, body := app.get(t, "/")
	assert.Contains(t, body, "Hooked up with desktop app: Yes")

	wsURL := "ws" + strings.TrimPrefix(app.srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return app.hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	assert.Equal(t, http.StatusNoContent, app.ping(t))
	assert.EqualValues(t, 1, api.Received())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, frag, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(frag), `data-oob="true"`)
	assert.Contains(t, string(frag), "Message received: PONG (1700000000)")

	_, raw := app.get(t, "/api/state")
	var st view.State
	require.NoError(t, json.Unmarshal([]byte(raw), &st))
	assert.Equal(t, view.State{HasBridge: true, Message: "PONG (1700000000)"}, st)

	assert.Equal(t, http.StatusNoContent, app.ping(t))
	assert.EqualValues(t, 2, api.Received())
}

func TestAssets(t *testing.T) {
	app := newTestApp(t, nil)

	code, body := app.get(t, "/assets/app.css")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, ".App-header")

	code, body = app.get(t, "/assets/companion.js")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "data-oob")

	_, page := app.get(t, "/")
	assert.NotContains(t, page, "unpkg.com")
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, nil)

	code, _ := app.get(t, "/nope")
	assert.Equal(t, http.StatusNotFound, code)
}
