package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/protocol"
	"github.com/minaorangina/klondike/store"
	"github.com/stretchr/testify/require"
)

func seededRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func newTestServer(s store.GameStore) *GameServer {
	return NewServer(Opts{Store: s, NewRand: seededRand})
}

func newStoreWithGame(t *testing.T, gameID string) (*store.InMemoryGameStore, *store.Session) {
	t.Helper()

	s := store.NewInMemoryGameStore()
	session := store.NewSession(gameID, seededRand(), nil)
	require.NoError(t, s.AddGame(session))

	return s, session
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func decodeGameRes(t *testing.T, response *httptest.ResponseRecorder) GameRes {
	t.Helper()

	var got GameRes
	err := json.Unmarshal(response.Body.Bytes(), &got)
	require.NoError(t, err, "could not unmarshal json")

	return got
}

func wsURL(server *httptest.Server, gameID string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?game_id=" + gameID
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	return ws
}

func readOutbound(t *testing.T, ws *websocket.Conn) protocol.OutboundMessage {
	t.Helper()

	var msg protocol.OutboundMessage
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, ws.ReadJSON(&msg))

	return msg
}
