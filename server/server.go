package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/store"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

const defaultIdleTTL = 30 * time.Minute

type GameRes struct {
	GameID string        `json:"game_id"`
	State  game.Snapshot `json:"state"`
}

// Opts configures a GameServer
type Opts struct {
	Store          store.GameStore
	Logger         *zap.Logger
	AllowedOrigins []string
	// IdleTTL is how long a game with no sockets is kept
	IdleTTL time.Duration
	// NewRand seeds each new game; nil uses the clock
	NewRand func() *rand.Rand
}

// GameServer is a game server
type GameServer struct {
	store    store.GameStore
	logger   *zap.Logger
	newRand  func() *rand.Rand
	idleTTL  time.Duration
	upgrader websocket.Upgrader
	http.Server
}

func NewID() string {
	return uuid.NewV4().String()
}

// NewServer creates a new GameServer
func NewServer(opts Opts) *GameServer {
	if opts.Store == nil {
		opts.Store = store.NewInMemoryGameStore()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.NewRand == nil {
		opts.NewRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = defaultIdleTTL
	}

	s := &GameServer{
		store:   opts.Store,
		logger:  opts.Logger,
		newRand: opts.NewRand,
		idleTTL: opts.IdleTTL,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(opts.AllowedOrigins),
		},
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleFindGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	var handler http.Handler = router
	handler = handlers.CORS(
		handlers.AllowedOrigins(opts.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handler)
	handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(s.logger)),
	)(handler)
	handler = handlers.LoggingHandler(zap.NewStdLog(s.logger).Writer(), handler)

	s.Handler = handler

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame deals a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := NewID()
	session := store.NewSession(gameID, g.newRand(), g.logger)

	if err := g.store.AddGame(session); err != nil {
		g.logger.Error("could not store game", zap.String("game_id", gameID), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	g.logger.Info("game created", zap.String("game_id", gameID))
	writeJSON(w, http.StatusCreated, GameRes{GameID: gameID, State: session.Snapshot()})
}

// HandleFindGame returns the state of a game
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		writeText(w, http.StatusBadRequest, "missing game ID")
		return
	}

	session := g.store.FindGame(gameID)
	if session == nil {
		writeText(w, http.StatusNotFound, unknownGameIDMsg(gameID))
		return
	}

	writeJSON(w, http.StatusOK, GameRes{GameID: gameID, State: session.Snapshot()})
}

// HandleWS connects a websocket to a game
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		writeText(w, http.StatusBadRequest, "missing game ID")
		return
	}

	session := g.store.FindGame(gameID)
	if session == nil {
		writeText(w, http.StatusBadRequest, unknownGameIDMsg(gameID))
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		g.logger.Warn("could not upgrade to websocket", zap.Error(err))
		return
	}

	c := newClient(conn, session, g.logger.With(zap.String("game_id", gameID)))
	go c.writePump()
	go c.readPump()
}

// ReapIdleGames removes idle games until ctx is done
func (g *GameServer) ReapIdleGames(ctx context.Context) {
	ticker := time.NewTicker(g.idleTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			g.sweep(now)
		}
	}
}

func (g *GameServer) sweep(now time.Time) {
	for _, id := range store.RemoveIdle(g.store, g.idleTTL, now) {
		g.logger.Info("game removed after idling", zap.String("game_id", id))
	}
}

// originChecker allows sockets from the configured origins. Requests
// without an Origin header do not come from a browser and are allowed.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	io.WriteString(w, msg)
}

func unknownGameIDMsg(unknownID string) string {
	return "unknown game ID '" + unknownID + "'"
}

var errBadMessage = errors.New("could not read message")
