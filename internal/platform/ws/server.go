package ws

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/engine"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	maxFrame   = 64 << 10
	sendBuffer = 256
)

// Config holds the per-connection game settings.
type Config struct {
	Settings engine.Settings
	TickRate int
	// AllowedOrigins restricts browser origins. Empty allows any.
	AllowedOrigins []string
}

// Server upgrades HTTP requests and runs one session per connection.
type Server struct {
	cfg      Config
	pool     *content.Pool
	logger   *log.Logger
	upgrader websocket.Upgrader

	base      context.Context
	cancelAll context.CancelFunc
	active    atomic.Int64
	nextConn  atomic.Uint64
}

// NewServer creates a server drawing content from pool.
func NewServer(cfg Config, pool *content.Pool, logger *log.Logger) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if pool == nil {
		pool = content.NewDefaultPool()
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{cfg: cfg, pool: pool, logger: logger}
	s.base, s.cancelAll = context.WithCancel(context.Background())
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	return s
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(s.cfg.AllowedOrigins, r.Header.Get("Origin"))
}

// ServeHTTP upgrades the request and blocks for the life of the connection.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stop := context.AfterFunc(s.base, cancel)
	defer stop()

	id := s.nextConn.Add(1)
	logger := s.logger.With("conn", id, "remote", r.RemoteAddr)

	s.active.Add(1)
	defer s.active.Add(-1)

	logger.Info("client connected")
	if err := s.serve(ctx, cancel, conn, logger); err != nil {
		logger.Warn("connection closed", "error", err)
		return
	}
	logger.Info("client disconnected")
}

// Active returns the number of open connections.
func (s *Server) Active() int {
	return int(s.active.Load())
}

// Close ends every open connection.
func (s *Server) Close() {
	s.cancelAll()
}

// ListenAndServe serves /ws and /healthz on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", s)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %d\n", s.Active())
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting websocket server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ws: listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// client is one connection's outbound side.
type client struct {
	conn   *websocket.Conn
	send   chan []byte
	cancel context.CancelFunc
	logger *log.Logger
}

// push queues a frame. A client that falls a whole buffer behind is dropped.
func (c *client) push(t string, payload any) {
	b, err := Encode(t, payload)
	if err != nil {
		c.logger.Error("encode failed", "type", t, "error", err)
		return
	}
	select {
	case c.send <- b:
	default:
		c.logger.Warn("client too slow, closing")
		c.cancel()
	}
}

func (c *client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case b := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
				c.cancel()
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.cancel()
				return
			}
		}
	}
}

// readPump turns client frames into session inputs until the socket fails.
func (c *client) readPump(ctx context.Context, inputs chan<- engine.Input, pool *content.Pool) error {
	c.conn.SetReadLimit(maxFrame)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("ws: read: %w", err)
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

		in, ok, err := command(data, pool)
		if err != nil {
			c.push(MsgError, Error{Message: err.Error()})
			continue
		}
		if !ok {
			continue
		}

		select {
		case inputs <- in:
		case <-ctx.Done():
			return nil
		}
	}
}

// command decodes one client frame. Theme switches are applied to pool
// directly and produce no input.
func command(data []byte, pool *content.Pool) (engine.Input, bool, error) {
	env, err := DecodeEnvelope(data)
	if err != nil {
		return engine.Input{}, false, err
	}

	switch env.T {
	case MsgStart:
		return engine.Input{Kind: engine.InputStart}, true, nil

	case MsgStop:
		return engine.Input{Kind: engine.InputStop}, true, nil

	case MsgClick:
		p, err := DecodePayload[Click](env)
		if err != nil {
			return engine.Input{}, false, err
		}
		return engine.Input{Kind: engine.InputClick, ID: p.ID}, true, nil

	case MsgClickAt:
		p, err := DecodePayload[ClickAt](env)
		if err != nil {
			return engine.Input{}, false, err
		}
		return engine.Input{Kind: engine.InputClickAt, X: p.X, Y: p.Y}, true, nil

	case MsgMode:
		p, err := DecodePayload[ModeSelect](env)
		if err != nil {
			return engine.Input{}, false, err
		}
		mode, err := engine.ParseMode(p.Mode)
		if err != nil {
			return engine.Input{}, false, err
		}
		return engine.Input{Kind: engine.InputMode, Mode: mode}, true, nil

	case MsgResize:
		p, err := DecodePayload[Resize](env)
		if err != nil {
			return engine.Input{}, false, err
		}
		return engine.Input{Kind: engine.InputResize, W: p.W, H: p.H}, true, nil

	case MsgTheme:
		p, err := DecodePayload[ThemeSelect](env)
		if err != nil {
			return engine.Input{}, false, err
		}
		v, err := content.ParseVariant(p.Theme)
		if err != nil {
			return engine.Input{}, false, err
		}
		pool.SetThemeVariant(v)
		return engine.Input{}, false, nil
	}

	return engine.Input{}, false, fmt.Errorf("ws: unknown message type %q", env.T)
}

// outbox collects session events between flushes. It is only touched from
// the loop goroutine.
type outbox struct {
	effects []Effect
	ended   *Ended
}

func (o *outbox) Emit(e engine.Event) {
	switch ev := e.(type) {
	case engine.EffectRequested:
		o.effects = append(o.effects, Effect{Kind: ev.Effect.String(), ID: ev.ID, X: round1(ev.X), Y: round1(ev.Y)})
	case engine.SessionEnded:
		o.ended = &Ended{Score: scoreOf(ev.Score, ev.HighScore), Spawned: ev.Spawned}
	}
}

// serve runs the session loop for one connection.
func (s *Server) serve(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, logger *log.Logger) error {
	c := &client{
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		cancel: cancel,
		logger: logger,
	}

	// Each connection switches themes on its own copy of the lists.
	pool := content.NewPool(s.pool.Snapshot(content.Standard), s.pool.Snapshot(content.Themed))
	pool.SetThemeVariant(s.pool.ThemeVariant())

	out := &outbox{}
	sink := engine.MultiSink{out, engine.LogSink{Logger: logger}}
	session := engine.NewSession(s.cfg.Settings, pool, sink, rand.New(rand.NewSource(time.Now().UnixNano())))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.writePump(ctx)
	}()

	vp := s.cfg.Settings.Viewport
	c.push(MsgWelcome, Welcome{
		TickHz: s.cfg.TickRate,
		ViewW:  vp.W,
		ViewH:  vp.H,
		Modes:  modeNames(),
		Mode:   s.cfg.Settings.Mode.String(),
		Theme:  pool.ThemeVariant().String(),
	})

	inputs := make(chan engine.Input, 16)
	readErr := make(chan error, 1)
	go func() {
		err := c.readPump(ctx, inputs, pool)
		cancel()
		readErr <- err
	}()

	var seq uint64
	loop := &engine.Loop{
		Session:  session,
		TickRate: s.cfg.TickRate,
		Inputs:   inputs,
		OnTick: func(sess *engine.Session) {
			seq++
			flush(c, out, sess, pool, seq)
		},
	}
	loopErr := loop.Run(ctx)

	cancel()
	wg.Wait()
	// Unblock the reader if the peer never answered the close frame.
	conn.Close()
	return errors.Join(loopErr, <-readErr)
}

// flush sends pending effects, a round result if one arrived, then the state.
func flush(c *client, out *outbox, s *engine.Session, pool *content.Pool, seq uint64) {
	for _, e := range out.effects {
		c.push(MsgEffect, e)
	}
	out.effects = out.effects[:0]

	if out.ended != nil {
		c.push(MsgEnded, *out.ended)
		out.ended = nil
	}

	c.push(MsgState, stateOf(s, pool, seq))
}

func stateOf(s *engine.Session, pool *content.Pool, seq uint64) State {
	views := s.Entities()
	targets := make([]Target, len(views))
	for i, v := range views {
		targets[i] = targetOf(v)
	}

	st := State{
		Seq:         seq,
		Running:     s.State() == engine.Running,
		Mode:        s.Settings().Mode.String(),
		Theme:       pool.ThemeVariant().String(),
		RemainingMs: s.Remaining().Milliseconds(),
		Score:       scoreOf(s.Score(), s.HighScore()),
		Targets:     targets,
	}
	if f := s.Follower(); f.Visible {
		st.Follower = &Follower{X: round1(f.X), Y: round1(f.Y)}
	}
	return st
}
