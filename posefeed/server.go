// Package posefeed accepts landmark frames from a browser or sidecar pose
// estimator over a websocket and forwards them to the tracker
package posefeed

import (
	"context"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/pose"
	"github.com/lixenwraith/axododge/status"
)

// FrameSink receives validated frames; pose.Tracker implements it
type FrameSink interface {
	Update(f pose.Frame)
}

// resetter is implemented by sinks holding smoothing history
type resetter interface {
	Reset()
}

// Options configures the listener
type Options struct {
	Addr           string   // Listen address for Start, e.g. ":8765"
	Path           string   // Endpoint, PoseFeedPath when empty
	OriginPatterns []string // Extra allowed browser origins
}

// session is one connected provider
type session struct {
	id     string
	conn   *websocket.Conn
	cancel context.CancelFunc
}

// Server is an http.Handler serving one active pose session at a time
// A newer connection replaces the older one
type Server struct {
	opts Options
	sink FrameSink
	reg  *status.Registry

	mu     sync.Mutex
	active *session
	srv    *http.Server
	ln     net.Listener

	statFrames   *atomic.Int64
	statSessions *atomic.Int64
	statRejected *atomic.Int64
	statActive   *atomic.Bool
}

// NewServer creates a feed forwarding frames to sink and replying with match metrics from reg
func NewServer(sink FrameSink, reg *status.Registry, opts Options) *Server {
	if opts.Path == "" {
		opts.Path = parameter.PoseFeedPath
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Server{
		opts:         opts,
		sink:         sink,
		reg:          reg,
		statFrames:   reg.Ints.Get("posefeed.frames"),
		statSessions: reg.Ints.Get("posefeed.sessions"),
		statRejected: reg.Ints.Get("posefeed.rejected"),
		statActive:   reg.Bools.Get("posefeed.connected"),
	}
}

// Handler returns a mux serving the feed at its path
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(s.opts.Path, s)
	return mux
}

// ServeHTTP upgrades the request and runs the session until it ends or is replaced
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.opts.OriginPatterns,
	})
	if err != nil {
		log.Printf("[PoseFeed] accept: %v", err)
		return
	}
	conn.SetReadLimit(parameter.PoseFeedReadLimit)

	ctx, cancel := context.WithCancel(r.Context())
	sess := &session{id: uuid.NewString(), conn: conn, cancel: cancel}
	s.attach(sess)
	defer s.detach(sess)

	log.Printf("[PoseFeed] session %s connected from %s", sess.id, r.RemoteAddr)
	if err := s.write(ctx, conn, ServerMessage{Type: TypeHello, Session: sess.id}); err != nil {
		return
	}

	err = s.readLoop(ctx, sess)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case websocket.CloseStatus(err) == websocket.StatusNormalClosure,
		websocket.CloseStatus(err) == websocket.StatusGoingAway:
	default:
		log.Printf("[PoseFeed] session %s ended: %v", sess.id, err)
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) readLoop(ctx context.Context, sess *session) error {
	for {
		var msg FrameMessage
		if err := wsjson.Read(ctx, sess.conn, &msg); err != nil {
			return err
		}

		frame, problem := msg.Validate()
		if problem != "" {
			s.statRejected.Add(1)
			if err := s.write(ctx, sess.conn, ServerMessage{Type: TypeError, Error: problem}); err != nil {
				return err
			}
			if frame.Pose == nil && frame.Hands == nil {
				continue
			}
		}

		if s.sink != nil {
			s.sink.Update(frame)
		}
		s.statFrames.Add(1)

		if err := s.write(ctx, sess.conn, s.Status()); err != nil {
			return err
		}
	}
}

func (s *Server) write(ctx context.Context, conn *websocket.Conn, msg ServerMessage) error {
	wctx, cancel := context.WithTimeout(ctx, parameter.PoseFeedWriteTimeout)
	defer cancel()
	return wsjson.Write(wctx, conn, msg)
}

// Status builds the reply from current match metrics
func (s *Server) Status() ServerMessage {
	return ServerMessage{
		Type:  TypeStatus,
		Phase: s.reg.Strings.Get("match.phase").Load(),
		Score: s.reg.Ints.Get("match.score").Load(),
		Lives: s.reg.Ints.Get("match.lives").Load(),
		Combo: s.reg.Ints.Get("match.combo").Load(),
		Level: s.reg.Ints.Get("match.level").Load(),
		Time:  s.reg.Floats.Get("match.time").Get(),
	}
}

func (s *Server) attach(sess *session) {
	s.mu.Lock()
	old := s.active
	s.active = sess
	s.mu.Unlock()

	s.statSessions.Add(1)
	s.statActive.Store(true)

	if old != nil {
		log.Printf("[PoseFeed] session %s replaced by %s", old.id, sess.id)
		go func() {
			old.conn.Close(websocket.StatusPolicyViolation, "replaced by a newer session")
			old.cancel()
		}()
	}
}

func (s *Server) detach(sess *session) {
	sess.cancel()

	s.mu.Lock()
	last := s.active == sess
	if last {
		s.active = nil
		s.statActive.Store(false)
	}
	s.mu.Unlock()

	// A replaced session hands the sink over without clearing it
	if r, ok := s.sink.(resetter); ok && last {
		r.Reset()
	}
}

// ActiveSession returns the current session id, empty when none
func (s *Server) ActiveSession() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return ""
	}
	return s.active.id
}

// --- service.Service ---

// Name implements service.Service
func (s *Server) Name() string { return "posefeed" }

// Dependencies implements service.Service
func (s *Server) Dependencies() []string { return nil }

// Init implements service.Service
// args[0]: string - listen address overriding Options.Addr
func (s *Server) Init(args ...any) error {
	if len(args) > 0 {
		if addr, ok := args[0].(string); ok && addr != "" {
			s.opts.Addr = addr
		}
	}
	if s.opts.Addr == "" {
		return errors.New("posefeed: listen address required")
	}
	return nil
}

// Start implements service.Service, listening in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return errors.Wrapf(err, "posefeed listen on %s", s.opts.Addr)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.srv, s.ln = srv, ln
	s.mu.Unlock()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[PoseFeed] serve: %v", err)
		}
	}()
	log.Printf("[PoseFeed] listening on ws://%s%s", ln.Addr(), s.opts.Path)
	return nil
}

// Addr returns the bound listen address once started
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return s.opts.Addr
	}
	return s.ln.Addr().String()
}

// Stop implements service.Service
func (s *Server) Stop() error {
	s.mu.Lock()
	srv, active := s.srv, s.active
	s.srv, s.ln = nil, nil
	s.mu.Unlock()

	if active != nil {
		go active.conn.Close(websocket.StatusGoingAway, "server shutting down")
		active.cancel()
	}
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), parameter.PoseFeedShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "posefeed shutdown")
	}
	return nil
}
