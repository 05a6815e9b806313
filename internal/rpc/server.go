package rpc

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/lpmwfx/UEServer/internal/logging"
	"github.com/lpmwfx/UEServer/internal/registry"
	"github.com/lpmwfx/UEServer/internal/uitree"
)

// ErrAlreadyRunning is returned by Start when the server is running.
var ErrAlreadyRunning = errors.New("server already running")

const (
	// readTimeout bounds the single receive per connection so a silent
	// client cannot wedge the sequential accept loop.
	readTimeout = 2 * time.Second

	// writeTimeout bounds the reply send if the client stops draining.
	writeTimeout = 10 * time.Second
)

// Listener owns the TCP socket: it binds loopback on an OS-assigned port and
// serves one connection at a time, fully synchronously. While a client is
// being handled, further connection attempts wait in the OS accept queue.
type Listener struct {
	dispatcher *Dispatcher
	log        *slog.Logger

	ln       net.Listener
	port     int
	closed   bool
	closedMu sync.RWMutex
	wg       sync.WaitGroup
}

// NewListener creates a listener serving the given dispatcher.
func NewListener(d *Dispatcher) *Listener {
	return &Listener{
		dispatcher: d,
		log:        logging.WithComponent("rpc-listener"),
	}
}

// Start binds 127.0.0.1:0 and launches the accept loop. It returns the
// OS-assigned port. Bind failure leaves no state behind.
func (l *Listener) Start() (int, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("binding loopback: %w", err)
	}
	l.ln = ln
	l.port = ln.Addr().(*net.TCPAddr).Port

	l.wg.Add(1)
	go l.run()

	l.log.Info("listening", "addr", ln.Addr().String())
	return l.port, nil
}

// GetPort returns 0 before a successful Start, else the bound port.
func (l *Listener) GetPort() int {
	return l.port
}

// Stop signals the accept loop, closes the socket to unblock it, and joins
// the loop before returning, so no use of the socket survives Stop.
func (l *Listener) Stop() {
	l.closedMu.Lock()
	if l.closed {
		l.closedMu.Unlock()
		return
	}
	l.closed = true
	l.closedMu.Unlock()

	if l.ln != nil {
		l.ln.Close()
	}
	l.wg.Wait()
	l.port = 0
}

func (l *Listener) isClosed() bool {
	l.closedMu.RLock()
	defer l.closedMu.RUnlock()
	return l.closed
}

func (l *Listener) run() {
	defer l.wg.Done()

	for {
		if l.isClosed() {
			return
		}

		conn, err := l.ln.Accept()
		if err != nil {
			if l.isClosed() || errors.Is(err, net.ErrClosed) {
				l.log.Info("listener closed, stopping accept loop")
				return
			}
			l.log.Warn("accept error (continuing)", "error", err)
			continue
		}

		// One request per connection, handled to completion before the
		// next accept. This is intentionally not concurrent.
		l.handleConn(conn)
	}
}

func (l *Listener) handleConn(conn net.Conn) {
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	buf := make([]byte, MaxRequestSize)
	n, err := conn.Read(buf)
	if err != nil || n == 0 {
		l.log.Warn("read error", "error", err)
		return
	}

	resp := l.dispatcher.Dispatch(buf[:n])

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if _, err := conn.Write(append(resp, '\n')); err != nil {
		l.log.Warn("write error", "error", err)
	}
}

// Server is the unit the host embeds: it ties the listener lifecycle to the
// discovery registry so external tooling can find the bound port.
type Server struct {
	provider   uitree.Provider
	dispatcher *Dispatcher
	stores     []registry.Store
	record     registry.Record
	log        *slog.Logger

	mu       sync.Mutex
	listener *Listener
	running  bool
}

// NewServer creates a server exposing provider's widget tree, publishing its
// discovery record to every given store. project and projectName describe
// the host workspace in switchboard entries; project may be empty.
func NewServer(provider uitree.Provider, stores []registry.Store, project, projectName string) *Server {
	return &Server{
		provider:   provider,
		dispatcher: NewDispatcher(provider),
		stores:     stores,
		record: registry.Record{
			PID:         os.Getpid(),
			Project:     project,
			ProjectName: projectName,
		},
		log: logging.WithComponent("rpc-server"),
	}
}

// Dispatcher exposes the operation table so a host can register extra ops
// before Start.
func (s *Server) Dispatcher() *Dispatcher {
	return s.dispatcher
}

// Start binds the listener and registers the instance in every store.
// A registry failure is fatal: the registration is rolled back best-effort
// and the listener released, so no partial state survives a failed Start.
// Calling Start on a running server returns ErrAlreadyRunning with the
// original port untouched.
func (s *Server) Start() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return s.listener.GetPort(), ErrAlreadyRunning
	}

	s.listener = NewListener(s.dispatcher)
	port, err := s.listener.Start()
	if err != nil {
		return 0, err
	}

	rec := s.record
	rec.Port = port
	rec.Started = time.Now().UTC()

	for _, store := range s.stores {
		if err := store.Register(rec); err != nil {
			for _, st := range s.stores {
				if uerr := st.Unregister(rec.PID); uerr != nil {
					s.log.Warn("rollback unregister failed", "error", uerr)
				}
			}
			s.listener.Stop()
			return 0, fmt.Errorf("registering instance: %w", err)
		}
	}

	s.running = true
	s.log.Info("server started", "port", port, "pid", rec.PID)
	return port, nil
}

// GetPort returns the bound port, or 0 when the server is not running.
func (s *Server) GetPort() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return 0
	}
	return s.listener.GetPort()
}

// Stop joins the accept loop, releases the socket, and removes this pid's
// discovery records. Unregister failures are logged, not propagated: the
// stale entry is reclaimed by the next instance that registers under this
// pid. Stop is idempotent.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.listener.Stop()
	for _, store := range s.stores {
		if err := store.Unregister(s.record.PID); err != nil {
			s.log.Warn("unregister failed", "error", err)
		}
	}
	s.running = false
	s.log.Info("server stopped")
}
