// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/xmidt-org/greeter/greeting"
	"github.com/xmidt-org/greeter/xlistener"
	"go.uber.org/zap"
)

// ErrAlreadyListening is returned by Start when the server has already been started
var ErrAlreadyListening = errors.New("server is already listening")

// State is the lifecycle state of a Server
type State int

const (
	Unbound State = iota
	Listening
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "Unbound"
	case Listening:
		return "Listening"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Options describes how to construct a Server
type Options struct {
	// Name identifies this server in logs.  Defaults to DefaultServerName.
	Name string

	// Host is the host reported by the startup message.  Defaults to DefaultHost.
	Host string

	// Address is the host:port to bind.  Defaults to DefaultHost:DefaultPort.
	Address string

	MaxConnections    int
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	DisableKeepAlives bool

	// Handler serves every request.  Defaults to the greeting handler.
	Handler http.Handler

	// Logger is the base logger.  Defaults to a no-op logger.
	Logger *zap.Logger

	// Active tracks open connections.  Optional.
	Active metrics.Gauge

	// Rejected counts connections refused because of MaxConnections.  Optional.
	Rejected metrics.Counter
}

// Server binds a single TCP listener and serves a handler on it
type Server struct {
	name           string
	host           string
	address        string
	maxConnections int
	logger         *zap.Logger
	active         metrics.Gauge
	rejected       metrics.Counter
	httpServer     *http.Server

	lock     sync.Mutex
	state    State
	listener net.Listener
	done     chan struct{}
}

// New creates an Unbound server.  Nothing is bound until Start is called.
func New(o Options) *Server {
	if len(o.Name) == 0 {
		o.Name = DefaultServerName
	}

	if len(o.Host) == 0 {
		o.Host = DefaultHost
	}

	if len(o.Address) == 0 {
		o.Address = net.JoinHostPort(DefaultHost, strconv.Itoa(DefaultPort))
	}

	if o.Handler == nil {
		o.Handler = greeting.New()
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	httpServer := &http.Server{
		Addr:              o.Address,
		Handler:           o.Handler,
		ReadHeaderTimeout: o.ReadHeaderTimeout,
		IdleTimeout:       o.IdleTimeout,
		ErrorLog:          NewErrorLog(o.Logger, o.Name),
		ConnState:         NewConnStateLogger(o.Logger, o.Name),
	}

	if o.DisableKeepAlives {
		httpServer.SetKeepAlivesEnabled(false)
	}

	return &Server{
		name:           o.Name,
		host:           o.Host,
		address:        o.Address,
		maxConnections: o.MaxConnections,
		logger:         o.Logger.With(zap.String("server", o.Name)),
		active:         o.Active,
		rejected:       o.Rejected,
		httpServer:     httpServer,
		done:           make(chan struct{}),
	}
}

// Name returns the human-readable identifier for this server
func (s *Server) Name() string {
	return s.name
}

// Host returns the host used when announcing this server
func (s *Server) Host() string {
	return s.host
}

// State returns the current lifecycle state
func (s *Server) State() State {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state
}

// Addr returns the bound address, or nil if this server has never been started
func (s *Server) Addr() net.Addr {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Done returns a channel that is closed once the serving goroutine exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Start binds the configured address and begins serving in the background.  On success, onListening
// is invoked exactly once with the bound address.  Failing to bind returns a *xlistener.BindError,
// leaves the server Unbound and never invokes onListening.  A server that is already Listening
// returns ErrAlreadyListening.
func (s *Server) Start(onListening func(net.Addr)) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.state == Listening {
		return ErrAlreadyListening
	}

	l, err := xlistener.New(xlistener.Options{
		Logger:         s.logger,
		MaxConnections: s.maxConnections,
		Rejected:       s.rejected,
		Active:         s.active,
		Network:        "tcp",
		Address:        s.address,
	})

	if err != nil {
		s.logger.Error("unable to start server", zap.Error(err))
		return err
	}

	s.listener = l
	s.state = Listening
	s.logger.Info("server listening", zap.Stringer("address", l.Addr()))

	go s.serve(l)
	if onListening != nil {
		onListening(l.Addr())
	}

	return nil
}

func (s *Server) serve(l net.Listener) {
	defer close(s.done)
	if err := s.httpServer.Serve(l); !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("server exited", zap.Error(err))
	}
}

// Close abruptly closes the listener and all open connections.  In-flight requests are not drained.
// Closing a server that was never started does nothing.
func (s *Server) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.state != Listening {
		return nil
	}

	s.logger.Info("closing server")
	return s.httpServer.Close()
}

// PrintListening returns a startup callback that writes the line announcing where the server
// can be reached.  The port is taken from the bound address, so an ephemeral port is reported
// as the one actually assigned.
func PrintListening(w io.Writer, host string) func(net.Addr) {
	return func(addr net.Addr) {
		var port string
		if tcpAddr, ok := addr.(*net.TCPAddr); ok {
			port = strconv.Itoa(tcpAddr.Port)
		} else {
			_, port, _ = net.SplitHostPort(addr.String())
		}

		fmt.Fprintf(w, "Server running at http://%s/\n", net.JoinHostPort(host, port))
	}
}
