package bridge

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/user/splicedd/pkg/ports"
)

// Server dispatches line-delimited JSON requests to a Registry.
type Server struct {
	registry *Registry
	log      ports.Logger
}

// NewServer creates a Server for registry.
func NewServer(registry *Registry, log ports.Logger) *Server {
	return &Server{
		registry: registry,
		log:      log.WithComponent("bridge"),
	}
}

// responseWriter serializes responses onto one stream.
type responseWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func (w *responseWriter) write(resp Response) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(resp)
}

// Serve reads one Request per line from r and writes one Response per line to
// w. Each request runs on its own goroutine; responses are written in
// completion order. Serve returns nil when r is exhausted and every call has
// answered. When ctx is cancelled no further requests are read, running calls
// complete, and ctx.Err() is returned.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	out := &responseWriter{enc: json.NewEncoder(w)}
	lines := make(chan []byte)
	readErr := make(chan error, 1)

	// A blocking Read cannot be interrupted, so after cancellation this
	// goroutine lingers until r yields or closes, then exits without
	// delivering what it read.
	go func() {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadBytes('\n')
			if ctx.Err() != nil {
				readErr <- ctx.Err()
				return
			}
			if len(bytes.TrimSpace(line)) > 0 {
				select {
				case lines <- line:
				case <-ctx.Done():
					readErr <- ctx.Err()
					return
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				readErr <- err
				return
			}
		}
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	// Calls already issued run to completion even after ctx is cancelled.
	callCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}
			s.log.Info("Bridge input closed")
			return nil
		case line := <-lines:
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.handle(callCtx, line, out)
			}()
		}
	}
}

func (s *Server) handle(ctx context.Context, line []byte, out *responseWriter) {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		s.log.Warn("Rejected request line: %s", err)
		s.respond(out, newResponse(0, nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)))
		return
	}

	s.respond(out, s.Dispatch(ctx, req))
}

// Dispatch runs a single request and builds its response.
func (s *Server) Dispatch(ctx context.Context, req Request) Response {
	callID := ulid.Make().String()
	start := time.Now()
	s.log.Debug("Invoking %s (call %s)", req.Cmd, callID)

	result, err := s.registry.Invoke(ctx, req.Cmd, req.Args)
	if err != nil {
		s.log.Warn("Call %s to %s failed: %s", callID, req.Cmd, err)
		return newResponse(req.ID, nil, err)
	}

	s.log.Debug("Call %s finished in %s", callID, time.Since(start))
	return newResponse(req.ID, result, nil)
}

func (s *Server) respond(out *responseWriter, resp Response) {
	if err := out.write(resp); err != nil {
		s.log.Error("Failed to write response: %s", err)
	}
}
