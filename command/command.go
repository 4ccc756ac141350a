package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"

	"github.com/parkgate/spaproxy/proxyspec"
)

var (
	// ErrCircuitOpen means the target's breaker refused the call; no
	// outbound attempt was made.
	ErrCircuitOpen = errors.New("circuit open for target")

	// ErrUpstreamTimeout means the call exceeded the command timeout.
	ErrUpstreamTimeout = errors.New("upstream call timed out")

	// ErrUpstreamUnavailable means transport failure or a 5xx answer.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Command is one outbound call built from a resolved specification.
// RetryCnt is caller-driven bookkeeping; the command never retries on
// its own.
type Command struct {
	Resolved proxyspec.Resolved
	Headers  http.Header
	RetryCnt int
}

// Result is the backend answer forwarded to the caller.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Executor runs commands through a bounded timeout and a per-target
// circuit breaker. Breaker state is shared by every call to the same
// target group; no lock is held across an outbound call.
type Executor struct {
	client      *http.Client
	timeout     time.Duration
	threshold   uint32
	sleepWindow time.Duration

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[*Result]
}

func NewExecutor(timeout time.Duration, failureThreshold int, sleepWindow time.Duration) *Executor {
	if failureThreshold < 1 {
		failureThreshold = 1
	}
	return &Executor{
		client:      &http.Client{},
		timeout:     timeout,
		threshold:   uint32(failureThreshold),
		sleepWindow: sleepWindow,
		breakers:    make(map[string]*gobreaker.CircuitBreaker[*Result]),
	}
}

func (e *Executor) breaker(group string) *gobreaker.CircuitBreaker[*Result] {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cb, ok := e.breakers[group]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker[*Result](gobreaker.Settings{
		Name:        group,
		MaxRequests: 1, // half-open admits exactly one trial call
		Timeout:     e.sleepWindow,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= e.threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("target", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit state change")
		},
	})
	e.breakers[group] = cb
	return cb
}

// Do executes one command. The request context propagates cancellation;
// the command timeout applies regardless of circuit state. A timeout or
// 5xx counts as a failure for circuit accounting.
func (e *Executor) Do(ctx context.Context, cmd Command) (*Result, error) {
	cb := e.breaker(cmd.Resolved.Name)

	result, err := cb.Execute(func() (*Result, error) {
		return e.call(ctx, cmd)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s: %w", cmd.Resolved.Name, ErrCircuitOpen)
		}
		return nil, err
	}
	return result, nil
}

func (e *Executor) call(ctx context.Context, cmd Command) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var body io.Reader
	if cmd.Resolved.Body != "" {
		body = strings.NewReader(cmd.Resolved.Body)
	}
	req, err := http.NewRequestWithContext(ctx, cmd.Resolved.Method, cmd.Resolved.TargetURL, body)
	if err != nil {
		return nil, fmt.Errorf("building upstream request: %w", err)
	}
	copyForwardableHeaders(req.Header, cmd.Headers)
	for key, value := range cmd.Resolved.Headers {
		req.Header.Set(key, value)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s: %w", cmd.Resolved.Name, ErrUpstreamTimeout)
		}
		return nil, fmt.Errorf("%s: %w", cmd.Resolved.Name, ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%s: status %d: %w", cmd.Resolved.Name, resp.StatusCode, ErrUpstreamUnavailable)
	}
	return &Result{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       data,
	}, nil
}

// Hop-by-hop headers never forwarded upstream.
var skippedHeaders = map[string]struct{}{
	"Connection":        {},
	"Keep-Alive":        {},
	"Transfer-Encoding": {},
	"Upgrade":           {},
	"Host":              {},
	"Content-Length":    {},
}

func copyForwardableHeaders(dst, src http.Header) {
	for key, values := range src {
		if _, skip := skippedHeaders[http.CanonicalHeaderKey(key)]; skip {
			continue
		}
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}
