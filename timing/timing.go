// SPDX-License-Identifier: MIT

// Package timing measures wall-clock duration of single function runs and
// collects the measurements of a benchmark session.
//
// Measure is the decorator: it wraps one call and returns how long it took.
// Recorder accumulates results from many Measure calls (safe for concurrent
// use), logs each one through a *slog.Logger and serializes the session as
// JSON.
//
//	rec := timing.NewRecorder("strassen-1000", logger)
//	err := rec.Time("DivideConquer", func() error {
//		_, err := multiply.DivideConquer(a, b)
//		return err
//	})
//	_ = rec.WriteJSON(os.Stdout)
package timing

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Result is one timed run.
type Result struct {
	Name      string        `json:"name"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Seconds   float64       `json:"seconds"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Measure runs fn once and reports its wall-clock duration.
// The error of fn is returned unchanged and also stored in Result.Error.
func Measure(name string, fn func() error) (Result, error) {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	res := Result{
		Name:      name,
		Elapsed:   elapsed,
		Seconds:   elapsed.Seconds(),
		Timestamp: start,
	}
	if err != nil {
		res.Error = err.Error()
	}

	return res, err
}

// Recorder collects Results of one named session.
type Recorder struct {
	mu      sync.Mutex
	session string
	logger  *slog.Logger
	results []Result
}

// NewRecorder returns an empty Recorder. A nil logger discards log output.
func NewRecorder(session string, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Recorder{session: session, logger: logger}
}

// Time measures fn under name, records the Result and logs it.
// It returns fn's error.
func (r *Recorder) Time(name string, fn func() error) error {
	res, err := Measure(name, fn)
	r.Record(res)

	return err
}

// Record appends an externally produced Result.
func (r *Recorder) Record(res Result) {
	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()

	if res.Error != "" {
		r.logger.Error("function failed",
			slog.String("session", r.session),
			slog.String("function", res.Name),
			slog.Duration("elapsed", res.Elapsed),
			slog.String("error", res.Error))
		return
	}
	r.logger.Info("function timed",
		slog.String("session", r.session),
		slog.String("function", res.Name),
		slog.Duration("elapsed", res.Elapsed))
}

// Results returns a copy of the recorded results in insertion order.
func (r *Recorder) Results() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// report is the JSON document written by WriteJSON.
type report struct {
	Session string   `json:"session"`
	Results []Result `json:"results"`
}

// WriteJSON writes the session with all results as indented JSON.
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report{Session: r.session, Results: r.Results()}); err != nil {
		return fmt.Errorf("timing: write report: %w", err)
	}

	return nil
}
