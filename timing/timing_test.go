// SPDX-License-Identifier: MIT
package timing_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/timing"
)

func TestMeasure(t *testing.T) {
	t.Parallel()

	calls := 0
	res, err := timing.Measure("sleep", func() error {
		calls++
		time.Sleep(2 * time.Millisecond)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, "sleep", res.Name)
	require.GreaterOrEqual(t, res.Elapsed, 2*time.Millisecond)
	require.InDelta(t, res.Elapsed.Seconds(), res.Seconds, 1e-12)
	require.Empty(t, res.Error)
	require.False(t, res.Timestamp.IsZero())
}

func TestMeasureErrorPassthrough(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	res, err := timing.Measure("fail", func() error { return fmt.Errorf("wrapped: %w", boom) })
	require.ErrorIs(t, err, boom)
	require.Equal(t, "wrapped: boom", res.Error)
}

func TestRecorderLogsAndCollects(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	rec := timing.NewRecorder("session-1", logger)

	require.NoError(t, rec.Time("ok", func() error { return nil }))
	require.Error(t, rec.Time("bad", func() error { return errors.New("nope") }))

	got := rec.Results()
	require.Len(t, got, 2)
	require.Equal(t, "ok", got[0].Name)
	require.Equal(t, "bad", got[1].Name)
	require.Equal(t, "nope", got[1].Error)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, "INFO", first["level"])
	require.Equal(t, "function timed", first["msg"])
	require.Equal(t, "ok", first["function"])
	require.Equal(t, "session-1", first["session"])
	require.Equal(t, "ERROR", second["level"])
	require.Equal(t, "nope", second["error"])
}

func TestRecorderResultsIsCopy(t *testing.T) {
	t.Parallel()

	rec := timing.NewRecorder("s", nil)
	rec.Record(timing.Result{Name: "x"})
	got := rec.Results()
	got[0].Name = "mutated"
	require.Equal(t, "x", rec.Results()[0].Name)
}

func TestRecorderConcurrentRecord(t *testing.T) {
	t.Parallel()

	rec := timing.NewRecorder("s", nil)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Record(timing.Result{Name: fmt.Sprintf("r%d", i)})
		}()
	}
	wg.Wait()
	require.Len(t, rec.Results(), 32)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rec := timing.NewRecorder("bench-1000", nil)
	rec.Record(timing.Result{Name: "naive", Elapsed: 1500 * time.Millisecond, Seconds: 1.5})

	var buf bytes.Buffer
	require.NoError(t, rec.WriteJSON(&buf))

	var doc struct {
		Session string `json:"session"`
		Results []struct {
			Name    string  `json:"name"`
			Elapsed int64   `json:"elapsed_ns"`
			Seconds float64 `json:"seconds"`
			Error   *string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "bench-1000", doc.Session)
	require.Len(t, doc.Results, 1)
	require.Equal(t, "naive", doc.Results[0].Name)
	require.Equal(t, int64(1500*time.Millisecond), doc.Results[0].Elapsed)
	require.Equal(t, 1.5, doc.Results[0].Seconds)
	require.Nil(t, doc.Results[0].Error, "empty error is omitted")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteJSONError(t *testing.T) {
	t.Parallel()

	err := timing.NewRecorder("s", nil).WriteJSON(failWriter{})
	require.ErrorContains(t, err, "timing: write report")
}
