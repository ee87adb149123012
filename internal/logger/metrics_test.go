package logger

import (
	"testing"
	"time"
)

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.AddCounter("rows.seen", 2)
	m.AddCounter("rows.seen", 3)

	if got := m.Snapshot().Counters["rows.seen"]; got != 5 {
		t.Errorf("Counter = %v, want 5", got)
	}
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics()

	m.SetGauge("programs", 120)
	m.SetGauge("programs", 118)

	if got := m.Snapshot().Gauges["programs"]; got != 118 {
		t.Errorf("Gauge = %v, want 118", got)
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("fetch", 100*time.Millisecond)
	m.RecordTiming("fetch", 200*time.Millisecond)
	m.RecordTiming("fetch", 150*time.Millisecond)

	stats := m.Snapshot().Timings["fetch"]
	want := TimingStats{Count: 3, Total: "450ms", Average: "150ms", Min: "100ms", Max: "200ms"}
	if stats != want {
		t.Errorf("Timing = %+v, want %+v", stats, want)
	}
}

func TestMetrics_Time(t *testing.T) {
	m := NewMetrics()

	stop := m.Time("parse")
	stop()

	if got := m.Snapshot().Timings["parse"].Count; got != 1 {
		t.Errorf("Timing count = %v, want 1", got)
	}
}

func TestMetrics_SnapshotIsCopy(t *testing.T) {
	m := NewMetrics()
	m.AddCounter("rows.skipped", 1)

	snap := m.Snapshot()
	m.AddCounter("rows.skipped", 1)

	if snap.Counters["rows.skipped"] != 1 {
		t.Errorf("snapshot changed after update: %v", snap.Counters)
	}

	fields := snap.Fields()
	for _, key := range []string{"counters", "gauges", "timings"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Fields() missing %q", key)
		}
	}
}
