package memstat

import (
	"strings"
	"testing"
	"time"
)

func TestTakePopulatesCounters(t *testing.T) {
	s := Take()
	if s.HeapAlloc == 0 || s.Sys == 0 {
		t.Errorf("expected non-zero memory counters, got %+v", s)
	}
	if s.Goroutines < 1 {
		t.Errorf("expected at least one goroutine, got %d", s.Goroutines)
	}
	if s.TakenAt.IsZero() {
		t.Error("sample timestamp not set")
	}
}

func TestSampleString(t *testing.T) {
	s := Sample{HeapAlloc: 3 << 20, HeapSys: 8 << 20, Sys: 16 << 20, NumGC: 4}
	str := s.String()
	for _, want := range []string{"3.0 MiB", "8.0 MiB", "16.0 MiB", "4 GC"} {
		if !strings.Contains(str, want) {
			t.Errorf("summary %q missing %q", str, want)
		}
	}
}

func TestFormatBytesBelowMiB(t *testing.T) {
	if got := formatBytes(2048); got != "2 KiB" {
		t.Errorf("expected 2 KiB, got %q", got)
	}
}

func TestReporterCachesBetweenIntervals(t *testing.T) {
	r := NewReporter(time.Hour)
	first := r.Current()
	second := r.Current()
	if first.TakenAt != second.TakenAt {
		t.Error("reporter should reuse the sample inside one interval")
	}
}
