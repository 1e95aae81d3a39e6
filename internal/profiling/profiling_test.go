package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	stop := Track("test.Op")
	time.Sleep(time.Millisecond)
	stop()

	if s := TopN(1); !strings.HasPrefix(s, "test.Op:") {
		t.Errorf("expected test.Op bucket, got %q", s)
	}
}

func TestResetFrameClears(t *testing.T) {
	Track("test.Op")()
	ResetFrame()
	if s := TopN(5); s != "" {
		t.Errorf("expected empty breakdown after reset, got %q", s)
	}
}

func TestTopNOrdersByDuration(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	slow := Track("slow.Op")
	time.Sleep(3 * time.Millisecond)
	slow()
	fast := Track("fast.Op")
	fast()

	s := TopN(2)
	if !strings.HasPrefix(s, "slow.Op:") {
		t.Errorf("expected slow.Op first, got %q", s)
	}
	if !strings.Contains(s, "fast.Op:") {
		t.Errorf("expected fast.Op present, got %q", s)
	}
}
