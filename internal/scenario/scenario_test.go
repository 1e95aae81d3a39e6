package scenario

import (
	"testing"

	"spherebench/internal/config"
)

func TestEggPathForcesSuffix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"mysphere", "mysphere.egg"},
		{"mysphere.egg", "mysphere.egg"},
		{"mysphere.txt", "mysphere.egg"},
		{"out/dir/ball.model", "out/dir/ball.egg"},
	}
	for _, tc := range cases {
		if got := eggPath(tc.in); got != tc.want {
			t.Errorf("eggPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStressParamsAreValidAndDense(t *testing.T) {
	p := stressParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("stress parameters invalid: %v", err)
	}
	// The replication scenarios rely on a face count in the tens of
	// thousands so the strategies separate clearly in the task manager.
	if n := p.ExpectedTriangleCount(); n < 20000 {
		t.Errorf("stress sphere has only %d triangles", n)
	}
}

func TestRunRejectsUnknownScenario(t *testing.T) {
	// Run checks the name before touching any windowing.
	err := Run(config.Run{Scenario: "Z"})
	if err == nil {
		t.Error("expected an error for unknown scenario")
	}
}
