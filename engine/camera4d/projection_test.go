package camera4d

import (
	"testing"
	"time"
)

func TestProjectionFirstCallReportsChange(t *testing.T) {
	cam, _ := newTestCamera()
	p := NewProjection()

	rec, changed := p.Project(cam)
	if !changed {
		t.Fatal("first Project reported no change")
	}
	if rec != cam.Internal() {
		t.Errorf("record = %v, want %v", rec, cam.Internal())
	}
	if _, changed := p.Project(cam); changed {
		t.Error("second Project of an idle camera reported a change")
	}
}

func TestProjectionTracksAnimation(t *testing.T) {
	cam, clock := newTestCamera()
	start := clock.now
	p := NewProjection()
	p.Project(cam)

	cam.Trigger(GeneratorForwardA, start)
	// Trigger alone does not move the committed rotation.
	if _, changed := p.Project(cam); changed {
		t.Error("Project reported a change before the first animation tick")
	}

	steps := []struct {
		at      time.Duration
		changed bool
	}{
		{0, true},
		{0, false},
		{250 * time.Millisecond, true},
		{250 * time.Millisecond, false},
		{time.Second, true},
		{2 * time.Second, false},
	}
	for _, s := range steps {
		cam.Tick(start.Add(s.at))
		rec, changed := p.Project(cam)
		if changed != s.changed {
			t.Errorf("t=%v: changed = %v, want %v", s.at, changed, s.changed)
		}
		if rec != cam.Internal() {
			t.Errorf("t=%v: record does not match camera state", s.at)
		}
	}
}

func TestProjectionInvalidate(t *testing.T) {
	cam, _ := newTestCamera()
	p := NewProjection()
	p.Project(cam)
	p.Invalidate()
	if _, changed := p.Project(cam); !changed {
		t.Error("Project after Invalidate reported no change")
	}
}
