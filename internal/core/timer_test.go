package core

import (
	"testing"
	"time"
)

func TestCadenceFiresOnInterval(t *testing.T) {
	c := NewCadence(2 * time.Second)
	base := time.Unix(1000, 0)

	if c.Due(base) {
		t.Fatal("first call should only arm")
	}
	if c.Due(base.Add(time.Second)) {
		t.Fatal("fired before interval")
	}
	if !c.Due(base.Add(2 * time.Second)) {
		t.Fatal("expected fire at interval")
	}
	if c.Due(base.Add(3 * time.Second)) {
		t.Fatal("fired twice in one interval")
	}
	if !c.Due(base.Add(4 * time.Second)) {
		t.Fatal("expected second fire")
	}
}

func TestCadenceSkipsMissedIntervals(t *testing.T) {
	c := NewCadence(time.Second)
	base := time.Unix(0, 0)
	c.Due(base)

	if !c.Due(base.Add(10 * time.Second)) {
		t.Fatal("expected fire after a long stall")
	}
	if c.Due(base.Add(10*time.Second + 500*time.Millisecond)) {
		t.Fatal("missed intervals should not fire back to back")
	}
}

func TestCadenceDefaultsAndReset(t *testing.T) {
	c := NewCadence(0)
	if c.Interval() != time.Second {
		t.Fatalf("interval = %v, want 1s", c.Interval())
	}
	base := time.Unix(0, 0)
	c.Due(base)
	c.SetInterval(5 * time.Second)
	if c.Due(base.Add(time.Minute)) {
		t.Fatal("SetInterval should re-arm")
	}
}
