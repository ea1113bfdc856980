package pivspi

import (
	"math"
	"testing"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-4 }

func TestInitialState(t *testing.T) {
	s := NewState(DefaultCategories())
	if s.SelectedCategory != 0 || !near(s.LeftAngle, -math.Pi/2) || s.RightAngle != 0 || s.TargetRightAngle != 0 {
		t.Fatalf("initial = %+v", s)
	}
}

func TestUpdateSelection(t *testing.T) {
	s := NewState(DefaultCategories())
	// -π/2 turns the left chart so π/2 lies in Cunning (4/46..12/46 of a turn).
	s.UpdateSelection()
	if s.SelectedCategory != 1 {
		t.Fatalf("selected = %d, want 1", s.SelectedCategory)
	}

	s.LeftAngle = 0.01
	s.UpdateSelection()
	if s.SelectedCategory != 6 {
		t.Fatalf("just before a full turn: selected = %d, want 6", s.SelectedCategory)
	}

	s.LeftAngle = -0.01 - 4*math.Pi
	s.UpdateSelection()
	if s.SelectedCategory != 0 {
		t.Fatalf("wrapped: selected = %d, want 0", s.SelectedCategory)
	}
}

func TestSelectCategory(t *testing.T) {
	s := NewState(DefaultCategories())
	s.SelectCategory(2)
	if s.SelectedCategory != 2 {
		t.Fatalf("selected = %d", s.SelectedCategory)
	}
	wantLeft := -float32((12.0 + 3) / 46 * 2 * math.Pi)
	if !near(s.LeftAngle, wantLeft) {
		t.Fatalf("left = %v, want %v", s.LeftAngle, wantLeft)
	}
	// Right chart order: Stealth, Intelligence, Habitat, Sociality, Aggression, ...
	wantTarget := float32(math.Pi - (22.0+4)/42*2*math.Pi)
	if !near(s.TargetRightAngle, wantTarget) {
		t.Fatalf("target = %v, want %v", s.TargetRightAngle, wantTarget)
	}

	s.SelectCategory(99)
	if s.SelectedCategory != 2 {
		t.Fatal("out of range index changed the selection")
	}
}

func TestEverySelectionRoundTrips(t *testing.T) {
	s := NewState(DefaultCategories())
	for i := range s.Categories {
		s.SelectCategory(i)
		if s.SelectedCategory != i {
			t.Errorf("SelectCategory(%d) selected %d", i, s.SelectedCategory)
		}
	}
}

func TestPrevNextWrap(t *testing.T) {
	s := NewState(DefaultCategories())
	s.Prev()
	if s.SelectedCategory != 6 {
		t.Fatalf("prev from 0 = %d", s.SelectedCategory)
	}
	s.Next()
	if s.SelectedCategory != 0 {
		t.Fatalf("next from 6 = %d", s.SelectedCategory)
	}
	s.Next()
	if s.SelectedCategory != 1 {
		t.Fatalf("next from 0 = %d", s.SelectedCategory)
	}
}

func TestStepEases(t *testing.T) {
	cases := []struct {
		target, want float32
	}{
		{1, 0.1},
		{-3, -0.3},
		// Truncating remainder: differences below -π are not folded.
		{-5, -0.5},
		{5, (5 - 2*math.Pi) * 0.1},
	}
	for _, tc := range cases {
		s := &State{TargetRightAngle: tc.target}
		s.Step()
		if !near(s.RightAngle, tc.want) {
			t.Errorf("target %v: right = %v, want %v", tc.target, s.RightAngle, tc.want)
		}
	}

	s := &State{TargetRightAngle: 2}
	for i := 0; i < 200; i++ {
		s.Step()
	}
	if !near(s.RightAngle, 2) {
		t.Fatalf("did not converge: %v", s.RightAngle)
	}
}

func TestWheelAndDrag(t *testing.T) {
	s := NewState(DefaultCategories())
	s.Wheel(100)
	if !near(s.LeftAngle, -math.Pi/2+1) {
		t.Fatalf("wheel: left = %v", s.LeftAngle)
	}

	s = NewState(DefaultCategories())
	s.Drag(90, 360)
	if !near(s.LeftAngle, 0) {
		t.Fatalf("drag: left = %v", s.LeftAngle)
	}
	if s.SelectedCategory != 0 {
		t.Fatalf("drag: selected = %d", s.SelectedCategory)
	}

	s.Drag(10, 0)
	if !near(s.LeftAngle, 0) {
		t.Fatal("zero height drag moved the chart")
	}
}

func TestSummary(t *testing.T) {
	s := NewState([]Category{{"Strength", 4, 7}, {"Speed", 5, 2.5}})
	if got, want := s.Summary(), "Selected: Strength - Kobold: 4, Troglodyte: 7, Diff: 3"; got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
	s.SelectedCategory = 1
	if got, want := s.Summary(), "Selected: Speed - Kobold: 5, Troglodyte: 2.5, Diff: 2"; got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}
