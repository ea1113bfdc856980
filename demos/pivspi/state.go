package pivspi

import (
	"math"
	"strconv"
)

const (
	twoPi = 2 * math.Pi

	// Fraction of the remaining angle the right chart covers per step.
	easing = 0.1
	// Radians per wheel step.
	wheelRate = 0.01
)

// State is the selection and rotation of both charts. The left chart shows
// kobold scores in category order, the right chart troglodyte scores in
// reverse order so matching slices face each other. The right chart's meshes
// are built in that reversed order too, so FindTargetAngle and the geometry
// agree; building them forward would point the right chart at the wrong
// slice.
type State struct {
	Categories []Category

	SelectedCategory int
	LeftAngle        float32
	RightAngle       float32
	TargetRightAngle float32
}

// NewState returns the initial state: first category selected, left chart
// turned a quarter back.
func NewState(cats []Category) *State {
	return &State{
		Categories: cats,
		LeftAngle:  -math.Pi / 2,
	}
}

// Selected returns the selected category.
func (s *State) Selected() Category { return s.Categories[s.SelectedCategory] }

func (s *State) kobolds() []float32 {
	out := make([]float32, len(s.Categories))
	for i, c := range s.Categories {
		out[i] = c.Kobold
	}
	return out
}

// troglodytes returns troglodyte scores in right chart order.
func (s *State) troglodytes() []float32 {
	n := len(s.Categories)
	out := make([]float32, n)
	for i, c := range s.Categories {
		out[n-1-i] = c.Troglodyte
	}
	return out
}

// sliceSpan returns the start and end angle of slice i of a chart.
func sliceSpan(values []float32, i int) (start, end float32) {
	var total float32
	for _, v := range values {
		total += v
	}
	var angle float32
	for j, v := range values {
		span := v / total * twoPi
		if j == i {
			return angle, angle + span
		}
		angle += span
	}
	return angle, angle
}

func wrapAngle(a float32) float32 {
	m := float32(math.Mod(float64(a), twoPi))
	return float32(math.Mod(float64(m+twoPi), twoPi))
}

// UpdateSelection selects the category whose left slice contains the
// direction the chart is turned to, then retargets the right chart.
func (s *State) UpdateSelection() {
	if len(s.Categories) == 0 {
		return
	}
	a := wrapAngle(-s.LeftAngle)
	values := s.kobolds()
	for i := range values {
		start, end := sliceSpan(values, i)
		if a >= start && a < end {
			s.SelectedCategory = i
			break
		}
	}
	s.FindTargetAngle()
}

// SelectCategory turns the left chart to the middle of slice i.
func (s *State) SelectCategory(i int) {
	if i < 0 || i >= len(s.Categories) {
		return
	}
	start, end := sliceSpan(s.kobolds(), i)
	s.LeftAngle = -(start + (end-start)/2)
	s.UpdateSelection()
}

// FindTargetAngle points the right chart's slice for the selected category
// at the left chart.
func (s *State) FindTargetAngle() {
	n := len(s.Categories)
	if n == 0 {
		return
	}
	start, end := sliceSpan(s.troglodytes(), n-1-s.SelectedCategory)
	s.TargetRightAngle = math.Pi - (start + (end-start)/2)
}

// Step eases the right chart towards its target along the shorter way.
// The remainder truncates like math.Mod, so large negative differences are
// not folded into range.
func (s *State) Step() {
	diff := s.TargetRightAngle - s.RightAngle
	norm := float32(math.Mod(float64(diff+math.Pi), twoPi)) - math.Pi
	s.RightAngle += norm * easing
}

// Wheel turns the left chart by dy wheel steps.
func (s *State) Wheel(dy float32) {
	s.LeftAngle += dy * wheelRate
	s.UpdateSelection()
}

// Drag turns the left chart by a vertical drag of dy pixels on a surface
// height pixels tall; a full-height drag is one turn.
func (s *State) Drag(dy float32, height int) {
	if height <= 0 {
		return
	}
	s.LeftAngle += dy / float32(height) * twoPi
	s.UpdateSelection()
}

// Prev selects the previous category, wrapping.
func (s *State) Prev() {
	n := len(s.Categories)
	if n == 0 {
		return
	}
	s.SelectCategory((s.SelectedCategory + n - 1) % n)
}

// Next selects the next category, wrapping.
func (s *State) Next() {
	n := len(s.Categories)
	if n == 0 {
		return
	}
	s.SelectCategory((s.SelectedCategory + 1) % n)
}

// Diff is the whole-number score difference of the selected category.
func (s *State) Diff() int {
	c := s.Selected()
	return int(float32(math.Abs(float64(c.Kobold - c.Troglodyte))))
}

// Summary is the line logged on every selection change.
func (s *State) Summary() string {
	c := s.Selected()
	return "Selected: " + c.Name +
		" - Kobold: " + formatScore(c.Kobold) +
		", Troglodyte: " + formatScore(c.Troglodyte) +
		", Diff: " + strconv.Itoa(s.Diff())
}

func formatScore(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func itoa(v int) string { return strconv.Itoa(v) }
