package cycler

import (
	"testing"
	"time"

	"tinytext/quarkgl"
	"tinytext/tinytext"
)

func TestStartsAtSpaceAndWraps(t *testing.T) {
	c := NewCycler()
	if c.Current() != ' ' {
		t.Fatalf("start = %q, want space", c.Current())
	}
	for i := 0; i < 94; i++ {
		c.Advance()
	}
	if c.Current() != '~' {
		t.Fatalf("after 94 = %q, want ~", c.Current())
	}
	c.Advance()
	if c.Code() != 32 {
		t.Fatalf("wrap = %d, want 32", c.Code())
	}
}

func TestCaption(t *testing.T) {
	c := NewCycler()
	if got, want := c.Caption(), "Char: '·' ASCII: 32 (1/95)"; got != want {
		t.Fatalf("caption = %q, want %q", got, want)
	}
	c = Cycler{code: 'A'}
	if got, want := c.Caption(), "Char: 'A' ASCII: 65 (34/95)"; got != want {
		t.Fatalf("caption = %q, want %q", got, want)
	}
}

func TestPreviewWraps(t *testing.T) {
	cases := []struct {
		code uint8
		want string
	}{
		{'A', "Next: BCDEF"},
		{'{', "Next: |}~·!"},
		{'~', "Next: ·!\"#$"},
		{30 + 2, "Next: !\"#$%"},
	}
	for _, tc := range cases {
		if got := (Cycler{code: tc.code}).Preview(); got != tc.want {
			t.Errorf("Preview(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		code uint8
		want string
	}{
		{32, "Progress: 0%"},
		{79, "Progress: 50%"},
		{33, "Progress: 1%"},
		{126, "Progress: 100%"},
	}
	for _, tc := range cases {
		if got := (Cycler{code: tc.code}).Progress(); got != tc.want {
			t.Errorf("Progress(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestRequests(t *testing.T) {
	c := Cycler{code: 'Q'}
	reqs := c.Requests(tinytext.Cubes, 2*time.Second)
	if len(reqs) != 5 {
		t.Fatalf("len = %d", len(reqs))
	}
	if reqs[0].Text != "Q" || reqs[0].Origin != quarkgl.V3(-2, 5, 0) || reqs[0].Scale != quarkgl.Splat(1) {
		t.Fatalf("big char = %+v", reqs[0])
	}
	if reqs[1].Text != c.Caption() || reqs[1].Advance != quarkgl.V3(1.2, 0, 0) {
		t.Fatalf("caption = %+v", reqs[1])
	}
	if reqs[2].Text != c.Preview() || reqs[2].Color != quarkgl.RGBf(0.6, 0.6, 0.6) {
		t.Fatalf("preview = %+v", reqs[2])
	}
	if reqs[3].Orientation != quarkgl.QuatRotateY(1) {
		t.Fatalf("spin = %+v, want 1 rad about Y", reqs[3].Orientation)
	}
	if reqs[4].Text != c.Progress() || reqs[4].Origin != quarkgl.V3(-8, -3, 0) {
		t.Fatalf("progress = %+v", reqs[4])
	}

	strokes := c.Requests(tinytext.Strokes, 0)
	if want := quarkgl.V3(4, 7, 1).Mul(0.3); strokes[1].Scale != want {
		t.Fatalf("stroke caption scale = %v, want %v", strokes[1].Scale, want)
	}
}

func TestRing(t *testing.T) {
	cubes := ring(10, 25)
	if len(cubes) != 10 {
		t.Fatalf("len = %d", len(cubes))
	}
	if p := cubes[0].pos; p.X != 25 || p.Y != 5 || p.Z != 0 {
		t.Fatalf("first cube at %v", p)
	}
	if cubes[0].color == cubes[5].color {
		t.Fatal("hues should differ around the ring")
	}
}
