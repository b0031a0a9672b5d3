package common

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if r.Left() != 10 || r.Right() != 110 || r.Top() != 20 || r.Bottom() != 70 {
		t.Fatalf("edges = %v %v %v %v", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"touching_edges", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{30, 30, 5, 5}, false},
		{"contained", Rect{0, 0, 100, 100}, Rect{40, 40, 10, 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Fatalf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Fatalf("Intersects not symmetric")
			}
		})
	}
}

func TestHorizontalGap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want float64
	}{
		{"overlapping_spans", Rect{0, 0, 100, 10}, Rect{50, 50, 100, 10}, 0},
		{"b_right_of_a", Rect{0, 0, 100, 10}, Rect{150, 0, 50, 10}, 50},
		{"b_left_of_a", Rect{200, 0, 100, 10}, Rect{0, 0, 100, 10}, 100},
		{"touching", Rect{0, 0, 100, 10}, Rect{100, 0, 50, 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.HorizontalGap(tt.b); got != tt.want {
				t.Fatalf("HorizontalGap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampLerp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp high = %v", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("Clamp low = %v", got)
	}
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp = %v", got)
	}
}
