package utils

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "identical rects overlap",
			a:    NewRect(100, 100, 64, 64),
			b:    NewRect(100, 100, 64, 64),
			want: true,
		},
		{
			name: "bullet inside enemy",
			a:    NewRect(120, 130, 8, 16),
			b:    NewRect(100, 100, 64, 64),
			want: true,
		},
		{
			name: "partial overlap on corner",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(9, 9, 10, 10),
			want: true,
		},
		{
			name: "touching right edge is not a hit",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: false,
		},
		{
			name: "touching bottom edge is not a hit",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(0, 10, 10, 10),
			want: false,
		},
		{
			name: "separated horizontally",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(50, 0, 10, 10),
			want: false,
		},
		{
			name: "separated vertically",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(0, 50, 10, 10),
			want: false,
		},
		{
			name: "negative coordinates",
			a:    NewRect(-20, -20, 15, 15),
			b:    NewRect(-10, -10, 5, 5),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("a.Intersects(b) = %v, want %v", got, tt.want)
			}
			// 碰撞关系必须对称
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("b.Intersects(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Expected Right=40, got %f", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Expected Bottom=60, got %f", r.Bottom())
	}}
