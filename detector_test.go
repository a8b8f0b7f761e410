package spatialgrid

import (
	"math/rand/v2"
	"testing"
)

type detectCase struct {
	name   string
	a      Shape
	pa     Vec2
	b      Shape
	pb     Vec2
	expect bool
}

func runDetectCases(t *testing.T, tests []detectCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCollision(tt.a, tt.pa, tt.b, tt.pb); got != tt.expect {
				t.Errorf("IsCollision(%T at %v, %T at %v) = %v, want %v", tt.a, tt.pa, tt.b, tt.pb, got, tt.expect)
			}
			if got := IsCollision(tt.b, tt.pb, tt.a, tt.pa); got != tt.expect {
				t.Errorf("swapped IsCollision = %v, want %v", got, tt.expect)
			}
		})
	}
}

var unitRect = MakeRectangle(Vec2{-10, -10}, Vec2{10, 10})

func TestCircleCircle(t *testing.T) {
	a := MakeCircle(10)
	b := MakeCircle(6)
	runDetectCases(t, []detectCase{
		{"overlapping", a, Vec2{0, 0}, b, Vec2{10, 0}, true},
		{"concentric", a, Vec2{5, 5}, b, Vec2{5, 5}, true},
		{"touching", a, Vec2{0, 0}, b, Vec2{16, 0}, false},
		{"just inside", a, Vec2{0, 0}, b, Vec2{16 - 1e-6, 0}, true},
		{"apart", a, Vec2{0, 0}, b, Vec2{0, 40}, false},
	})
}

func TestRectCircle(t *testing.T) {
	c := MakeCircle(5)
	runDetectCases(t, []detectCase{
		{"centre inside", unitRect, Vec2{0, 0}, c, Vec2{0, 0}, true},
		{"edge overlap", unitRect, Vec2{0, 0}, c, Vec2{14, 0}, true},
		{"edge touching", unitRect, Vec2{0, 0}, c, Vec2{15, 0}, false},
		{"corner overlap", unitRect, Vec2{0, 0}, c, Vec2{13, 13}, true},
		{"corner gap", unitRect, Vec2{0, 0}, c, Vec2{14, 14}, false},
		{"offset rect", unitRect, Vec2{100, 100}, c, Vec2{100, 88}, true},
	})
}

func TestRectRect(t *testing.T) {
	runDetectCases(t, []detectCase{
		{"overlapping", unitRect, Vec2{0, 0}, unitRect, Vec2{15, 5}, true},
		{"sharing an edge", unitRect, Vec2{0, 0}, unitRect, Vec2{20, 0}, true},
		{"sharing a corner", unitRect, Vec2{0, 0}, unitRect, Vec2{20, 20}, true},
		{"separated on x", unitRect, Vec2{0, 0}, unitRect, Vec2{20.001, 0}, false},
		{"separated on y", unitRect, Vec2{0, 0}, unitRect, Vec2{0, -21}, false},
		{"40 apart", unitRect, Vec2{100, 100}, unitRect, Vec2{140, 100}, false},
	})
}

func TestLineCircle(t *testing.T) {
	l := MakeLine(Vec2{0, 0}, Vec2{100, 0})
	c := MakeCircle(10)
	o := Vec2{0, 0}
	runDetectCases(t, []detectCase{
		{"crossing middle", l, o, c, Vec2{50, 5}, true},
		{"perpendicular distance equals radius", l, o, c, Vec2{50, 10}, true},
		{"beyond radius", l, o, c, Vec2{50, 11}, false},
		{"before start within radius", l, o, c, Vec2{-5, 0}, true},
		{"before start at radius", l, o, c, Vec2{-10, 0}, false},
		{"before start diagonal", l, o, c, Vec2{-8, 6}, false},
		{"past end within radius", l, o, c, Vec2{105, 3}, true},
		{"past end outside radius", l, o, c, Vec2{108, 7}, false},
		{"offset line", l, Vec2{0, 200}, c, Vec2{50, 195}, true},
		{"zero-length line inside", MakeLine(Vec2{3, 4}, Vec2{3, 4}), o, c, Vec2{0, 0}, true},
		{"zero-length line outside", MakeLine(Vec2{30, 0}, Vec2{30, 0}), o, c, Vec2{0, 0}, false},
	})
}

func TestLineRect(t *testing.T) {
	r := unitRect
	pr := Vec2{50, 50}
	o := Vec2{0, 0}
	runDetectCases(t, []detectCase{
		{"diagonal through", MakeLine(Vec2{0, 0}, Vec2{100, 100}), o, r, pr, true},
		{"diagonal stops short", MakeLine(Vec2{0, 0}, Vec2{30, 30}), o, r, pr, false},
		{"horizontal through", MakeLine(Vec2{0, 50}, Vec2{100, 50}), o, r, pr, true},
		{"horizontal above", MakeLine(Vec2{0, 70}, Vec2{100, 70}), o, r, pr, false},
		{"vertical along edge", MakeLine(Vec2{40, 0}, Vec2{40, 100}), o, r, pr, true},
		{"fully inside", MakeLine(Vec2{45, 50}, Vec2{55, 50}), o, r, pr, true},
		{"starts past rect", MakeLine(Vec2{70, 50}, Vec2{100, 50}), o, r, pr, false},
		{"points away", MakeLine(Vec2{30, 50}, Vec2{0, 50}), o, r, pr, false},
		{"ends inside", MakeLine(Vec2{30, 50}, Vec2{45, 50}), o, r, pr, true},
		{"offset line", MakeLine(Vec2{0, 0}, Vec2{0, 100}), Vec2{50, 0}, r, pr, true},
		{"zero-length inside", MakeLine(Vec2{50, 50}, Vec2{50, 50}), o, r, pr, true},
		{"zero-length outside", MakeLine(Vec2{0, 0}, Vec2{0, 0}), o, r, pr, false},
	})
}

func TestLineLine(t *testing.T) {
	o := Vec2{0, 0}
	runDetectCases(t, []detectCase{
		{"crossing", MakeLine(Vec2{0, 0}, Vec2{10, 10}), o, MakeLine(Vec2{0, 10}, Vec2{10, 0}), o, true},
		{"T junction", MakeLine(Vec2{0, 0}, Vec2{10, 0}), o, MakeLine(Vec2{5, 0}, Vec2{5, 10}), o, true},
		{"short of crossing", MakeLine(Vec2{0, 0}, Vec2{4, 4}), o, MakeLine(Vec2{0, 10}, Vec2{10, 0}), o, false},
		{"parallel", MakeLine(Vec2{0, 0}, Vec2{10, 0}), o, MakeLine(Vec2{0, 5}, Vec2{10, 5}), o, false},
		{"collinear overlapping", MakeLine(Vec2{0, 0}, Vec2{10, 0}), o, MakeLine(Vec2{5, 0}, Vec2{15, 0}), o, false},
		{"crossing via positions", MakeLine(Vec2{-5, 0}, Vec2{5, 0}), Vec2{100, 100}, MakeLine(Vec2{0, -5}, Vec2{0, 5}), Vec2{100, 100}, true},
	})
}

func TestIsCollisionNilShape(t *testing.T) {
	c := MakeCircle(10)
	if IsCollision(nil, Vec2{}, c, Vec2{}) {
		t.Error("nil shape a should not collide")
	}
	if IsCollision(c, Vec2{}, nil, Vec2{}) {
		t.Error("nil shape b should not collide")
	}
}

func TestIsCollisionSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	var seen [shapeKindCount][shapeKindCount]bool
	for i := 0; i < 2000; i++ {
		a, b := randomShape(rng), randomShape(rng)
		pa := Vec2{rng.Float64() * 100, rng.Float64() * 100}
		pb := Vec2{rng.Float64() * 100, rng.Float64() * 100}
		seen[a.Kind()][b.Kind()] = true
		if IsCollision(a, pa, b, pb) != IsCollision(b, pb, a, pa) {
			t.Fatalf("asymmetric result for %T%+v at %v and %T%+v at %v", a, a, pa, b, b, pb)
		}
	}
	for i := range seen {
		for j := range seen[i] {
			if !seen[i][j] {
				t.Errorf("combination %v/%v never sampled", ShapeKind(i), ShapeKind(j))
			}
		}
	}
}
