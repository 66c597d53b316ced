package math

import "testing"

func TestVec3Sub(t *testing.T) {
	a := Vec3{5, 2, 7}
	b := Vec3{1, 2, 3}
	got := a.Sub(b)
	want := Vec3{4, 0, 4}
	if got != want {
		t.Errorf("Vec3.Sub() = %v, want %v", got, want)
	}
}

func TestVec3XZ(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := v.XZ()
	want := Vec2{1, 3}
	if got != want {
		t.Errorf("Vec3.XZ() = %v, want %v", got, want)
	}
}

func TestClamp01(t *testing.T) {
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5) = %v, want 0", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v, want 1", got)
	}
	if got := Clamp01(0.25); got != 0.25 {
		t.Errorf("Clamp01(0.25) = %v, want 0.25", got)
	}
}

func TestSmoothstep01Endpoints(t *testing.T) {
	if got := Smoothstep01(0); got != 0 {
		t.Errorf("Smoothstep01(0) = %v, want 0", got)
	}
	if got := Smoothstep01(1); got != 1 {
		t.Errorf("Smoothstep01(1) = %v, want 1", got)
	}
	if got := Smoothstep01(0.5); got != 0.5 {
		t.Errorf("Smoothstep01(0.5) = %v, want 0.5", got)
	}
}

func TestSmoothstep01Monotone(t *testing.T) {
	prev := float32(0)
	for i := 1; i <= 100; i++ {
		v := Smoothstep01(float32(i) / 100)
		if v < prev {
			t.Fatalf("Smoothstep01 not monotone at t=%v: %v < %v", float32(i)/100, v, prev)
		}
		prev = v
	}
}

func TestRoundToInt(t *testing.T) {
	cases := []struct {
		in   float32
		want int
	}{
		{0.4, 0},
		{0.5, 1},
		{1.5, 2},
		{-0.5, -1},
		{2.0, 2},
	}
	for _, c := range cases {
		if got := RoundToInt(c.in); got != c.want {
			t.Errorf("RoundToInt(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
