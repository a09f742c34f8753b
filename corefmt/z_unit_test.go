package corefmt

import "testing"

func TestHash64Deterministic(t *testing.T) {
	a := Hash64(1, 2, 3)
	b := Hash64(1, 2, 3)
	if a != b {
		t.Fatalf("hash not deterministic: %d != %d", a, b)
	}
	if Hash64(1, 2) == Hash64(2, 1) {
		t.Fatalf("hash should be order sensitive")
	}
	if Hash64(1) == Hash64(2) {
		t.Fatalf("distinct inputs collided")
	}
}

func TestHashString(t *testing.T) {
	if HashString("uniform") != HashString("uniform") {
		t.Fatalf("string hash not deterministic")
	}
	if HashString("uniform") == HashString("linear") {
		t.Fatalf("distinct strings collided")
	}
}

func TestFloatAndInterval(t *testing.T) {
	if got := Float(0.1); got != "0.1" {
		t.Fatalf("unexpected float form: %s", got)
	}
	if got := Float(10); got != "10" {
		t.Fatalf("unexpected float form: %s", got)
	}
	if got := Interval(0, 10); got != "[0, 10]" {
		t.Fatalf("unexpected interval form: %s", got)
	}
	if got := Interval(-1.5, 2.25); got != "[-1.5, 2.25]" {
		t.Fatalf("unexpected interval form: %s", got)
	}
}
