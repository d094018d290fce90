package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if v, ok := AddOverflowSafe(1, 2); !ok || v != 3 {
		t.Fatalf("AddOverflowSafe(1,2) = %d, %v", v, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if v, ok := MulOverflowSafe(0, math.MaxInt); !ok || v != 0 {
		t.Fatalf("MulOverflowSafe(0,max) = %d, %v", v, ok)
	}
	if v, ok := MulOverflowSafe(7, 6); !ok || v != 42 {
		t.Fatalf("MulOverflowSafe(7,6) = %d, %v", v, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2, 3); ok {
		t.Fatalf("expected overflow")
	}
}

func TestCheckArrayBounds(t *testing.T) {
	if err := CheckArrayBounds(100, 10, 10); err != nil {
		t.Fatalf("exact fit rejected: %v", err)
	}
	if err := CheckArrayBounds(100, 11, 10); err == nil {
		t.Fatalf("expected bounds error")
	}
	if err := CheckArrayBounds(100, -1, 10); err == nil {
		t.Fatalf("expected negative count error")
	}
	if err := CheckArrayBounds(100, math.MaxInt, 2); err == nil {
		t.Fatalf("expected overflow error")
	}
	if err := CheckArrayBounds(0, 0, 10); err != nil {
		t.Fatalf("zero count should always fit: %v", err)
	}
}
