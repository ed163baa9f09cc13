package genset

import "testing"

func TestInsertContains(t *testing.T) {
	s := New(4)
	if s.Contains(2, 0) {
		t.Fatal("fresh set should not contain slot 2 at generation 0")
	}
	if !s.Insert(2, 0) {
		t.Fatal("first Insert should report true")
	}
	if !s.Contains(2, 0) {
		t.Fatal("slot 2 should be present at generation 0")
	}
	if s.Insert(2, 0) {
		t.Fatal("re-insert at same generation should report false")
	}
}

func TestGenerationAdvance(t *testing.T) {
	s := New(2)
	s.Insert(0, 5)
	if s.Contains(0, 6) {
		t.Fatal("slot inserted at generation 5 should not be present at generation 6")
	}
	if !s.Insert(0, 6) {
		t.Fatal("Insert at new generation should report true")
	}
}

func TestResetDense(t *testing.T) {
	s := New(3)
	s.Insert(0, 1)
	s.Insert(1, 1)
	if len(s.Dense()) != 2 {
		t.Fatalf("Dense() = %v, want 2 entries", s.Dense())
	}
	s.ResetDense()
	if len(s.Dense()) != 0 {
		t.Fatal("ResetDense should clear the dense worklist")
	}
	// generation stamps survive ResetDense
	if !s.Contains(0, 1) {
		t.Fatal("ResetDense must not clear generation stamps")
	}
}
