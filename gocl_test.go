package gocl

import "testing"

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	if s.Len() != 4 {
		t.Errorf("expected length of %v to be 4, is %d", s, s.Len())
	}
	if e := s.Extend(Span{1, 5}); e != (Span{1, 7}) {
		t.Errorf("expected extended span to be (1…7), is %v", e)
	}
	if !(Span{}).IsNull() {
		t.Errorf("expected zero span to be null")
	}
	if s.String() != "(3…7)" {
		t.Errorf("unexpected span string %q", s.String())
	}
}
