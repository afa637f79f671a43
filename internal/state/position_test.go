package state

import "testing"

func TestPositionValues(t *testing.T) {
	if SlideAt(3) != SlideAt(3) || SlideAt(3) == SlideAt(4) {
		t.Fatal("slide positions must compare by index")
	}
	if Overview() != Overview() || Overview() == SlideAt(0) {
		t.Fatal("overview must be a distinct value")
	}
	if idx, ok := SlideAt(2).Index(); !ok || idx != 2 {
		t.Errorf("expected index 2, got %d %v", idx, ok)
	}
	if _, ok := Overview().Index(); ok {
		t.Error("overview has no index")
	}
	if SlideAt(1).String() != "slide 1" || Overview().String() != "overview" {
		t.Error("unexpected position strings")
	}
}
