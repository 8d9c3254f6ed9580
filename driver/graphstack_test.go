package driver

import "testing"

func TestGraphStackDedupByFrameSequence(t *testing.T) {
	gs := newGraphStack()

	s1 := newStack()
	s1.Push(Frame{State: 1})
	if !gs.Append(s1) {
		t.Fatal("first append must succeed")
	}

	s2 := newStack()
	s2.Push(Frame{State: 1})
	if gs.Append(s2) {
		t.Fatal("a stack with an identical state sequence must be deduplicated")
	}
	if gs.Len() != 1 {
		t.Fatalf("expected 1 stack after dedup, got %v", gs.Len())
	}

	s3 := newStack()
	s3.Push(Frame{State: 2})
	if !gs.Append(s3) {
		t.Fatal("a stack with a different state sequence must be appended")
	}
	if gs.Len() != 2 {
		t.Fatalf("expected 2 stacks, got %v", gs.Len())
	}
}

func TestGraphStackAppendDuringIterationIsVisible(t *testing.T) {
	gs := newGraphStack()
	s := newStack()
	gs.Append(s)

	for i := 0; i < gs.Len(); i++ {
		if i == 0 {
			grown := gs.At(0).Clone()
			grown.Push(Frame{State: 9})
			gs.Append(grown)
		}
	}

	if gs.Len() != 2 {
		t.Fatalf("a stack appended while iterating must be visible to the same scan, got len %v", gs.Len())
	}
}
