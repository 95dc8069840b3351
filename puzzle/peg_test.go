package puzzle

import "testing"

func TestPegPushPop(t *testing.T) {
	g := DefaultGeometry()
	peg := NewPeg(PegB, "B", 400, g)

	if _, ok := peg.Pop(); ok {
		t.Fatal("pop from empty peg succeeded")
	}

	big := NewDisc(2, 400, 580, g)
	small := NewDisc(0, 400, 560, g)
	peg.Push(big)
	peg.Push(small)

	if top, _ := peg.Top(); top != small {
		t.Error("top should be the last pushed disc")
	}
	if !peg.Ordered() {
		t.Error("expected ordered stack")
	}

	d, ok := peg.Pop()
	if !ok || d != small {
		t.Fatal("pop returned wrong disc")
	}
	if peg.Len() != 1 {
		t.Errorf("len %d after pop", peg.Len())
	}

	peg.Push(NewDisc(5, 400, 560, g))
	if peg.Ordered() {
		t.Error("wider disc on top should break ordering")
	}
}

func TestPegDiscsReturnsCopy(t *testing.T) {
	g := DefaultGeometry()
	peg := NewPeg(PegA, "A", 200, g)
	peg.Push(NewDisc(0, 200, 580, g))

	discs := peg.Discs()
	discs[0] = nil
	if top, _ := peg.Top(); top == nil {
		t.Error("mutating Discs() result changed the peg")
	}
}
