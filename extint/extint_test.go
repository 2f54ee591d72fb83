package extint

import "testing"

func TestOrdering(t *testing.T) {
	values := []ExtInt{NegInf(), Finite(-1000000000), Finite(0), Finite(1000000000), PosInf()}
	for i := 0; i < len(values)-1; i++ {
		if !values[i].Less(values[i+1]) {
			t.Errorf("expected %s < %s", values[i], values[i+1])
		}
		if values[i+1].Less(values[i]) {
			t.Errorf("did not expect %s < %s", values[i+1], values[i])
		}
	}
}

func TestEqual(t *testing.T) {
	if !Finite(3).Equal(Finite(3)) {
		t.Error("expected finite(3) == finite(3)")
	}
	if Finite(3).Equal(Finite(4)) {
		t.Error("did not expect finite(3) == finite(4)")
	}
	if !PosInf().Equal(PosInf()) {
		t.Error("expected +infinity == +infinity")
	}
	if PosInf().Equal(NegInf()) {
		t.Error("did not expect +infinity == -infinity")
	}
}

func TestNegRoundTrip(t *testing.T) {
	cases := []ExtInt{Finite(0), Finite(5), Finite(-5), PosInf(), NegInf()}
	for _, x := range cases {
		if got := x.Neg().Neg(); !got.Equal(x) {
			t.Errorf("-(-%s) = %s, want %s", x, got, x)
		}
	}
	if !PosInf().Neg().Equal(NegInf()) {
		t.Error("expected -(+infinity) == -infinity")
	}
}

func TestValueRoundTrip(t *testing.T) {
	for _, z := range []int64{-7, 0, 42} {
		v, err := Finite(z).Value()
		if err != nil {
			t.Fatalf("Finite(%d).Value() returned error: %v", z, err)
		}
		if v != z {
			t.Errorf("Finite(%d).Value() = %d", z, v)
		}
	}
	if _, err := PosInf().Value(); err == nil {
		t.Error("expected error reading Value() of +infinity")
	}
}

func TestSign(t *testing.T) {
	cases := []struct {
		x    ExtInt
		want int
	}{
		{Finite(-3), -1},
		{Finite(0), 0},
		{Finite(3), 1},
		{PosInf(), 1},
		{NegInf(), -1},
	}
	for _, c := range cases {
		if got := c.x.Sign(); got != c.want {
			t.Errorf("%s.Sign() = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestAddFiniteFinite(t *testing.T) {
	sum, err := Add(Finite(3), Finite(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sum.Equal(Finite(7)) {
		t.Errorf("3 + 4 = %s, want 7", sum)
	}
}

func TestAddCommutative(t *testing.T) {
	pairs := [][2]ExtInt{
		{Finite(3), Finite(4)},
		{PosInf(), Finite(-1)},
		{NegInf(), Finite(9)},
		{PosInf(), PosInf()},
		{NegInf(), NegInf()},
	}
	for _, p := range pairs {
		a, errA := Add(p[0], p[1])
		b, errB := Add(p[1], p[0])
		if errA != nil || errB != nil {
			t.Fatalf("unexpected error for %s + %s: %v / %v", p[0], p[1], errA, errB)
		}
		if !a.Equal(b) {
			t.Errorf("%s + %s = %s, but %s + %s = %s", p[0], p[1], a, p[1], p[0], b)
		}
	}
}

func TestAddInfinityAbsorbsFinite(t *testing.T) {
	sum, err := Add(PosInf(), Finite(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sum.Equal(PosInf()) {
		t.Errorf("+infinity + -1 = %s, want +infinity", sum)
	}
}

func TestAddOppositeInfinitiesUndefined(t *testing.T) {
	if _, err := Add(PosInf(), NegInf()); err == nil {
		t.Error("expected error adding +infinity and -infinity")
	}
	if _, err := Add(NegInf(), PosInf()); err == nil {
		t.Error("expected error adding -infinity and +infinity")
	}
}

func TestMaxMin(t *testing.T) {
	if !Max(Finite(3), Finite(7)).Equal(Finite(7)) {
		t.Error("Max(3, 7) should be 7")
	}
	if !Min(Finite(3), Finite(7)).Equal(Finite(3)) {
		t.Error("Min(3, 7) should be 3")
	}
	if !Max(Finite(3), NegInf()).Equal(Finite(3)) {
		t.Error("Max(3, -infinity) should be 3")
	}
	if !Min(Finite(3), PosInf()).Equal(Finite(3)) {
		t.Error("Min(3, +infinity) should be 3")
	}
}

func TestString(t *testing.T) {
	cases := map[ExtInt]string{
		Finite(0):  "0",
		Finite(-5): "-5",
		PosInf():   "infinity",
		NegInf():   "-infinity",
	}
	for x, want := range cases {
		if got := x.String(); got != want {
			t.Errorf("%#v.String() = %q, want %q", x, got, want)
		}
	}
}
