package music

import "fmt"

// Fraction is a reduced rational number. Durations are fractions of a whole
// note.
type Fraction struct {
	Num int
	Den int
}

func NewFraction(num, den int) Fraction {
	f := Fraction{num, den}
	f.reduce()
	return f
}

func (f *Fraction) reduce() {
	if f.Den < 0 {
		f.Num, f.Den = -f.Num, -f.Den
	}
	g := gcd(abs(f.Num), f.Den)
	if g > 1 {
		f.Num /= g
		f.Den /= g
	}
}

func (f Fraction) Add(o Fraction) Fraction {
	return NewFraction(f.Num*o.Den+o.Num*f.Den, f.Den*o.Den)
}

// Cmp returns -1, 0 or 1 comparing f against o.
func (f Fraction) Cmp(o Fraction) int {
	l, r := f.Num*o.Den, o.Num*f.Den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

func (f Fraction) IsZero() bool { return f.Num == 0 }

func (f Fraction) String() string {
	if f.Den == 1 {
		return fmt.Sprintf("%d", f.Num)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Tuplet scales a duration by Normal/Actual: a triplet is 3/2, three notes
// in the time of two.
type Tuplet struct {
	Actual int
	Normal int
}

func (t Tuplet) IsZero() bool { return t.Actual == 0 && t.Normal == 0 }

func (t Tuplet) String() string { return fmt.Sprintf("%d/%d", t.Actual, t.Normal) }

// MaxDots is the most dots a single note carries; more has no glyph.
const MaxDots = 3

// LongestBase and ShortestBase bound the supported power-of-two bases,
// whole note through sixty-fourth.
const (
	LongestBase  = 1
	ShortestBase = 64
)

// Duration is a base length (power-of-two denominator: 1 whole, 2 half, ...)
// with optional dots and an optional tuplet ratio.
type Duration struct {
	Base   int
	Dots   int
	Tuplet Tuplet
}

// Value returns the duration as a fraction of a whole note. Each dot adds
// half of the previous total; a tuplet scales by Normal/Actual.
func (d Duration) Value() Fraction {
	num := 1<<(d.Dots+1) - 1
	den := d.Base * (1 << d.Dots)
	if !d.Tuplet.IsZero() {
		num *= d.Tuplet.Normal
		den *= d.Tuplet.Actual
	}
	return NewFraction(num, den)
}

// Validate reports whether the duration is strictly positive and expressible
// with the supported symbol set.
func (d Duration) Validate() error {
	if d.Base < LongestBase || d.Base > ShortestBase || d.Base&(d.Base-1) != 0 {
		return fmt.Errorf("base length 1/%d is not a supported power of two", d.Base)
	}
	if d.Dots < 0 || d.Dots > MaxDots {
		return fmt.Errorf("%d dots not representable", d.Dots)
	}
	if !d.Tuplet.IsZero() && (d.Tuplet.Actual < 2 || d.Tuplet.Actual > 9 || d.Tuplet.Normal < 1) {
		return fmt.Errorf("tuplet %s not representable", d.Tuplet)
	}
	return nil
}

func (d Duration) String() string {
	s := fmt.Sprintf("1/%d", d.Base)
	for i := 0; i < d.Dots; i++ {
		s += "."
	}
	if !d.Tuplet.IsZero() {
		s += " (" + d.Tuplet.String() + ")"
	}
	return s
}
