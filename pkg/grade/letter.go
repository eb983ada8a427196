package grade

// Grade is a single letter grade.
type Grade rune

const (
	A Grade = 'A'
	B Grade = 'B'
	C Grade = 'C'
	D Grade = 'D'
	F Grade = 'F'
)

// Letter maps an average to a letter grade. Each threshold is inclusive.
// NaN falls through to F.
func Letter(average float64) Grade {
	switch {
	case average >= 90:
		return A
	case average >= 80:
		return B
	case average >= 70:
		return C
	case average >= 60:
		return D
	default:
		return F
	}
}

func (g Grade) String() string {
	return string(rune(g))
}

func (g Grade) MarshalText() ([]byte, error) {
	return []byte(string(rune(g))), nil
}
