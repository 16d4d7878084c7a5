package stream

// Type is a control block type.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown = Type{}
	Small   = Type{0b_1000_0000, 0b_0111_1111, "s"}
	Integer = Type{0b_0100_0000, 0b_0000_0111, "i"}
	Terms   = Type{0b_0010_0000, 0b_0000_0011, "t"}
	Special = Type{0b_0001_0000, 0b_0000_0011, "x"}

	Types = types{
		Small,
		Integer,
		Terms,
		Special,
	}
)

// Special block values.
const (
	specialNaN byte = iota
	specialPosInf
	specialNegInf
	specialNegZero
)

const (
	// maxTerms is the largest number of terms in a Terms block.
	maxTerms = 4

	// maxInteger is the largest magnitude stored as an integer. Every
	// integer up to it is exactly representable as a float64.
	maxInteger = 1 << 53

	// smallLimit bounds the magnitude of integers stored in a Small block.
	smallLimit = 63
)
