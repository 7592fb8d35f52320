package entity

// Symbol is one of the two play markers.
type Symbol int

const (
	// SymbolNone is the distinguished invalid value for unparseable input.
	SymbolNone Symbol = iota
	SymbolCross
	SymbolCircle
)

var symbolNames = map[Symbol]string{
	SymbolCross:  "Cross",
	SymbolCircle: "Circle",
}

var symbolValues = map[string]Symbol{
	"Cross":  SymbolCross,
	"Circle": SymbolCircle,
}

// ParseSymbol - maps a wire name to a Symbol; anything unrecognized becomes SymbolNone.
func ParseSymbol(value string) Symbol {
	symbol, ok := symbolValues[value]
	if !ok {
		return SymbolNone
	}

	return symbol
}

func (that Symbol) String() string {
	name, ok := symbolNames[that]
	if !ok {
		return ""
	}

	return name
}

func (that Symbol) IsValid() bool {
	_, ok := symbolNames[that]
	return ok
}

// Opponent returns the other symbol.
func (that Symbol) Opponent() Symbol {
	switch that {
	case SymbolCross:
		return SymbolCircle
	case SymbolCircle:
		return SymbolCross
	default:
		return SymbolNone
	}
}

func (that Symbol) MarshalJSON() ([]byte, error) {
	return []byte(`"` + that.String() + `"`), nil
}
