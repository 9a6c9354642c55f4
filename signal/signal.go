package signal

import "fmt"

// Score maps the direction onto the ensemble voting scale
func (d Direction) Score() float64 {
	switch d {
	case Buy:
		return 1
	case Sell:
		return -1
	default:
		return 0
	}
}

// String implements fmt.Stringer
func (d Direction) String() string {
	switch d {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	case Hold:
		return "HOLD"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int8(d))
	}
}

// MarshalJSON renders the direction as its string name
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}
