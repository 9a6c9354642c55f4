package signal

import "time"

// Direction is the discrete per-bar decision a strategy emits
type Direction int8

const (
	// Hold takes no action for the bar
	Hold Direction = iota
	// Buy opens or maintains a long position
	Buy
	// Sell closes a long position
	Sell
)

// Signal is one strategy's decision for one bar
type Signal struct {
	Offset    int64     `json:"offset"`
	Time      time.Time `json:"time"`
	Strategy  string    `json:"strategy"`
	Direction Direction `json:"direction"`
	// Reading is the indicator value the decision was made on, kept for
	// observability and feature export
	Reading float64 `json:"reading"`
	Reason  string  `json:"reason,omitempty"`
}
