package base

import "errors"

var (
	// ErrNilData returned when a strategy is evaluated without a data handler
	ErrNilData = errors.New("received nil data handler")
	// ErrComputationFault returned when an indicator reading is NaN after its
	// warm-up period, e.g. CCI over a flat window. The engine recovers this
	// per bar by treating the strategy's signal as Hold
	ErrComputationFault = errors.New("indicator computation fault")
)
