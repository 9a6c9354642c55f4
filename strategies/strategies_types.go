package strategies

import (
	"errors"

	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/signal"
)

// ErrStrategyNotFound returned when a configured strategy name has no
// registered constructor
var ErrStrategyNotFound = errors.New("strategy not found")

// Handler is the contract every strategy variant implements. OnSignal must
// only consult bars the handler has already streamed; it is called once per
// bar in ascending order
type Handler interface {
	Name() string
	// WarmupPeriod is the number of bars that must precede the first bar
	// with a defined indicator reading
	WarmupPeriod() int64
	OnSignal(d *data.Handler) (signal.Signal, error)
}
