package data

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NewHandler validates the bar series and wraps it in a Handler. The series
// must be non-empty and in strictly ascending time order
func NewHandler(bars []Bar) (*Handler, error) {
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			return nil, fmt.Errorf("%w: bar %v at %s does not follow bar %v at %s",
				ErrOutOfOrder, i, bars[i].Time, i-1, bars[i-1].Time)
		}
	}
	return &Handler{stream: bars}, nil
}

// Validate confirms the stream can cover the supplied warm-up requirement
func (h *Handler) Validate(minBars int64) error {
	if int64(len(h.stream)) <= minBars {
		return fmt.Errorf("%w: have %v bars, need more than %v",
			ErrInsufficientData, len(h.stream), minBars)
	}
	return nil
}

// Next returns the next bar in the stream and advances the offset
func (h *Handler) Next() (Bar, bool) {
	if h.offset >= int64(len(h.stream)) {
		return Bar{}, false
	}
	h.latest = &h.stream[h.offset]
	h.offset++
	return *h.latest, true
}

// Latest returns the most recently streamed bar
func (h *Handler) Latest() *Bar {
	return h.latest
}

// Offset returns how many bars have been streamed
func (h *Handler) Offset() int64 {
	return h.offset
}

// Len returns the total number of bars held
func (h *Handler) Len() int64 {
	return int64(len(h.stream))
}

// History returns every bar streamed so far
func (h *Handler) History() []Bar {
	return h.stream[:h.offset]
}

// Reset rewinds the handler so the same series can be replayed
func (h *Handler) Reset() {
	h.offset = 0
	h.latest = nil
}

// StreamClose returns close prices up to and including the current offset
func (h *Handler) StreamClose() []decimal.Decimal {
	resp := make([]decimal.Decimal, h.offset)
	for i := range resp {
		resp[i] = h.stream[i].Close
	}
	return resp
}

// StreamHigh returns high prices up to and including the current offset
func (h *Handler) StreamHigh() []decimal.Decimal {
	resp := make([]decimal.Decimal, h.offset)
	for i := range resp {
		resp[i] = h.stream[i].High
	}
	return resp
}

// StreamLow returns low prices up to and including the current offset
func (h *Handler) StreamLow() []decimal.Decimal {
	resp := make([]decimal.Decimal, h.offset)
	for i := range resp {
		resp[i] = h.stream[i].Low
	}
	return resp
}

// StreamTypical returns (high+low+close)/3 up to and including the current
// offset, the input series for CCI
func (h *Handler) StreamTypical() []decimal.Decimal {
	three := decimal.NewFromInt(3)
	resp := make([]decimal.Decimal, h.offset)
	for i := range resp {
		b := &h.stream[i]
		resp[i] = b.High.Add(b.Low).Add(b.Close).Div(three)
	}
	return resp
}
