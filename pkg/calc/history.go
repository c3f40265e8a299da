package calc

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/fraccalc/pkg/fixedpoint"
)

const DefaultHistorySize = 50

type Entry struct {
	Expression string
	Result     Result
	Time       time.Time
}

// History is a bounded list of evaluated entries, oldest first.
type History struct {
	size    int
	entries []Entry
	mu      sync.Mutex
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}

	return &History{size: size}
}

func (h *History) Add(entry Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, entry)
	if len(h.entries) > h.size {
		h.entries = append(h.entries[:0:0], h.entries[len(h.entries)-h.size:]...)
	}
}

func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Entry(nil), h.entries...)
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) Clear() {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()
}

func (h *History) Values() fixedpoint.Slice {
	entries := h.Entries()
	values := make(fixedpoint.Slice, 0, len(entries))
	for _, entry := range entries {
		values = append(values, entry.Result.Value)
	}
	return values
}

type Stats struct {
	Count     int
	Integers  int
	Negatives int
	Sum       fixedpoint.Value
	Avg       fixedpoint.Value
	Min       fixedpoint.Value
	Max       fixedpoint.Value
}

// Stats summarizes the results held in the history. It fails with
// fixedpoint.ErrOverflow when the results do not sum within range.
func (h *History) Stats() (Stats, error) {
	values := h.Values()
	if len(values) == 0 {
		return Stats{}, nil
	}

	sum, err := fixedpoint.SumChecked(values)
	if err != nil {
		return Stats{}, errors.Wrapf(err, "sum of %d results", len(values))
	}

	stats := Stats{
		Count:     len(values),
		Integers:  len(values.Filter(fixedpoint.IntegerTester)),
		Negatives: len(values.Filter(fixedpoint.NegativeTester)),
		Sum:       sum,
		Avg:       sum.Div(fixedpoint.NewFromInt(int64(len(values)))),
		Min:       values[0],
		Max:       values[0],
	}

	for _, v := range values[1:] {
		stats.Min = fixedpoint.Min(stats.Min, v)
		stats.Max = fixedpoint.Max(stats.Max, v)
	}

	return stats, nil
}
