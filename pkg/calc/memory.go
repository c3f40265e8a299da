package calc

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/c9s/fraccalc/pkg/fixedpoint"
)

// Memory keeps the last answer so the next entry can continue from it.
type Memory struct {
	value     fixedpoint.Value
	updatedAt time.Time
	mu        sync.Mutex
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Set(value fixedpoint.Value, now time.Time) {
	m.mu.Lock()
	m.value = value
	m.updatedAt = now
	m.mu.Unlock()
}

// Get returns the stored answer and whether one has been stored.
func (m *Memory) Get() (fixedpoint.Value, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updatedAt.IsZero() {
		return fixedpoint.Zero, false
	}

	return m.value, true
}

func (m *Memory) Clear() {
	m.mu.Lock()
	m.value = fixedpoint.Zero
	m.updatedAt = time.Time{}
	m.mu.Unlock()
}

// Continue prefixes expr with the stored answer when expr starts with an
// operator, so "+2" after an answer of 3 becomes "3+2".
func (m *Memory) Continue(expr string) string {
	trimmed := strings.TrimSpace(expr)
	if len(trimmed) == 0 || !(isOperator(trimmed[0]) || trimmed[0] == 'x') {
		return expr
	}

	answer, ok := m.Get()
	if !ok {
		return expr
	}

	return answer.String() + trimmed
}

func (m *Memory) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updatedAt.IsZero() {
		return "(empty)"
	}

	var buf bytes.Buffer
	buf.WriteString(m.value.String())
	buf.WriteString(" (stored at ")
	buf.WriteString(m.updatedAt.Format(time.RFC3339))
	buf.WriteString(")")
	return buf.String()
}
