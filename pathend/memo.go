package pathend

import (
	"sync"

	"github.com/velanor/signoff/timing"
)

// crprMemo is the per-instance pessimism-removal cache: "unset" and
// "computed" are distinct states, and once forced the value is stable
// for the instance's lifetime. Forcing is guarded with per-instance
// exclusion so concurrent first reads converge on one computation.
type crprMemo struct {
	mu    sync.Mutex
	valid bool
	value timing.Crpr
}

// force returns the cached value, computing it on first use.
func (m *crprMemo) force(compute func() timing.Crpr) timing.Crpr {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.valid {
		m.value = compute()
		m.valid = true
	}

	return m.value
}

// set installs a precomputed value, marking the memo valid.
func (m *crprMemo) set(v timing.Crpr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = v
	m.valid = true
}

// snapshot returns the current value and whether it has been forced.
func (m *crprMemo) snapshot() (timing.Crpr, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.value, m.valid
}
