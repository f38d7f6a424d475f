// SPDX-License-Identifier: MIT

package event

// Ledger records the source files already used in one instantiation pass.
// The zero value is not usable; call NewLedger.
type Ledger struct {
	used  map[string]struct{}
	order []string
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{used: make(map[string]struct{})}
}

// Add records path. Adding twice keeps one entry.
func (l *Ledger) Add(path string) {
	if _, ok := l.used[path]; ok {
		return
	}
	l.used[path] = struct{}{}
	l.order = append(l.order, path)
}

// Contains reports whether path was used.
func (l *Ledger) Contains(path string) bool {
	_, ok := l.used[path]
	return ok
}

// Len returns the number of distinct files used.
func (l *Ledger) Len() int { return len(l.order) }

// Files returns the used files in first-use order.
func (l *Ledger) Files() []string { return append([]string(nil), l.order...) }
