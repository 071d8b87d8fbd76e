package runtime

import (
	"sync"

	"github.com/aretw0/splitcalc/pkg/domain"
)

// latest tracks the most recent value of each input.
// A slot stays unset until its channel emits for the first time, even if
// that first value is an absent bill or an empty tip.
type latest struct {
	mu sync.Mutex

	bill     domain.Bill
	tip      domain.TipSelection
	split    int
	hasBill  bool
	hasTip   bool
	hasSplit bool
}

// snapshot is what a recompute sees.
type snapshot struct {
	bill  domain.Bill
	tip   domain.TipSelection
	split int
}

func (l *latest) setBill(b domain.Bill) (snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bill, l.hasBill = b, true
	return l.readyLocked()
}

func (l *latest) setTip(t domain.TipSelection) (snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tip, l.hasTip = t, true
	return l.readyLocked()
}

func (l *latest) setSplit(n int) (snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.split, l.hasSplit = n, true
	return l.readyLocked()
}

func (l *latest) readyLocked() (snapshot, bool) {
	if !l.hasBill || !l.hasTip || !l.hasSplit {
		return snapshot{}, false
	}
	return snapshot{bill: l.bill, tip: l.tip, split: l.split}, true
}
