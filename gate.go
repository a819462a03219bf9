package beacon

import "sync"

// TransferGate guards a reporter's single in-flight transfer.
type TransferGate struct {
	mu sync.Mutex
}

// NewTransferGate creates a new, unheld gate.
func NewTransferGate() *TransferGate {
	return &TransferGate{}
}

// TryAcquire reports whether the gate was free and is now held.
func (g *TransferGate) TryAcquire() bool {
	return g.mu.TryLock()
}

// Release frees the gate. Must follow a successful TryAcquire; the
// transfer goroutine that completes the delivery calls it exactly once.
func (g *TransferGate) Release() {
	g.mu.Unlock()
}
