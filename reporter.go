package beacon

import (
	"errors"
	"fmt"

	"github.com/statbeam/beacon-go/adapters"
)

// ErrTransferInFlight is returned by Send when the reporter already has
// a transfer in flight. Reusing a reporter mid-transfer is a programmer
// error; create a new Reporter per event instead.
var ErrTransferInFlight = errors.New("reporter already has a transfer in flight")

// CompletionFunc receives the transfer outcome: the response body and,
// on any transport or HTTP failure, a non-nil error. There is no
// partial-success state.
type CompletionFunc func(result string, err error)

// Reporter delivers a single payload to a collection endpoint without
// blocking the caller. At most one transfer may be in flight per
// instance; each tracked event gets its own Reporter. Delivery is
// best-effort: no retry, no ordering guarantee, no cancellation.
type Reporter struct {
	httpAdapter HTTPAdapter
	logger      LoggerAdapter
	gate        *TransferGate
}

// NewReporter creates a Reporter over the given HTTP adapter. A nil
// logger falls back to a print logger at warn level.
func NewReporter(httpAdapter HTTPAdapter, logger LoggerAdapter) *Reporter {
	if logger == nil {
		logger = adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn)
	}
	return &Reporter{
		httpAdapter: httpAdapter,
		logger:      logger,
		gate:        NewTransferGate(),
	}
}

// Send dispatches the payload to the endpoint on its own goroutine and
// returns immediately. onComplete is invoked at most once, on the
// transfer goroutine, with the outcome; it may be nil, in which case
// failures are logged and dropped. Send fails fast with
// ErrTransferInFlight when a previous transfer has not completed.
func (r *Reporter) Send(endpoint, payload string, onComplete CompletionFunc) error {
	if !r.gate.TryAcquire() {
		return ErrTransferInFlight
	}

	r.logger.Debug("Dispatching event to %s", endpoint)

	go func() {
		defer r.gate.Release()

		result, err := r.deliver(endpoint, payload)
		if onComplete != nil {
			onComplete(result, err)
			return
		}
		if err != nil {
			r.logger.Error("Event delivery failed: %v", err)
		}
	}()

	return nil
}

func (r *Reporter) deliver(endpoint, payload string) (string, error) {
	resp, err := r.httpAdapter.Send(endpoint, payload, nil)
	if err != nil {
		return "", fmt.Errorf("failed to send event: %w", err)
	}
	if !resp.OK {
		return resp.Body, &HTTPError{Status: resp.Status}
	}
	return resp.Body, nil
}
