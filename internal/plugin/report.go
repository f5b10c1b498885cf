package plugin

import "tempo/internal/logging"

// Item is one structured finding surfaced to the host: a plugin-identifying
// prefix, a message, and an optional wrapped cause.
type Item struct {
	Plugin  string
	Message string
	Cause   error
}

// Reporter receives plugin findings. Hosts usually forward them to their own
// diagnostics channel.
type Reporter interface {
	Warn(Item)
	Error(Item)
}

// DefaultReporter logs findings through the process logger. Used whenever
// the host wires no reporting channel of its own.
func DefaultReporter() Reporter { return slogReporter{} }

type slogReporter struct{}

func (slogReporter) Warn(it Item)  { logging.L().Warn(it.Message, attrs(it)...) }
func (slogReporter) Error(it Item) { logging.L().Error(it.Message, attrs(it)...) }

func attrs(it Item) []any {
	kv := []any{"plugin", it.Plugin}
	if it.Cause != nil {
		kv = append(kv, "cause", it.Cause)
	}
	return kv
}
