package events

import "github.com/cescofry/recp/internal/logging"

type HistoryTracer struct{}

var History = HistoryTracer{}

func (HistoryTracer) Loaded(shell, file string, recent, total int) {
	logging.Trace("history.loaded", map[string]interface{}{
		"shell":  shell,
		"file":   file,
		"recent": recent,
		"total":  total,
	})
}

func (HistoryTracer) RecentUnavailable(shell string, err error) {
	payload := map[string]interface{}{"shell": shell}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("history.recent.unavailable", payload)
}

func (HistoryTracer) Degraded(err error) {
	if err == nil {
		return
	}
	logging.Trace("history.degraded", map[string]interface{}{"error": err.Error()})
}
