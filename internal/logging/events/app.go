package events

import "github.com/cescofry/recp/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) ConfigResolved(path string, recipes int) {
	logging.Trace("app.config", map[string]interface{}{"path": path, "recipes": recipes})
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}
