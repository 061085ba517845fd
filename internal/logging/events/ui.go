package events

import "github.com/cescofry/recp/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(pane string, highlight int) {
	logging.Trace("selection.cursor", map[string]interface{}{"pane": pane, "highlight": highlight})
}

func (UITracer) PaneSwitch(from, to string) {
	logging.Trace("selection.pane", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Mode(mode string) {
	logging.Trace("selection.mode", map[string]interface{}{"mode": mode})
}

func (UITracer) Toggle(name string, value bool) {
	logging.Trace("selection.toggle", map[string]interface{}{"name": name, "value": value})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (CommandTracer) Queue(action, command string) {
	logging.Trace("command.queue", map[string]interface{}{"action": action, "command": command})
}

func (CommandTracer) Run(action, command string) {
	logging.Trace("command.run", map[string]interface{}{"action": action, "command": command})
}

func (CommandTracer) Result(action string, exitCode int, err error) {
	payload := map[string]interface{}{"action": action, "exit": exitCode}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
