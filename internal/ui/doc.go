// Package ui contains the Bubble Tea program behind recp: two bordered panes
// (recipes and shell history), a status bar, and modal prompts.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, the history load).
//   - Key presses are translated into internal/ui/state keys and run through
//     the pure selection state machine against the rows currently on screen.
//     The intent it returns is applied immediately: save and delete go
//     through the dispatcher, which writes the config file before Update
//     returns.
//
// State ownership:
//   - Selection state (mode, pane, highlight, search text, prompts, pending
//     command) lives in internal/ui/state.Selection and only changes inside
//     Update.
//   - Recipes are owned by the config store; history lines are loaded once,
//     asynchronously, into an internal/state.HistoryStore.
//
// Nothing is executed while the program runs. When the selection ends with a
// pending command, Update returns tea.Quit and the caller reads
// Model.Outcome after Program.Run returns.
package ui
