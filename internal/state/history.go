package state

type HistoryStore interface {
	Lines() []string
	SetLines([]string)
	Err() error
	SetErr(error)
	Loaded() bool
}

type historyStore struct {
	lines  []string
	err    error
	loaded bool
}

func NewHistoryStore() HistoryStore {
	return &historyStore{}
}

func (s *historyStore) Lines() []string {
	return cloneLines(s.lines)
}

// SetLines replaces the history and marks the store loaded.
func (s *historyStore) SetLines(lines []string) {
	s.lines = cloneLines(lines)
	s.loaded = true
}

func (s *historyStore) Err() error {
	return s.err
}

func (s *historyStore) SetErr(err error) {
	s.err = err
}

func (s *historyStore) Loaded() bool {
	return s.loaded
}

func cloneLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	dup := make([]string, len(lines))
	copy(dup, lines)
	return dup
}
