package state

import "testing"

func press(s Selection, v Visible, keys ...Key) (Selection, Intent) {
	var intent Intent
	for _, k := range keys {
		s, intent = Handle(s, k, v)
	}
	return s, intent
}

func typed(text string) []Key {
	keys := make([]Key, 0, len(text))
	for _, r := range text {
		keys = append(keys, RuneKey(r))
	}
	return keys
}

func TestSlashEntersSearchAndClears(t *testing.T) {
	s := New()
	s.Search = "old"
	s, _ = Handle(s, RuneKey('/'), Visible{})
	if s.Mode != ModeSearch || s.Search != "" {
		t.Fatalf("expected empty search mode, got %s %q", s.Mode, s.Search)
	}
	s, _ = press(s, Visible{}, typed("a/q")...)
	if s.Search != "a/q" {
		t.Fatalf("expected literal input, got %q", s.Search)
	}
}

func TestEscTogglesWithoutClearing(t *testing.T) {
	s, _ := press(New(), Visible{}, append([]Key{RuneKey('/')}, typed("ls")...)...)
	s, _ = Handle(s, Key{Kind: KeyEsc}, Visible{})
	if s.Mode != ModeAction || s.Search != "ls" {
		t.Fatalf("expected action mode with search kept, got %s %q", s.Mode, s.Search)
	}
	s, _ = Handle(s, Key{Kind: KeyEsc}, Visible{})
	if s.Mode != ModeSearch || s.Search != "ls" {
		t.Fatalf("expected search mode with search kept, got %s %q", s.Mode, s.Search)
	}
}

func TestBackspaceInBothModes(t *testing.T) {
	s := New()
	s.Search = "héllo"
	s, _ = Handle(s, Key{Kind: KeyBackspace}, Visible{})
	if s.Search != "héll" {
		t.Fatalf("expected rune removed, got %q", s.Search)
	}
	s.Mode = ModeSearch
	s, _ = press(s, Visible{}, Key{Kind: KeyBackspace}, Key{Kind: KeyBackspace}, Key{Kind: KeyBackspace}, Key{Kind: KeyBackspace}, Key{Kind: KeyBackspace})
	if s.Search != "" {
		t.Fatalf("expected empty search, got %q", s.Search)
	}
}

func TestTabSwitchesPaneAndResetsHighlight(t *testing.T) {
	s := Selection{Pane: PaneRecipes, Highlight: 2, Search: "x"}
	s, _ = Handle(s, Key{Kind: KeyTab}, visible(3, 2))
	if s.Pane != PaneHistory || s.Highlight != 0 || s.Search != "x" {
		t.Fatalf("expected History/0 with search kept, got %s/%d %q", s.Pane, s.Highlight, s.Search)
	}
	s, _ = Handle(s, Key{Kind: KeyTab}, visible(0, 2))
	if s.Pane != PaneRecipes || s.Highlight != 0 {
		t.Fatalf("expected Recipes/0 before normalising, got %s/%d", s.Pane, s.Highlight)
	}
	s = Normalize(s, visible(0, 2))
	if s.Pane != PaneRecipes || s.Highlight != -1 {
		t.Fatalf("expected Recipes/-1 for empty pane, got %s/%d", s.Pane, s.Highlight)
	}
}

func TestEnterQueuesRawCommand(t *testing.T) {
	v := Visible{History: []string{"  echo hi  ", "ls"}}
	s := Selection{Pane: PaneHistory, Highlight: 0}
	s, intent := Handle(s, Key{Kind: KeyEnter}, v)
	if intent.Kind != IntentExecute || s.Pending == nil || s.Pending.Command != "  echo hi  " {
		t.Fatalf("expected raw command queued, got %+v %+v", intent, s.Pending)
	}
	if !s.Done() {
		t.Fatalf("expected loop to end")
	}
	after, intent := Handle(s, RuneKey('q'), v)
	if intent.Kind != IntentNone || after.Quit {
		t.Fatalf("expected finished selection to ignore keys, got %+v", intent)
	}
}

func TestEnterWithoutSelectionIsIgnored(t *testing.T) {
	s, intent := Handle(New(), Key{Kind: KeyEnter}, visible(2, 2))
	if intent.Kind != IntentNone || s.Pending != nil {
		t.Fatalf("expected no pending command, got %+v", s.Pending)
	}
}

func TestActionKeysAreCaseInsensitive(t *testing.T) {
	s, _ := Handle(New(), RuneKey('h'), Visible{})
	if !s.HideOther {
		t.Fatalf("expected hide toggled")
	}
	s, _ = Handle(s, RuneKey('H'), Visible{})
	if s.HideOther {
		t.Fatalf("expected hide toggled back")
	}
	s, _ = Handle(s, RuneKey('+'), Visible{})
	if !s.ShowInfo {
		t.Fatalf("expected info toggled")
	}
	s, intent := Handle(s, RuneKey('q'), Visible{})
	if !s.Quit || intent.Kind != IntentQuit {
		t.Fatalf("expected quit")
	}
}

func TestActionKeysAreLiteralInSearch(t *testing.T) {
	s := New()
	s.Mode = ModeSearch
	s, intent := press(s, visible(1, 1), typed("qhsdc+")...)
	if s.Quit || s.HideOther || s.ShowInfo || s.Prompt != PromptNone || intent.Kind != IntentNone {
		t.Fatalf("expected no actions in search mode, got %+v", s)
	}
	if s.Search != "qhsdc+" {
		t.Fatalf("expected literal search text, got %q", s.Search)
	}
}

func TestSaveOnlyFromHistorySelection(t *testing.T) {
	v := Visible{Recipes: []string{"ls"}, History: []string{"echo hi"}}
	s, _ := Handle(Selection{Pane: PaneRecipes, Highlight: 0}, RuneKey('s'), v)
	if s.Prompt != PromptNone {
		t.Fatalf("expected save ignored on recipes pane")
	}
	s, _ = Handle(Selection{Pane: PaneHistory, Highlight: -1}, RuneKey('s'), v)
	if s.Prompt != PromptNone {
		t.Fatalf("expected save ignored without selection")
	}
	s, intent := Handle(Selection{Pane: PaneHistory, Highlight: 0}, RuneKey('S'), v)
	if s.Prompt != PromptRecipeName || s.Target != "echo hi" || intent.Kind != IntentPrompt {
		t.Fatalf("expected name prompt for echo hi, got %+v", s)
	}
}

func TestDeleteOnlyFromRecipeSelection(t *testing.T) {
	v := Visible{Recipes: []string{"ls"}, History: []string{"echo hi"}}
	s, _ := Handle(Selection{Pane: PaneHistory, Highlight: 0}, RuneKey('d'), v)
	if s.Prompt != PromptNone {
		t.Fatalf("expected delete ignored on history pane")
	}
	s, _ = Handle(Selection{Pane: PaneRecipes, Highlight: 0}, RuneKey('D'), v)
	if s.Prompt != PromptDeleteConfirm || s.Target != "ls" {
		t.Fatalf("expected delete prompt for ls, got %+v", s)
	}
}

func TestCopyQueuesTrimmedCommand(t *testing.T) {
	v := Visible{Recipes: []string{"  ls -la \n"}}
	s, intent := Handle(Selection{Pane: PaneRecipes, Highlight: 0}, RuneKey('c'), v)
	if s.Pending == nil || s.Pending.Action != ActionCopy || s.Pending.Command != "ls -la" {
		t.Fatalf("expected trimmed copy, got %+v", s.Pending)
	}
	if intent.Kind != IntentCopy || !s.Done() {
		t.Fatalf("expected copy intent ending the loop, got %+v", intent)
	}
	s, _ = Handle(New(), RuneKey('c'), v)
	if s.Pending != nil {
		t.Fatalf("expected copy ignored without selection")
	}
}

func TestInterruptQuitsFromPrompt(t *testing.T) {
	s := Selection{Prompt: PromptRecipeName, Name: "abc", Target: "ls", Mode: ModeSearch}
	s, intent := Handle(s, Key{Kind: KeyInterrupt}, Visible{})
	if !s.Quit || intent.Kind != IntentQuit || s.Prompt != PromptNone {
		t.Fatalf("expected quit from prompt, got %+v", s)
	}
}

func TestEndToEndSaveFlow(t *testing.T) {
	v := Visible{Recipes: []string{}, History: []string{"echo hi", "ls"}}
	s := New()
	keys := []Key{{Kind: KeyTab}, RuneKey('S')}
	keys = append(keys, typed("greet")...)
	keys = append(keys, Key{Kind: KeyEnter})
	s, intent := press(s, v, keys...)
	if intent.Kind != IntentSave || intent.Title != "greet" || intent.Command != "echo hi" {
		t.Fatalf("expected save of greet/echo hi, got %+v", intent)
	}
	if s.Highlight != -1 || s.Prompt != PromptNone || s.Done() {
		t.Fatalf("unexpected state after save %+v", s)
	}
}
