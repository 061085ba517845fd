package state

import "testing"

func visible(recipes, history int) Visible {
	v := Visible{Recipes: []string{}, History: []string{}}
	for i := 0; i < recipes; i++ {
		v.Recipes = append(v.Recipes, "recipe")
	}
	for i := 0; i < history; i++ {
		v.History = append(v.History, "history")
	}
	return v
}

func TestMoveUpCrossesIntoOtherPane(t *testing.T) {
	s := Selection{Pane: PaneRecipes, Highlight: 0}
	s = Move(s, -1, visible(3, 2))
	if s.Pane != PaneHistory || s.Highlight != 1 {
		t.Fatalf("expected History/1, got %s/%d", s.Pane, s.Highlight)
	}
}

func TestMoveDownCrossesIntoOtherPane(t *testing.T) {
	s := Selection{Pane: PaneRecipes, Highlight: 2}
	s = Move(s, 1, visible(3, 2))
	if s.Pane != PaneHistory || s.Highlight != 0 {
		t.Fatalf("expected History/0, got %s/%d", s.Pane, s.Highlight)
	}
}

func TestMoveWrapsWhenOtherHidden(t *testing.T) {
	s := Selection{Pane: PaneRecipes, Highlight: 0, HideOther: true}
	s = Move(s, -1, visible(3, 2))
	if s.Pane != PaneRecipes || s.Highlight != 2 {
		t.Fatalf("expected Recipes/2, got %s/%d", s.Pane, s.Highlight)
	}
	s = Move(s, 1, visible(3, 2))
	if s.Pane != PaneRecipes || s.Highlight != 0 {
		t.Fatalf("expected Recipes/0, got %s/%d", s.Pane, s.Highlight)
	}
}

func TestMoveWrapsWhenOtherEmpty(t *testing.T) {
	s := Selection{Pane: PaneHistory, Highlight: 1}
	s = Move(s, 1, visible(0, 2))
	if s.Pane != PaneHistory || s.Highlight != 0 {
		t.Fatalf("expected History/0, got %s/%d", s.Pane, s.Highlight)
	}
}

func TestMoveWithinPane(t *testing.T) {
	s := Selection{Pane: PaneHistory, Highlight: 1}
	s = Move(s, 1, visible(2, 4))
	if s.Pane != PaneHistory || s.Highlight != 2 {
		t.Fatalf("expected History/2, got %s/%d", s.Pane, s.Highlight)
	}
	s = Move(s, -1, visible(2, 4))
	if s.Highlight != 1 {
		t.Fatalf("expected 1, got %d", s.Highlight)
	}
}

func TestMoveOnEmptyListsKeepsNoSelection(t *testing.T) {
	for _, delta := range []int{-1, 1} {
		s := Move(New(), delta, visible(0, 0))
		if s.Highlight != -1 {
			t.Fatalf("delta %d: expected -1, got %d", delta, s.Highlight)
		}
	}
}

func TestMoveFromNoSelection(t *testing.T) {
	s := Move(New(), 1, visible(2, 2))
	if s.Pane != PaneRecipes || s.Highlight != 0 {
		t.Fatalf("expected Recipes/0, got %s/%d", s.Pane, s.Highlight)
	}
}

func TestNormalizeClampsHighlight(t *testing.T) {
	s := Normalize(Selection{Pane: PaneHistory, Highlight: 5}, visible(0, 3))
	if s.Highlight != 2 {
		t.Fatalf("expected clamp to 2, got %d", s.Highlight)
	}
	s = Normalize(Selection{Pane: PaneHistory, Highlight: 1}, visible(4, 0))
	if s.Highlight != -1 {
		t.Fatalf("expected -1 for empty pane, got %d", s.Highlight)
	}
}
