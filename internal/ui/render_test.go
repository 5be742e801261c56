package ui

import (
	"strings"
	"testing"

	"pixelquest/internal/engine"
)

func TestProgressBar(t *testing.T) {
	cases := []struct {
		value, total, width int
		hashes              int
	}{
		{0, 100, 10, 0},
		{70, 100, 10, 7},
		{99, 100, 10, 9},
		{150, 100, 10, 10},
		{-4, 100, 10, 0},
		{5, 0, 4, 4},
	}
	for _, c := range cases {
		bar := ProgressBar(c.value, c.total, c.width)
		if got := strings.Count(bar, "#"); got != c.hashes {
			t.Fatalf("ProgressBar(%d,%d,%d) hashes=%d, want %d (%q)", c.value, c.total, c.width, got, c.hashes, bar)
		}
		if got := strings.Count(bar, "#") + strings.Count(bar, "-"); got != c.width {
			t.Fatalf("ProgressBar width=%d, want %d", got, c.width)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(engine.State{XPTotal: 120, Level: 2, Progress: 20}, 10)
	for _, want := range []string{"Pixel Quest", "Hero Progress", "LVL 2", "120 XP TOTAL"} {
		if !strings.Contains(out, want) {
			t.Fatalf("header missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "#"); got != 2 {
		t.Fatalf("header bar hashes=%d, want 2", got)
	}
}

func TestRenderQuestCard(t *testing.T) {
	open := RenderQuestCard(engine.Quest{ID: "1", Title: "Start Your Journey", Description: "Go", XP: 50}, false)
	for _, want := range []string{"Start Your Journey", "Go", "+50 XP", LabelComplete} {
		if !strings.Contains(open, want) {
			t.Fatalf("open card missing %q:\n%s", want, open)
		}
	}
	if strings.Contains(open, LabelDone) {
		t.Fatalf("open card shows DONE")
	}

	done := RenderQuestCard(engine.Quest{ID: "2", Title: "Daily Grind", XP: 20, Completed: true}, true)
	if !strings.Contains(done, LabelDone) || !strings.Contains(done, "+20 XP") {
		t.Fatalf("done card:\n%s", done)
	}
}

func TestRenderBoardListsQuestsInOrder(t *testing.T) {
	s := engine.State{Quests: engine.DefaultQuests(), XPTotal: 70, Level: 1, Progress: 70}
	out := RenderBoard(s)
	first := strings.Index(out, "Start Your Journey")
	second := strings.Index(out, "Daily Grind")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("quests out of order:\n%s", out)
	}
	if !strings.Contains(RenderQuestList(nil, 0), "no quests") {
		t.Fatalf("empty list placeholder missing")
	}
}

func TestToggleLabel(t *testing.T) {
	if ToggleLabel(true) != "DONE" || ToggleLabel(false) != "COMPLETE" {
		t.Fatalf("unexpected toggle labels")
	}
}
