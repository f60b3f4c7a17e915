package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNumberedTabs(t *testing.T) {
	tabs := NumberedTabs([]string{"USA", "Netherlands"})
	if len(tabs) != 2 || tabs[0].Key != '1' || tabs[1].Key != '2' {
		t.Fatalf("NumberedTabs = %+v", tabs)
	}
	if got := TabIdxByKey(tabs, '2'); got != 1 {
		t.Errorf("TabIdxByKey('2') = %d, want 1", got)
	}
	if got := TabIdxByKey(tabs, '9'); got != -1 {
		t.Errorf("TabIdxByKey('9') = %d, want -1", got)
	}
}

func TestTabVisualWidth(t *testing.T) {
	tab := Tab{Name: "USA", Key: '1'}
	if got := TabVisualWidth(tab, true); got != len("USA")+2 {
		t.Errorf("active width = %d, want %d", got, len("USA")+2)
	}
	if got := TabVisualWidth(tab, false); got != len("USA")+2+3 {
		t.Errorf("inactive width = %d, want %d", got, len("USA")+5)
	}
}

func TestRenderTabBarWidth(t *testing.T) {
	bar := RenderTabBar(NumberedTabs([]string{"USA", "Netherlands", "South Africa"}), 1, 90)
	if w := lipgloss.Width(bar); w != 90 {
		t.Errorf("tab bar width = %d, want 90", w)
	}
}

func TestShareBarWidth(t *testing.T) {
	a := ShareBar("Mortgage", 0.2, 12, 20)
	b := ShareBar("A very long category name", 1.4, 12, 20)
	if lipgloss.Width(a) != lipgloss.Width(b) {
		t.Errorf("share bars differ in width: %d vs %d", lipgloss.Width(a), lipgloss.Width(b))
	}
}
