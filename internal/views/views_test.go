package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutHeaderMatchesRenderedText(t *testing.T) {
	data := HeaderData{Title: "kapaka", Date: "الاثنين, فبراير 9", Accent: AccentColor("222")}
	spans := LayoutHeader(data)
	if spans.Menu.Start >= spans.Menu.End || spans.Info.Start <= spans.Menu.End {
		t.Fatalf("unexpected spans: %+v", spans)
	}
	plain := strings.Join(headerSegments(data), headerGap)
	if lipgloss.Width(RenderHeader(data)) != lipgloss.Width(plain) {
		t.Fatalf("styled header width differs from plain layout")
	}
	if spans.Info.End != lipgloss.Width(plain) {
		t.Fatalf("info span should end the header: %+v width=%d", spans.Info, lipgloss.Width(plain))
	}
	if !spans.Menu.Contains(spans.Menu.Start) || spans.Menu.Contains(spans.Menu.End) {
		t.Fatalf("span bounds should be half-open: %+v", spans.Menu)
	}
}

func TestAccentColorFallback(t *testing.T) {
	if AccentColor("not-a-hue") != AccentColor("222") {
		t.Fatal("expected invalid hue to use the default accent")
	}
	if AccentColor("5") == AccentColor("160") {
		t.Fatal("expected distinct hues to produce distinct accents")
	}
	if !strings.HasPrefix(string(AccentColor("40")), "#") {
		t.Fatalf("expected hex color, got %q", AccentColor("40"))
	}
}

func TestTruncateCountsWideRunes(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected truncate: %q", got)
	}
	got := Truncate("日本語のタスク", 6)
	if lipgloss.Width(got) > 6 || !strings.HasSuffix(got, "…") {
		t.Fatalf("unexpected wide truncate: %q", got)
	}
	if Truncate("x", 0) != "" {
		t.Fatal("expected empty string for zero width")
	}
}

func TestRenderMenuMarksActiveButton(t *testing.T) {
	out := RenderMenu(MenuData{Buttons: []ThemeButtonData{
		{Name: "Ocean", Hue: "222"},
		{Name: "Mint", Hue: "160", Active: true},
	}})
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[MenuButtonRow(0)], "○") || !strings.Contains(lines[MenuButtonRow(0)], "Ocean") {
		t.Fatalf("unexpected first button row: %q", lines[MenuButtonRow(0)])
	}
	if !strings.Contains(lines[MenuButtonRow(1)], "●") || !strings.Contains(lines[MenuButtonRow(1)], "Mint") {
		t.Fatalf("unexpected second button row: %q", lines[MenuButtonRow(1)])
	}
}

func TestRenderTaskPanelWelcomeAndRows(t *testing.T) {
	welcome := RenderTaskPanel(TaskPanelData{InputView: "task> ", ShowWelcome: true})
	if !strings.Contains(welcome, "Welcome!") {
		t.Fatalf("expected welcome note: %q", welcome)
	}
	list := RenderTaskPanel(TaskPanelData{
		InputView: "task> ",
		Tasks: []TaskRowData{
			{Text: "Call Sam", Selected: true},
			{Text: "Buy milk", Complete: true},
		},
	})
	if strings.Contains(list, "Welcome!") {
		t.Fatalf("welcome note should be hidden: %q", list)
	}
	if strings.Index(list, "Call Sam") > strings.Index(list, "Buy milk") {
		t.Fatalf("rows rendered out of order: %q", list)
	}
	if !strings.Contains(list, "[✓]") {
		t.Fatalf("expected completed marker: %q", list)
	}
}

func TestRenderAppOrder(t *testing.T) {
	out := RenderApp(AppData{Header: "HEAD", Menu: "MENU", Body: "BODY", Notification: "NOTE", StatusLine: "ok", Footer: "keys"})
	lines := strings.Split(out, "\n")
	if lines[0] != "HEAD" || lines[1] != "MENU" || lines[2] != "BODY" || lines[3] != "NOTE" {
		t.Fatalf("unexpected order: %#v", lines)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if RenderMarkdown("   ", 40) != "" {
		t.Fatal("expected empty markdown output")
	}
	if !strings.Contains(RenderMarkdown(InfoMarkdown, 60), "kapaka") {
		t.Fatal("expected rendered info to mention kapaka")
	}
}
