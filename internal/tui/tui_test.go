package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mock data for testing
var mockOneliners = []string{
	"git log --oneline -20",
	"du -sh * | sort -h",
	"grep -rn TODO .",
	"tar -xzvf archive.tar.gz",
}

// fakeSink records copied text instead of touching a real clipboard.
type fakeSink struct {
	copied []string
	err    error
}

func (f *fakeSink) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func newTestModel(sink *fakeSink) model {
	ti := textinput.New()
	ti.Focus()
	return model{
		textInput: ti,
		oneliners: mockOneliners,
		filtered:  mockOneliners,
		sink:      sink,
	}
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(&fakeSink{})

	cmd := m.Init()
	if cmd == nil {
		t.Error("Init() should return a command, got nil")
	}
}

func TestModel_Update_Navigation(t *testing.T) {
	tests := []struct {
		name           string
		keys           []string
		expectedCursor int
	}{
		{"down moves cursor", []string{"down"}, 1},
		{"j moves cursor", []string{"j", "j"}, 2},
		{"up clamps at zero", []string{"up"}, 0},
		{"down clamps at last result", []string{"j", "j", "j", "j", "j"}, 3},
		{"down then up", []string{"down", "down", "up"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = newTestModel(&fakeSink{})
			for _, key := range tt.keys {
				msg := keyMsg(key)
				m, _ = m.Update(msg)
			}

			got := m.(model).cursor
			if got != tt.expectedCursor {
				t.Errorf("Expected cursor %d, got %d", tt.expectedCursor, got)
			}
		})
	}
}

func TestModel_Update_EnterCopiesSelection(t *testing.T) {
	sink := &fakeSink{}
	var m tea.Model = newTestModel(sink)

	m, _ = m.Update(keyMsg("down"))
	_, cmd := m.Update(keyMsg("enter"))

	if cmd == nil {
		t.Error("Expected quit command after successful copy, got nil")
	}
	if len(sink.copied) != 1 || sink.copied[0] != mockOneliners[1] {
		t.Errorf("Expected %q copied, got %v", mockOneliners[1], sink.copied)
	}
}

func TestModel_Update_EnterWithSinkError(t *testing.T) {
	sink := &fakeSink{err: errors.New("clipboard unavailable")}
	var m tea.Model = newTestModel(sink)

	m, cmd := m.Update(keyMsg("enter"))

	if cmd != nil {
		t.Error("Expected no quit command when copy fails")
	}
	view := m.View()
	if !strings.Contains(view, "clipboard unavailable") {
		t.Errorf("Expected error in view, got %q", view)
	}
}

func TestModel_Update_TypingFilters(t *testing.T) {
	var m tea.Model = newTestModel(&fakeSink{})

	for _, r := range "git" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	filtered := m.(model).filtered
	if len(filtered) != 1 {
		t.Fatalf("Expected 1 filtered result for 'git', got %d: %v", len(filtered), filtered)
	}
	if filtered[0] != "git log --oneline -20" {
		t.Errorf("Expected git oneliner, got %q", filtered[0])
	}
}

func TestFilterResults_EmptyQueryRestoresAll(t *testing.T) {
	m := newTestModel(&fakeSink{})
	m.filtered = nil

	m.filterResults()
	if len(m.filtered) != len(mockOneliners) {
		t.Errorf("Expected all %d oneliners, got %d", len(mockOneliners), len(m.filtered))
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(&fakeSink{})

	view := m.View()
	if !strings.Contains(view, "Oneliners") {
		t.Error("Expected view to contain title")
	}
	if !strings.Contains(view, "Found 4 oneliner(s):") {
		t.Errorf("Expected result count in view, got %q", view)
	}
	for _, line := range mockOneliners {
		if !strings.Contains(view, line) {
			t.Errorf("Expected view to contain %q", line)
		}
	}
}

func TestModel_View_NoResults(t *testing.T) {
	m := newTestModel(&fakeSink{})
	m.filtered = nil

	view := m.View()
	if !strings.Contains(view, "No oneliners found.") {
		t.Errorf("Expected empty-result message, got %q", view)
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}
