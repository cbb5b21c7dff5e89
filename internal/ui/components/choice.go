package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/procureiq/procureiq/internal/ui/theme"
)

// Choice is the option selector for quiz questions. In single mode it
// behaves like a radio list where Enter picks the option under the
// cursor. In multi mode Space toggles options and Limit caps how many
// can be on at once.
type Choice struct {
	Options []string
	Multi   bool
	Limit   int
	Cursor  int
	chosen  map[int]bool
}

// NewChoice creates a selector for the given options.
func NewChoice(options []string, multi bool, limit int) Choice {
	return Choice{
		Options: options,
		Multi:   multi,
		Limit:   limit,
		chosen:  make(map[int]bool),
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and multi-select toggling.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space":
		if c.Multi {
			c.toggle(c.Cursor)
		}
	default:
		// Digit keys jump the cursor (and toggle in multi mode).
		key := kmsg.String()
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(c.Options) {
				c.Cursor = idx
				if c.Multi {
					c.toggle(idx)
				}
			}
		}
	}

	return c, nil
}

func (c *Choice) toggle(idx int) {
	if c.chosen[idx] {
		delete(c.chosen, idx)
		return
	}
	if c.Limit > 0 && len(c.chosen) >= c.Limit {
		return
	}
	c.chosen[idx] = true
}

// Selection returns the chosen option indices in option order. Single
// mode returns the cursor position.
func (c Choice) Selection() []int {
	if !c.Multi {
		return []int{c.Cursor}
	}
	var sel []int
	for i := range c.Options {
		if c.chosen[i] {
			sel = append(sel, i)
		}
	}
	return sel
}

// SetSelection restores a previous selection, used when navigating back
// to an already answered question.
func (c *Choice) SetSelection(sel []int) {
	if !c.Multi {
		if len(sel) == 1 && sel[0] >= 0 && sel[0] < len(c.Options) {
			c.Cursor = sel[0]
		}
		return
	}
	c.chosen = make(map[int]bool)
	for _, idx := range sel {
		if idx >= 0 && idx < len(c.Options) {
			c.chosen[idx] = true
		}
	}
}

// Ready reports whether the selection satisfies the question: one option
// under the cursor for single, exactly Limit toggled for multi.
func (c Choice) Ready() bool {
	if !c.Multi {
		return len(c.Options) > 0
	}
	return len(c.chosen) == c.Limit
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		cursor := "  "
		if i == c.Cursor {
			cursor = "▸ "
		}

		marker := ""
		if c.Multi {
			if c.chosen[i] {
				marker = "[x] "
			} else {
				marker = "[ ] "
			}
		}

		line := fmt.Sprintf("%s%s%d) %s", cursor, marker, i+1, opt)

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case c.Multi && c.chosen[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
