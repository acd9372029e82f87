package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/runoshun/tasktable/internal/domain"
)

// column is a table column with a fixed display width.
// The title column takes the remaining width.
type column struct {
	title string
	value func(row int, t *domain.Task) string
	width int
}

var columns = []column{
	{title: "#", width: 4, value: func(row int, _ *domain.Task) string { return fmt.Sprint(row) }},
	{title: "Serial", width: 6, value: func(_ int, t *domain.Task) string { return t.SerialNo.String() }},
	{title: "Title", value: func(_ int, t *domain.Task) string { return t.Description }},
	{title: "ID", width: 10, value: func(_ int, t *domain.Task) string { return string(t.ID) }},
	{title: "Status", width: 12, value: func(_ int, t *domain.Task) string { return t.Status.Display() }},
	{title: "Members", width: 14, value: func(_ int, t *domain.Task) string { return shortMembers(t.AssignedMembers) }},
	{title: "Due", width: 10, value: func(_ int, t *domain.Task) string { return t.DueDate.String() }},
	{title: "Assigned", width: 8, value: func(_ int, t *domain.Task) string { return yesNo(t.IsAssigned) }},
	{title: "Hours", width: 6, value: func(_ int, t *domain.Task) string { return t.EstimatedHours.String() }},
	{title: "Priority", width: 8, value: func(_ int, t *domain.Task) string { return t.Priority.Display() }},
	{title: "Created", width: 10, value: func(_ int, t *domain.Task) string { return t.CreatedOn.String() }},
}

const (
	minTitleWidth = 16
	cursorWidth   = 2
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeFilter, ModeForm, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the table with any active overlay.
func (m *Model) viewMain() string {
	v := m.store.View()
	var b strings.Builder

	b.WriteString(m.viewHeader(v))
	b.WriteString("\n")

	// Notification line
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	} else if m.notice != "" {
		b.WriteString(m.styles.NoticeMsg.Render(m.notice) + "\n\n")
	}

	if m.mode == ModeFilter {
		b.WriteString(m.styles.InputPrompt.Render("Filter: "))
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.viewTable(v))
	b.WriteString("\n")
	b.WriteString(m.viewPagination(v))

	switch m.mode {
	case ModeNormal, ModeFilter, ModeHelp:
		// No overlay for these modes
	case ModeForm:
		b.WriteString("\n\n")
		b.WriteString(m.viewForm())
	case ModeConfirm:
		b.WriteString("\n\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	return b.String()
}

// viewHeader renders the title with the filter, sort and count indicators.
func (m *Model) viewHeader(v domain.View) string {
	title := m.styles.HeaderText.Render("Tasks")

	var info []string
	if v.Params.FilterText != "" {
		info = append(info, fmt.Sprintf("filter: %q", v.Params.FilterText))
	}
	if ind := v.Params.Sort.Indicator(); ind != "" {
		info = append(info, "sort: serial "+ind)
	}
	if m.loading {
		info = append(info, "loading…")
	}
	info = append(info, fmt.Sprintf("%d of %d tasks", len(v.Filtered), v.Total))
	rightText := m.styles.HeaderInfo.Render(strings.Join(info, " · "))

	headerWidth := max(m.width-6, 40)
	spacing := max(headerWidth-lipgloss.Width(title)-lipgloss.Width(rightText), 1)

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// titleWidth returns the width left for the title column.
func (m *Model) titleWidth() int {
	fixed := cursorWidth
	for _, c := range columns {
		fixed += c.width + 1
	}
	return max(m.width-6-fixed, minTitleWidth)
}

// viewTable renders the header row and the rows of the current page.
func (m *Model) viewTable(v domain.View) string {
	titleWidth := m.titleWidth()

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = cell(c.title, c.widthOr(titleWidth))
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", cursorWidth))
	b.WriteString(m.styles.TableHeader.Render(strings.Join(headers, " ")))
	b.WriteString("\n")

	if len(v.Page) == 0 {
		msg := "No tasks. Press n to create one."
		if v.Params.FilterText != "" {
			msg = "No tasks match the filter."
		}
		b.WriteString(strings.Repeat(" ", cursorWidth) + m.styles.Empty.Render(msg) + "\n")
		return b.String()
	}

	for i, task := range v.Page {
		b.WriteString(m.renderRow(v.RowNumber(i), task, i == m.cursor, titleWidth))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow renders one table row. Selected rows are highlighted as a whole;
// other rows color the status and priority cells.
func (m *Model) renderRow(row int, task *domain.Task, selected bool, titleWidth int) string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		text := cell(c.value(row, task), c.widthOr(titleWidth))
		if !selected {
			switch c.title {
			case "Status":
				text = m.styles.StatusStyle(task.Status).Render(text)
			case "Priority":
				text = m.styles.PriorityStyle(task.Priority).Render(text)
			default:
				text = m.styles.Row.Render(text)
			}
		}
		cells[i] = text
	}
	line := strings.Join(cells, " ")
	if selected {
		return m.styles.Cursor.Render("> ") + m.styles.RowSelected.Render(line)
	}
	return strings.Repeat(" ", cursorWidth) + line
}

// viewPagination renders the page indicator.
func (m *Model) viewPagination(v domain.View) string {
	text := fmt.Sprintf("Page %d of %d", v.CurrentPage, v.TotalPages)
	if len(v.Page) > 0 {
		text += fmt.Sprintf(" · rows %d-%d of %d", v.RowNumber(0), v.RowNumber(len(v.Page)-1), len(v.Sorted))
	}
	return m.styles.Pagination.Render(text)
}

// viewForm renders the new/edit form.
func (m *Model) viewForm() string {
	f := m.form
	if f == nil {
		return ""
	}

	var b strings.Builder
	if f.IsEdit() {
		b.WriteString(m.styles.DialogTitle.Render("Edit Task " + string(f.editingID)))
	} else {
		b.WriteString(m.styles.DialogTitle.Render("New Task"))
	}
	b.WriteString("\n")

	for i, fld := range f.fields {
		label := m.styles.InputLabel
		if i == f.focus {
			label = m.styles.InputLabelFocused
		}
		b.WriteString(label.Render(fld.label))
		if fld.isChoice() {
			value := fld.Value()
			if i == f.focus {
				value = "‹ " + value + " ›"
			}
			b.WriteString(value)
		} else {
			b.WriteString(fld.input.View())
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.InputLabel.Render("Created"))
	b.WriteString(m.styles.InputReadOnly.Render(f.createdOn))
	b.WriteString("\n")

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render(f.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.submitting {
		b.WriteString(m.styles.DialogPrompt.Render("Saving… (esc to close)"))
	} else {
		b.WriteString(m.styles.DialogPrompt.Render("tab/↓ next · shift+tab/↑ prev · ←/→ change · enter save · esc cancel"))
	}

	return m.styles.Dialog.Render(b.String())
}

// viewConfirmDialog renders the delete confirmation.
func (m *Model) viewConfirmDialog() string {
	title := "Delete task " + string(m.confirmTaskID)
	if task, ok := m.store.Get(m.confirmTaskID); ok {
		title += fmt.Sprintf(" %q", task.Description)
	}
	content := m.styles.DialogTitle.Render(title+"?") + "\n" +
		m.styles.DialogPrompt.Render("y to confirm · n/esc to cancel")
	return m.styles.Dialog.Render(content)
}

// viewHelp renders the full help.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Help"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("Rows can only be moved while the sort is off. Moves are not saved to the server; reload restores server order."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("Press ? or esc to close"))
	return b.String()
}

func (c column) widthOr(flex int) int {
	if c.width == 0 {
		return flex
	}
	return c.width
}

// cell truncates s to width display cells and pads it to exactly width.
func cell(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// shortMembers renders members compactly ("TM1, TM3").
func shortMembers(ms domain.Members) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = "TM" + string(m[len(m)-1:])
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
