package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tasktable/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTasksLoaded:
		m.loading = false
		m.clampCursor()
		return m, nil

	case MsgTaskCreated:
		m.closeFormFor(msg.Seq)
		m.notice = fmt.Sprintf("Created task %s", msg.Task.ID)
		m.clampCursor()
		return m, nil

	case MsgTaskUpdated:
		m.closeFormFor(msg.Seq)
		m.clampCursor()
		if msg.Task == nil {
			return m, m.showError(fmt.Errorf("task %s: %w", msg.ID, domain.ErrTaskNotFound))
		}
		m.notice = fmt.Sprintf("Updated task %s", msg.ID)
		return m, nil

	case MsgTaskDeleted:
		if m.deletingID == msg.TaskID {
			m.deletingID = ""
		}
		m.notice = fmt.Sprintf("Deleted task %s", msg.TaskID)
		m.clampCursor()
		return m, nil

	case MsgError:
		m.loading = false
		m.deletingID = ""
		cmd := m.showError(msg.Err)
		if m.mode == ModeForm && m.form != nil {
			// Keep the form so the user can retry.
			m.form.submitting = false
		}
		return m, cmd

	case MsgClearError:
		if msg.Seq == m.errSeq {
			m.err = nil
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear notifications on any key press
	m.err = nil
	m.notice = ""

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeFilter:
		return m.handleFilterMode(msg)
	case ModeForm:
		return m.handleFormMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.store.View().Page)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.store.PrevPage()
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.store.NextPage()
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.MoveUp):
		return m.moveRow(-1)

	case key.Matches(msg, m.keys.MoveDown):
		return m.moveRow(1)

	case key.Matches(msg, m.keys.New):
		m.openForm(domain.NewTaskDraft(m.clock.Now()), "")
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.openForm(domain.DraftFromTask(task, m.clock.Now()), task.ID)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil || task.ID == m.deletingID {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Filter):
		m.mode = ModeFilter
		m.filterInput.SetValue(m.store.Params().FilterText)
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Sort):
		m.store.ToggleSort()
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// moveRow moves the selected row by delta within the current page.
func (m *Model) moveRow(delta int) (tea.Model, tea.Cmd) {
	target := m.cursor + delta
	if target < 0 || target >= len(m.store.View().Page) {
		return m, nil
	}
	if err := m.store.ReorderVisible(m.cursor, target); err != nil {
		return m, m.showError(err)
	}
	m.cursor = target
	return m, nil
}

// handleFilterMode handles keys in filter mode. The filter applies as you type.
func (m *Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.store.SetFilterText("")
		m.clampCursor()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = ModeNormal
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.store.SetFilterText(m.filterInput.Value())
	m.clampCursor()
	return m, cmd
}

// openForm shows the task form pre-filled from a draft.
func (m *Model) openForm(d domain.TaskDraft, editingID domain.TaskID) {
	m.formSeq++
	m.form = newTaskForm(d, editingID)
	m.form.seq = m.formSeq
	m.mode = ModeForm
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = ModeNormal
}

// closeFormFor closes the form only if it is the one whose submission settled.
// A form opened after the submission was cancelled stays open.
func (m *Model) closeFormFor(seq int) {
	if m.mode == ModeForm && m.form != nil && m.form.seq == seq {
		m.closeForm()
	}
}

// handleFormMode handles keys in the task form.
func (m *Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeNormal
		return m, nil
	}
	if m.form.submitting {
		// Waiting for the resource; only cancel is accepted.
		if key.Matches(msg, m.keys.Escape) {
			m.closeForm()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeForm()
		return m, nil

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.form.Next()
		return m, nil

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.form.Prev()
		return m, nil

	case msg.Type == tea.KeyEnter:
		task, ok := m.form.Validate()
		if !ok {
			return m, nil
		}
		m.form.submitting = true
		if m.form.IsEdit() {
			return m, m.updateTask(m.form.seq, m.form.editingID, task)
		}
		return m, m.createTask(m.form.seq, task)
	}

	return m, m.form.Update(msg)
}

// handleConfirmMode handles keys in confirm mode.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = ""
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.confirmAction {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			// Leave the dialog so further presses cannot send the request again.
			id := m.confirmTaskID
			m.mode = ModeNormal
			m.confirmAction = ConfirmNone
			m.confirmTaskID = ""
			m.deletingID = id
			m.notice = fmt.Sprintf("Deleting task %s…", id)
			return m, m.deleteTask(id)
		}
	}

	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
		m.mode = ModeNormal
	}
	return m, nil
}
