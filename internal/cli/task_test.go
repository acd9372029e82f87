package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/tasktable/internal/app"
	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/infra/httpapi"
	"github.com/runoshun/tasktable/internal/infra/taskfile"
	"github.com/runoshun/tasktable/internal/testutil"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(tasks domain.TaskResource) *app.Container {
	return app.NewWithDeps(
		app.Config{},
		nil,
		tasks,
		&testutil.MockClock{NowTime: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		&testutil.MockLogger{},
		nil,
	)
}

// seeded returns a resource holding n tasks with ids and serial numbers 1..n.
func seeded(n int) *testutil.MockTaskResource {
	tasks := make([]*domain.Task, n)
	for i := range tasks {
		tasks[i] = &domain.Task{
			ID:              domain.TaskID(fmt.Sprint(i + 1)),
			SerialNo:        domain.Number(i + 1),
			Description:     fmt.Sprintf("Task %d", i+1),
			Status:          domain.StatusInProgress,
			AssignedMembers: domain.Members{domain.TeamMember1},
			DueDate:         "2024-07-01",
			EstimatedHours:  2,
			Priority:        domain.PriorityLow,
			CreatedOn:       "2024-05-01",
		}
	}
	res := testutil.NewMockTaskResource(tasks...)
	res.NextIDN = n + 1
	return res
}

// =============================================================================
// List Command Tests
// =============================================================================

func TestListCommand_Table(t *testing.T) {
	container := newTestContainer(seeded(4))

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--page", "2"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "SERIAL")
	assert.Contains(t, output, "Task 4")
	assert.NotContains(t, output, "Task 1")
	assert.Contains(t, output, "In Progress")
	assert.Contains(t, output, "Team Member 1")
	assert.Contains(t, output, "Page 2 of 2 (4 of 4 tasks match)")
}

func TestListCommand_PageClampedToLast(t *testing.T) {
	container := newTestContainer(seeded(7))

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--page", "4"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Task 7")
	assert.Contains(t, buf.String(), "Page 3 of 3")
}

func TestListCommand_FilterSortJSON(t *testing.T) {
	container := newTestContainer(seeded(12))

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--filter", "task 1", "--sort", "desc", "--all", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tasks))
	ids := make([]domain.TaskID, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	assert.Equal(t, []domain.TaskID{"12", "11", "10", "1"}, ids)
}

func TestListCommand_YAMLIsImportable(t *testing.T) {
	container := newTestContainer(seeded(2))

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--format", "yaml"})

	require.NoError(t, cmd.Execute())

	var records []taskfile.Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Task 2", records[1].Description)

	drafts, err := taskfile.Decode(buf.Bytes(), domain.TaskDraft{})
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
}

func TestListCommand_InvalidFormat(t *testing.T) {
	container := newTestContainer(seeded(1))

	cmd := newListCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, `unknown format "xml"`)
}

func TestListCommand_InvalidSort(t *testing.T) {
	container := newTestContainer(seeded(1))

	cmd := newListCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--sort", "sideways"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrInvalidSort)
}

func TestListCommand_RemoteError(t *testing.T) {
	res := seeded(1)
	res.ListErr = fmt.Errorf("list: %w", domain.ErrNetwork)
	container := newTestContainer(res)

	cmd := newListCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestListCommand_NoTaskResource(t *testing.T) {
	cmd := newListCommand(newTestContainer(nil))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.ErrorIs(t, cmd.Execute(), errNoTaskResource)
}

// =============================================================================
// Show Command Tests
// =============================================================================

func TestShowCommand(t *testing.T) {
	container := newTestContainer(seeded(3))

	cmd := newShowCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"#2"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "# Task 2: Task 2")
	assert.Contains(t, output, "Status: In Progress")
	assert.Contains(t, output, "Members: Team Member 1")
	assert.Contains(t, output, "Due: 2024-07-01")
}

func TestShowCommand_NotFound(t *testing.T) {
	container := newTestContainer(seeded(1))

	cmd := newShowCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"99"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrTaskNotFound)
}

func TestShowCommand_EmptyID(t *testing.T) {
	container := newTestContainer(seeded(1))

	cmd := newShowCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"#"})

	assert.ErrorContains(t, cmd.Execute(), "invalid task ID")
}

// =============================================================================
// New Command Tests
// =============================================================================

func TestNewCommand_CreateTask(t *testing.T) {
	res := seeded(1)
	container := newTestContainer(res)

	cmd := newNewCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{
		"--serial", "9",
		"--title", "Write report",
		"--member", "1",
		"--member", "teamMember3",
		"--due", "2024-07-15",
		"--hours", "4.5",
		"--priority", "high",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Created task 2: Write report")

	task := res.Stored("2")
	require.NotNil(t, task)
	assert.Equal(t, "Write report", task.Description)
	assert.Equal(t, domain.Number(9), task.SerialNo)
	assert.Equal(t, domain.Members{domain.TeamMember1, domain.TeamMember3}, task.AssignedMembers)
	assert.Equal(t, domain.Number(4.5), task.EstimatedHours)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, domain.StatusInProgress, task.Status)
	assert.Equal(t, domain.Date("2024-06-01"), task.CreatedOn)
	assert.False(t, task.IsAssigned)
}

func TestNewCommand_MissingFields(t *testing.T) {
	res := seeded(0)
	container := newTestContainer(res)

	cmd := newNewCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--title", "Only a title"})

	err := cmd.Execute()

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"serialNo", "assignedMembers", "dueDate", "estimatedHours"}, verr.Missing)
	assert.Zero(t, res.CreateCalls)
}

// =============================================================================
// Edit Command Tests
// =============================================================================

func TestEditCommand_OnlyChangedFields(t *testing.T) {
	res := seeded(2)
	container := newTestContainer(res)

	cmd := newEditCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"2", "--status", "completed", "--assigned"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Updated task 2: Task 2")

	task := res.Stored("2")
	require.NotNil(t, task)
	assert.Equal(t, domain.StatusCompleted, task.Status)
	assert.True(t, task.IsAssigned)
	assert.Equal(t, "Task 2", task.Description)
	assert.Equal(t, domain.Date("2024-05-01"), task.CreatedOn)
}

func TestEditCommand_NoFlags(t *testing.T) {
	container := newTestContainer(seeded(1))

	cmd := newEditCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrNoFieldsToUpdate)
}

func TestEditCommand_InvalidDate(t *testing.T) {
	res := seeded(1)
	container := newTestContainer(res)

	cmd := newEditCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "--due", "next week"})

	var verr *domain.ValidationError
	require.ErrorAs(t, cmd.Execute(), &verr)
	assert.Contains(t, verr.Invalid, "dueDate")
	assert.Zero(t, res.UpdateCalls)
}

// =============================================================================
// Rm Command Tests
// =============================================================================

func TestRmCommand(t *testing.T) {
	res := seeded(2)
	container := newTestContainer(res)

	cmd := newRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Deleted task 1")
	assert.Nil(t, res.Stored("1"))
	assert.NotNil(t, res.Stored("2"))
}

func TestRmCommand_NotFound(t *testing.T) {
	res := seeded(1)
	container := newTestContainer(res)

	cmd := newRmCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"42"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrTaskNotFound)
	assert.Zero(t, res.DeleteCalls)
}

// =============================================================================
// End-to-end over HTTP
// =============================================================================

func TestCommands_AgainstFakeServer(t *testing.T) {
	srv := testutil.NewFakeTaskServer(t, map[string]any{
		"id":              1,
		"serialNo":        "5",
		"description":     "Seeded",
		"status":          "uninitiated",
		"assignedMembers": []any{"teamMember2"},
		"dueDate":         "2024-07-01",
		"estimatedHours":  "3",
		"priority":        "medium",
		"createdOn":       "2024-05-01",
		"isAssigned":      "true",
	})
	container := newTestContainer(httpapi.New(srv.URL, time.Second))

	show := newShowCommand(container)
	var buf bytes.Buffer
	show.SetOut(&buf)
	show.SetArgs([]string{"1", "--format", "json"})
	require.NoError(t, show.Execute())

	var task domain.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &task))
	assert.True(t, task.IsAssigned)
	assert.Equal(t, domain.Number(5), task.SerialNo)

	create := newNewCommand(container)
	create.SetOut(&bytes.Buffer{})
	create.SetArgs([]string{"--serial", "6", "--title", "Fresh", "--member", "4", "--due", "2024-08-01", "--hours", "1"})
	require.NoError(t, create.Execute())

	records := srv.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Fresh", records[1]["description"])
	assert.NotEmpty(t, records[1]["id"])

	rm := newRmCommand(container)
	rm.SetOut(&bytes.Buffer{})
	rm.SetArgs([]string{"1"})
	require.NoError(t, rm.Execute())
	assert.Len(t, srv.Records(), 1)
}
