package taskfile

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasktable/internal/domain"
)

var base = domain.NewTaskDraft(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

func TestDecode_Sequence(t *testing.T) {
	content := `
- serialNo: 1
  title: Write docs
  assignedMembers: [teamMember1, teamMember3]
  dueDate: 2024-07-01
  estimatedHours: 2.5
  isAssigned: true
- serialNo: "2"
  description: Fix login
  assignedMembers: teamMember2, teamMember4
  dueDate: "2024-07-02"
  estimatedHours: 1
  status: completed
  priority: high
`
	drafts, err := Decode([]byte(content), base)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	first := drafts[0]
	assert.Equal(t, "1", first.SerialNo)
	assert.Equal(t, "Write docs", first.Description, "title is an alias of description")
	assert.Equal(t, []string{"teamMember1", "teamMember3"}, first.AssignedMembers)
	assert.Equal(t, "2024-07-01", first.DueDate)
	assert.Equal(t, "2.5", first.EstimatedHours)
	assert.True(t, first.IsAssigned)
	assert.Equal(t, "inProgress", first.Status, "defaults come from base")
	assert.Equal(t, "low", first.Priority)
	assert.Equal(t, "2024-06-01", first.CreatedOn)

	second := drafts[1]
	assert.Equal(t, []string{"teamMember2, teamMember4"}, second.AssignedMembers)
	assert.Equal(t, "completed", second.Status)
	assert.Equal(t, "high", second.Priority)

	task, err := second.ToTask()
	require.NoError(t, err)
	assert.Equal(t, domain.Members{domain.TeamMember2, domain.TeamMember4}, task.AssignedMembers)
}

func TestDecode_TasksKeyAndMultipleDocuments(t *testing.T) {
	content := `
tasks:
  - serialNo: 1
    description: one
---
serialNo: 2
description: two
---
`
	drafts, err := Decode([]byte(content), base)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "one", drafts[0].Description)
	assert.Equal(t, "two", drafts[1].Description)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("  \n"), base)
	assert.ErrorIs(t, err, domain.ErrEmptyFile)

	_, err = Decode([]byte("---\n---\n"), base)
	assert.ErrorIs(t, err, domain.ErrNoTasksInFile)

	_, err = Decode([]byte("just a string"), base)
	assert.ErrorContains(t, err, "want a task list")

	_, err = Decode([]byte("- serialNo: [1, 2]"), base)
	assert.ErrorContains(t, err, "want a scalar value")

	_, err = Decode([]byte("- serialNo: 1\n  bad: [\n"), base)
	assert.ErrorContains(t, err, "parse yaml")
}

func TestEncode_RoundTrip(t *testing.T) {
	tasks := []*domain.Task{{
		ID:              "abc",
		SerialNo:        4,
		Description:     "Review PR",
		Status:          domain.StatusUninitiated,
		AssignedMembers: domain.Members{domain.TeamMember1, domain.TeamMember2},
		DueDate:         "2024-08-01",
		EstimatedHours:  0.5,
		Priority:        domain.PriorityMedium,
		CreatedOn:       "2024-05-05",
		IsAssigned:      true,
	}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, tasks))
	out := buf.String()
	assert.Contains(t, out, "assignedMembers: [teamMember1, teamMember2]")
	assert.Contains(t, out, "description: Review PR")

	drafts, err := Decode(buf.Bytes(), base)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	back, err := drafts[0].ToTask()
	require.NoError(t, err)
	back.ID = tasks[0].ID
	assert.Equal(t, *tasks[0], back)
}
