package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var draftToday = time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

func validDraft() TaskDraft {
	d := NewTaskDraft(draftToday)
	d.SerialNo = "3"
	d.Description = "Ship release"
	d.AssignedMembers = []string{"teamMember2", "1"}
	d.DueDate = "2024-06-30"
	d.EstimatedHours = "6"
	return d
}

func TestNewTaskDraft_Defaults(t *testing.T) {
	d := NewTaskDraft(draftToday)

	assert.Equal(t, "inProgress", d.Status)
	assert.Equal(t, "low", d.Priority)
	assert.Equal(t, "2024-06-01", d.CreatedOn)
	assert.False(t, d.IsAssigned)
}

func TestTaskDraft_ToTask(t *testing.T) {
	d := validDraft()
	d.IsAssigned = true
	d.Priority = "high"

	task, err := d.ToTask()
	require.NoError(t, err)

	assert.Empty(t, task.ID)
	assert.Equal(t, Number(3), task.SerialNo)
	assert.Equal(t, "Ship release", task.Description)
	assert.Equal(t, StatusInProgress, task.Status)
	assert.Equal(t, Members{TeamMember1, TeamMember2}, task.AssignedMembers)
	assert.Equal(t, Date("2024-06-30"), task.DueDate)
	assert.Equal(t, Number(6), task.EstimatedHours)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.Equal(t, Date("2024-06-01"), task.CreatedOn)
	assert.True(t, task.IsAssigned)
}

func TestTaskDraft_Validate_MissingFields(t *testing.T) {
	d := TaskDraft{Status: "", Description: "   "}

	err := d.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"serialNo", "assignedMembers", "dueDate", "estimatedHours", "description", "status"}, verr.Missing)
	assert.Empty(t, verr.Invalid)
	assert.Equal(t, "missing required fields: serialNo, assignedMembers, dueDate, estimatedHours, description, status", err.Error())
}

func TestTaskDraft_Validate_InvalidFields(t *testing.T) {
	d := validDraft()
	d.SerialNo = "abc"
	d.DueDate = "30/06/2024"
	d.AssignedMembers = []string{"teamMember9"}
	d.Priority = "urgent"

	err := d.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Empty(t, verr.Missing)
	assert.Equal(t, []string{"serialNo", "assignedMembers", "dueDate", "priority"}, verr.Invalid)
}

func TestTaskDraft_Validate_CommaSeparatedMembers(t *testing.T) {
	d := validDraft()
	d.AssignedMembers = []string{"teamMember4, teamMember3"}

	task, err := d.ToTask()
	require.NoError(t, err)
	assert.Equal(t, Members{TeamMember3, TeamMember4}, task.AssignedMembers)
}

func TestTaskDraft_Validate_BlankMemberEntries(t *testing.T) {
	d := validDraft()
	d.AssignedMembers = []string{" ", ","}

	var verr *ValidationError
	require.True(t, errors.As(d.Validate(), &verr))
	assert.Equal(t, []string{"assignedMembers"}, verr.Missing)
}

func TestTaskDraft_EmptyPriorityDefaultsToLow(t *testing.T) {
	d := validDraft()
	d.Priority = ""

	task, err := d.ToTask()
	require.NoError(t, err)
	assert.Equal(t, PriorityLow, task.Priority)
}

func TestDraftFromTask(t *testing.T) {
	task := &Task{
		ID:              "42",
		SerialNo:        5,
		Description:     "Edit me",
		Status:          StatusCompleted,
		AssignedMembers: Members{TeamMember4},
		DueDate:         "2024-07-01",
		EstimatedHours:  1.5,
		Priority:        PriorityMedium,
		CreatedOn:       "2024-01-01",
		IsAssigned:      true,
	}

	d := DraftFromTask(task, draftToday)

	assert.Equal(t, "5", d.SerialNo)
	assert.Equal(t, "1.5", d.EstimatedHours)
	assert.Equal(t, "completed", d.Status)
	assert.Equal(t, []string{"teamMember4"}, d.AssignedMembers)
	assert.Equal(t, "2024-01-01", d.CreatedOn)
	assert.True(t, d.IsAssigned)

	back, err := d.ToTask()
	require.NoError(t, err)
	back.ID = task.ID
	assert.Equal(t, *task, back)
}

func TestDraftFromTask_MissingCreatedOn(t *testing.T) {
	d := DraftFromTask(&Task{}, draftToday)
	assert.Equal(t, "2024-06-01", d.CreatedOn)
}
