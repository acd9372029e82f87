package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_UnmarshalJSON(t *testing.T) {
	data := `{
		"id": 7,
		"serialNo": "12",
		"description": "Write docs",
		"status": "completed",
		"assignedMembers": ["teamMember3", "teamMember1", "teamMember3"],
		"dueDate": "2024-05-01",
		"isAssigned": "true",
		"estimatedHours": 4.5,
		"priority": "high",
		"createdOn": "2024-04-20T10:00:00Z"
	}`

	var task Task
	require.NoError(t, json.Unmarshal([]byte(data), &task))

	assert.Equal(t, TaskID("7"), task.ID)
	assert.Equal(t, Number(12), task.SerialNo)
	assert.Equal(t, "Write docs", task.Description)
	assert.Equal(t, StatusCompleted, task.Status)
	assert.Equal(t, Members{TeamMember1, TeamMember3}, task.AssignedMembers)
	assert.Equal(t, Date("2024-05-01"), task.DueDate)
	assert.True(t, task.IsAssigned)
	assert.Equal(t, Number(4.5), task.EstimatedHours)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.Equal(t, Date("2024-04-20"), task.CreatedOn)
}

func TestTask_UnmarshalJSON_IsAssignedForms(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"TRUE"`, true},
		{`"false"`, false},
		{`null`, false},
		{`""`, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var task Task
			require.NoError(t, json.Unmarshal([]byte(`{"isAssigned": `+tt.raw+`}`), &task))
			assert.Equal(t, tt.want, task.IsAssigned)
		})
	}
}

func TestTask_UnmarshalJSON_MissingIsAssigned(t *testing.T) {
	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"description": "x"}`), &task))
	assert.False(t, task.IsAssigned)
}

func TestTask_UnmarshalJSON_Defaults(t *testing.T) {
	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"id": "a1", "status": "paused", "assignedMembers": "teamMember2, someone"}`), &task))

	assert.Equal(t, StatusInProgress, task.Status, "unknown status falls back to default")
	assert.Equal(t, PriorityLow, task.Priority, "absent priority falls back to default")
	assert.Equal(t, Members{TeamMember2}, task.AssignedMembers, "unknown members are dropped")
}

func TestTask_MarshalJSON_OmitsEmptyID(t *testing.T) {
	task := Task{
		Description:     "New",
		Status:          StatusUninitiated,
		Priority:        PriorityMedium,
		AssignedMembers: nil,
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	_, hasID := raw["id"]
	assert.False(t, hasID)
	assert.Equal(t, []any{}, raw["assignedMembers"])
	assert.Equal(t, false, raw["isAssigned"])
}

func TestTask_Clone(t *testing.T) {
	orig := &Task{ID: "1", AssignedMembers: Members{TeamMember1}}

	c := orig.Clone()
	c.AssignedMembers[0] = TeamMember4
	c.Description = "changed"

	assert.Equal(t, TeamMember1, orig.AssignedMembers[0])
	assert.Empty(t, orig.Description)
}

func TestIndexOf(t *testing.T) {
	tasks := []*Task{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.Equal(t, 1, IndexOf(tasks, "b"))
	assert.Equal(t, -1, IndexOf(tasks, "z"))
}
