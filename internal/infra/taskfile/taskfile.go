// Package taskfile reads and writes task records as YAML.
// The written form can be fed back to Decode, so `list --format yaml`
// output is a valid import file.
package taskfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/tasktable/internal/domain"
)

// Record is the YAML shape of a task record.
type Record struct {
	ID              string   `yaml:"id,omitempty"`
	SerialNo        float64  `yaml:"serialNo"`
	Description     string   `yaml:"description"`
	Status          string   `yaml:"status"`
	AssignedMembers []string `yaml:"assignedMembers,flow"`
	DueDate         string   `yaml:"dueDate"`
	IsAssigned      bool     `yaml:"isAssigned"`
	EstimatedHours  float64  `yaml:"estimatedHours"`
	Priority        string   `yaml:"priority"`
	CreatedOn       string   `yaml:"createdOn,omitempty"`
}

// FromTask converts a task to its YAML record.
func FromTask(t *domain.Task) Record {
	return Record{
		ID:              string(t.ID),
		SerialNo:        float64(t.SerialNo),
		Description:     t.Description,
		Status:          string(t.Status),
		AssignedMembers: t.AssignedMembers.Strings(),
		DueDate:         t.DueDate.String(),
		IsAssigned:      t.IsAssigned,
		EstimatedHours:  float64(t.EstimatedHours),
		Priority:        string(t.Priority),
		CreatedOn:       t.CreatedOn.String(),
	}
}

// Encode writes tasks as a YAML sequence.
func Encode(w io.Writer, tasks []*domain.Task) error {
	records := make([]Record, len(tasks))
	for i, t := range tasks {
		records[i] = FromTask(t)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// scalar accepts any YAML scalar and keeps its text.
type scalar string

func (s *scalar) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			*s = ""
			return nil
		}
		*s = scalar(n.Value)
		return nil
	case yaml.AliasNode:
		return s.UnmarshalYAML(n.Alias)
	default:
		return fmt.Errorf("line %d: want a scalar value", n.Line)
	}
}

// scalarList accepts a sequence of scalars or a single (comma-separated) scalar.
type scalarList []string

func (l *scalarList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			var s scalar
			if err := s.UnmarshalYAML(item); err != nil {
				return err
			}
			out = append(out, string(s))
		}
		*l = out
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(n.Alias)
	default:
		var s scalar
		if err := s.UnmarshalYAML(n); err != nil {
			return err
		}
		if s == "" {
			*l = nil
		} else {
			*l = []string{string(s)}
		}
		return nil
	}
}

// draftRecord is the loosely typed YAML shape read by Decode.
// "title" is accepted as an alias of "description".
type draftRecord struct {
	SerialNo        scalar     `yaml:"serialNo"`
	Description     scalar     `yaml:"description"`
	Title           scalar     `yaml:"title"`
	Status          scalar     `yaml:"status"`
	AssignedMembers scalarList `yaml:"assignedMembers"`
	DueDate         scalar     `yaml:"dueDate"`
	IsAssigned      scalar     `yaml:"isAssigned"`
	EstimatedHours  scalar     `yaml:"estimatedHours"`
	Priority        scalar     `yaml:"priority"`
	CreatedOn       scalar     `yaml:"createdOn"`
}

func (r draftRecord) toDraft(base domain.TaskDraft) domain.TaskDraft {
	d := base
	d.SerialNo = string(r.SerialNo)
	d.Description = string(r.Description)
	if d.Description == "" {
		d.Description = string(r.Title)
	}
	d.AssignedMembers = []string(r.AssignedMembers)
	d.DueDate = string(r.DueDate)
	d.EstimatedHours = string(r.EstimatedHours)
	if r.Status != "" {
		d.Status = string(r.Status)
	}
	if r.Priority != "" {
		d.Priority = string(r.Priority)
	}
	if r.CreatedOn != "" {
		d.CreatedOn = string(r.CreatedOn)
	}
	if r.IsAssigned != "" {
		d.IsAssigned = strings.EqualFold(strings.TrimSpace(string(r.IsAssigned)), "true")
	}
	return d
}

// Decode reads task drafts from YAML. The content may be a sequence of records,
// a mapping with a "tasks" sequence, a single record, or several documents of
// any of these. Unset fields take the values of base (the form defaults).
func Decode(content []byte, base domain.TaskDraft) ([]domain.TaskDraft, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, domain.ErrEmptyFile
	}

	var records []draftRecord
	dec := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		recs, err := decodeDocument(&doc)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}

	if len(records) == 0 {
		return nil, domain.ErrNoTasksInFile
	}

	drafts := make([]domain.TaskDraft, 0, len(records))
	for _, r := range records {
		drafts = append(drafts, r.toDraft(base))
	}
	return drafts, nil
}

func decodeDocument(doc *yaml.Node) ([]draftRecord, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]

	switch root.Kind {
	case yaml.SequenceNode:
		var recs []draftRecord
		if err := root.Decode(&recs); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		return recs, nil
	case yaml.MappingNode:
		if tasks := mappingValue(root, "tasks"); tasks != nil {
			var recs []draftRecord
			if err := tasks.Decode(&recs); err != nil {
				return nil, fmt.Errorf("parse yaml: %w", err)
			}
			return recs, nil
		}
		var rec draftRecord
		if err := root.Decode(&rec); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		return []draftRecord{rec}, nil
	case yaml.ScalarNode:
		if root.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("parse yaml: line %d: want a task list or a task mapping", root.Line)
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if strings.EqualFold(m.Content[i].Value, key) {
			return m.Content[i+1]
		}
	}
	return nil
}
