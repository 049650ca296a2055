package entries

import (
	"fmt"
	"slices"

	"gpumanager/internal/models"
)

// Row is one line of the preference table.
type Row struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Current  string `json:"current"`
	Selected string `json:"selected"`
}

// Model is the ordered table shown to the user. It is a disposable copy of
// the store and is only refreshed by Load. Methods never mutate the receiver.
type Model struct {
	rows []Row
}

// Load builds a model from raw store values, dropping every value that is not
// a GPU preference.
func Load(raw []models.RawEntry) Model {
	parsed := models.ParseEntries(raw)
	rows := make([]Row, 0, len(parsed))
	for _, e := range parsed {
		current := FormatPreference(e.Setting)
		selected := current
		if !slices.Contains(Choices(), selected) {
			selected = LabelAuto
		}
		rows = append(rows, Row{
			Path:     e.Path,
			Name:     BaseName(e.Path),
			Current:  current,
			Selected: selected,
		})
	}
	return Model{rows: rows}
}

func (m Model) Len() int {
	return len(m.rows)
}

// Rows returns a copy of the rows in table order.
func (m Model) Rows() []Row {
	return slices.Clone(m.rows)
}

// Row returns the row at index i.
func (m Model) Row(i int) (Row, bool) {
	if i < 0 || i >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[i], true
}

// WithSelection returns a model where row i selects label.
func (m Model) WithSelection(i int, label string) (Model, error) {
	if _, ok := m.Row(i); !ok {
		return m, fmt.Errorf("row %d out of range", i)
	}
	if _, err := ParsePreferenceDisplay(label); err != nil {
		return m, err
	}
	rows := slices.Clone(m.rows)
	rows[i].Selected = label
	return Model{rows: rows}, nil
}

// Without returns a model with row i removed.
func (m Model) Without(i int) Model {
	if _, ok := m.Row(i); !ok {
		return m
	}
	return Model{rows: slices.Delete(slices.Clone(m.rows), i, i+1)}
}
