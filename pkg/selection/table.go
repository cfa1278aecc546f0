package selection

import (
	"github.com/matzehuels/ipath/pkg/errors"
)

// Column is a named sequence of values, one per table row.
type Column struct {
	Name   string
	Values []float64
}

// Table is an ordered set of rows keyed by identifier.
//
// Row order is the order of IDs and is preserved in the generated
// selection. Every column must hold exactly len(IDs) values.
type Table struct {
	IDs     []string
	Columns []Column
}

// NewTable creates an empty table with the given row identifiers.
func NewTable(ids ...string) *Table {
	return &Table{IDs: append([]string(nil), ids...)}
}

// AddColumn appends a column. It returns the table to allow chaining.
// Length mismatches are reported by [Table.Validate], not here.
func (t *Table) AddColumn(name string, values ...float64) *Table {
	t.Columns = append(t.Columns, Column{Name: name, Values: values})
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.IDs) }

// Column returns the values of the named column.
// Unknown names fail with [errors.ErrCodeInvalidInput].
func (t *Table) Column(name string) ([]float64, error) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c.Values, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "column %q not found (have: %v)", name, t.ColumnNames())
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Validate checks the table's shape and identifiers.
//
// A nil table or a column whose length differs from the number of rows is
// not a table and fails with [errors.ErrCodeTypeMismatch]. Duplicate or
// malformed identifiers fail with [errors.ErrCodeInvalidInput].
func (t *Table) Validate() error {
	if t == nil {
		return errors.New(errors.ErrCodeTypeMismatch, "input is not a table")
	}
	for _, c := range t.Columns {
		if len(c.Values) != len(t.IDs) {
			return errors.New(errors.ErrCodeTypeMismatch,
				"column %q has %d values for %d rows", c.Name, len(c.Values), len(t.IDs))
		}
	}

	seen := make(map[string]bool, len(t.IDs))
	for _, id := range t.IDs {
		if err := errors.ValidateIdentifier(id); err != nil {
			return err
		}
		if seen[id] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate identifier %q", id)
		}
		seen[id] = true
	}
	return nil
}
