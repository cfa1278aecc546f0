package selection

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/ipath/pkg/errors"
)

// idKey is the identifier field in row-oriented JSON input.
const idKey = "id"

// ReadFile reads a table from path, choosing the format by extension:
// .csv (comma separated), .tsv/.tab/.txt (tab separated) or .json.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(f, ',')
	case ".tsv", ".tab", ".txt":
		return ReadCSV(f, '\t')
	case ".json":
		return ReadJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unsupported table format %q (must be .csv, .tsv, .tab, .txt or .json)", ext)
	}
}

// ReadCSV reads a delimited table. The header row names the columns; its
// first cell (the index label) is ignored. Each following row starts with
// the identifier and continues with one number per column. Lines starting
// with '#' are comments.
//
// Ragged rows and cells that are not numbers fail with
// [errors.ErrCodeTypeMismatch].
func ReadCSV(r io.Reader, sep rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeTypeMismatch, "table is empty")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTypeMismatch, err, "read header")
	}

	t := &Table{}
	for _, name := range header[1:] {
		t.Columns = append(t.Columns, Column{Name: strings.TrimSpace(name)})
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeTypeMismatch, err, "read row %d", t.Len()+1)
		}

		id := strings.TrimSpace(rec[0])
		for i, cell := range rec[1:] {
			v, err := parseCell(cell)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeTypeMismatch, err,
					"row %q column %q", id, t.Columns[i].Name)
			}
			t.Columns[i].Values = append(t.Columns[i].Values, v)
		}
		t.IDs = append(t.IDs, id)
	}
	return t, nil
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

// columnarJSON is the column-oriented JSON layout:
//
//	{"ids": ["C00003", "C00004"], "columns": {"fc": [1.5, -0.3]}}
type columnarJSON struct {
	IDs     []string             `json:"ids"`
	Columns map[string][]float64 `json:"columns"`
}

// ReadJSON reads a table in one of two layouts: column-oriented (see
// columnarJSON) or a list of row objects, each with an "id" string and
// numeric fields:
//
//	[{"id": "C00003", "fc": 1.5}, {"id": "C00004", "fc": -0.3}]
//
// JSON objects are unordered, so columns are sorted by name. Rows keep
// their order.
func ReadJSON(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read json")
	}

	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		return readColumnarJSON(trimmed)
	case bytes.HasPrefix(trimmed, []byte("[")):
		return readRowsJSON(trimmed)
	default:
		return nil, errors.New(errors.ErrCodeTypeMismatch, "json table must be an object or an array")
	}
}

func readColumnarJSON(data []byte) (*Table, error) {
	var doc columnarJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTypeMismatch, err, "decode columnar table")
	}

	t := &Table{IDs: doc.IDs}
	for _, name := range sortedKeys(doc.Columns) {
		t.Columns = append(t.Columns, Column{Name: name, Values: doc.Columns[name]})
	}
	return t, nil
}

func readRowsJSON(data []byte) (*Table, error) {
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTypeMismatch, err, "decode row table")
	}

	t := &Table{}
	if len(rows) == 0 {
		return t, nil
	}

	// The first row fixes the column set.
	var names []string
	for _, name := range sortedKeys(rows[0]) {
		if name != idKey {
			names = append(names, name)
		}
	}
	for _, name := range names {
		t.Columns = append(t.Columns, Column{Name: name})
	}

	for i, row := range rows {
		id, ok := row[idKey].(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeTypeMismatch, "row %d: %q must be a string", i, idKey)
		}
		if len(row) != len(names)+1 {
			return nil, errors.New(errors.ErrCodeTypeMismatch,
				"row %q has %d fields, want %d", id, len(row)-1, len(names))
		}
		for j, name := range names {
			v, ok := row[name].(float64)
			if !ok {
				return nil, errors.New(errors.ErrCodeTypeMismatch, "row %q column %q is not a number", id, name)
			}
			t.Columns[j].Values = append(t.Columns[j].Values, v)
		}
		t.IDs = append(t.IDs, id)
	}
	return t, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
