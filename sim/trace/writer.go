package trace

import (
	"fmt"

	"github.com/rs/xid"
)

// Trace writer formats.
const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// ValidFormats is the set of recognized trace writer formats.
var ValidFormats = map[string]bool{FormatCSV: true, FormatSQLite: true}

// DefaultBaseName returns a unique file name stem for a trace written without
// an explicit path.
func DefaultBaseName() string {
	return "sjf_trace_" + xid.New().String()
}

// NewWriter creates a Writer by format name. An empty path selects a unique
// file name in the working directory.
func NewWriter(format, path string) (Writer, error) {
	switch format {
	case FormatCSV:
		w, err := NewCSVWriter(path)
		if err != nil {
			return nil, err
		}
		return w, nil
	case FormatSQLite:
		w, err := NewSQLiteWriter(path)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown trace format %q", format)
	}
}
