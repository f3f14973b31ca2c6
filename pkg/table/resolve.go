// Package table locates rows of SNMP conceptual tables by the content of
// one column, so that sibling columns can be read at the same index.
package table

import (
	"iter"

	"go.uber.org/zap"

	"github.com/chrizzn/snmpdash/pkg/snmp"
	"github.com/chrizzn/snmpdash/pkg/value"
)

// ResolveRow scans a column walk in order and returns the row index of the
// first cell whose unquoted text equals target. It stops pulling from cells
// as soon as a match is found or an error is yielded.
func ResolveRow(cells iter.Seq2[snmp.Cell, error], target string) (int, bool) {
	if cells == nil {
		return 0, false
	}
	want := value.Unquote(target)
	for cell, err := range cells {
		if err != nil {
			return 0, false
		}
		s, ok := value.String(cell.Value)
		if !ok || value.Unquote(s) != want {
			continue
		}
		return snmp.RowIndex(cell.OID)
	}
	return 0, false
}

// Lookup walks column on client and resolves the row holding target.
func Lookup(client snmp.Client, column, target string, logger *zap.Logger) (int, bool) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var walkErr error
	cells := func(yield func(snmp.Cell, error) bool) {
		for cell, err := range client.Walk(column) {
			if err != nil {
				walkErr = err
			}
			if !yield(cell, err) {
				return
			}
		}
	}

	idx, ok := ResolveRow(cells, target)
	switch {
	case ok:
		logger.Debug("row resolved", zap.String("column", column), zap.String("match", target), zap.Int("index", idx))
	case walkErr != nil:
		logger.Debug("row lookup aborted", zap.String("column", column), zap.String("match", target), zap.Error(walkErr))
	default:
		logger.Debug("no matching row", zap.String("column", column), zap.String("match", target))
	}
	return idx, ok
}
