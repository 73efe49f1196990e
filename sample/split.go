// SPDX-License-Identifier: MIT

package sample

import (
	"fmt"

	"github.com/katalvlaran/prepkit/table"
)

// Split partitions a labelled table by its sample column. Both partitions
// keep the original relative row order; rows carrying any other label land
// in neither.
func Split(t *table.Table, sampleCol string) (train, test *table.Table, err error) {
	if t == nil {
		return nil, nil, fmt.Errorf("Split: %w", table.ErrNilTable)
	}
	train, _, err = t.Where(sampleCol, isLabel(Train))
	if err != nil {
		return nil, nil, fmt.Errorf("Split: %w", err)
	}
	test, _, err = t.Where(sampleCol, isLabel(Test))
	if err != nil {
		return nil, nil, fmt.Errorf("Split: %w", err)
	}

	return train, test, nil
}

func isLabel(label string) func(table.Value) bool {
	return func(v table.Value) bool {
		return v.Kind() == table.KindString && v.Text() == label
	}
}
