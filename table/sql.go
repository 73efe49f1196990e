// SPDX-License-Identifier: MIT

package table

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ReadSQL runs query on db and materializes every result row.
// Driver values map as: nil → Null, int64 → Int, float64 → Float,
// bool → Bool, string/[]byte → String, time.Time → RFC 3339 String.
func ReadSQL(ctx context.Context, db *sql.DB, query string, args ...any) (*Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ReadSQL: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("ReadSQL: %w", err)
	}
	t, err := New(names...)
	if err != nil {
		return nil, fmt.Errorf("ReadSQL: %w", err)
	}

	raw := make([]any, len(names))
	ptrs := make([]any, len(names))
	for j := range raw {
		ptrs[j] = &raw[j]
	}
	row := make([]Value, len(names))
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("ReadSQL: row %d: %w", t.Len(), err)
		}
		for j, v := range raw {
			val, err := sqlValue(v)
			if err != nil {
				return nil, fmt.Errorf("ReadSQL: row %d column %q: %w", t.Len(), names[j], err)
			}
			row[j] = val
		}
		if err := t.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ReadSQL: %w", err)
	}

	return t, nil
}

func sqlValue(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case int64:
		return Int(x), nil
	case float64:
		return Float(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case []byte:
		return String(string(x)), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	default:
		return Value{}, fmt.Errorf("%T: %w", v, ErrUnsupportedType)
	}
}
