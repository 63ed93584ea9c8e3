package tabular

import (
	"database/sql"
	"fmt"
	"time"
)

// FromSQLRows drains a database/sql result set into a Frame. Column order
// follows the query's select list, so queries feeding charts should select
// the label column first. []byte values (how lib/pq reports text) become
// strings; time.Time values pass through and serialize as dates.
func FromSQLRows(rows *sql.Rows) (*Frame, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var data [][]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range values {
			values[i] = normalizeSQLValue(v)
		}
		data = append(data, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return NewFrame(columns, data)
}

func normalizeSQLValue(v interface{}) interface{} {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return val
	case nil:
		return ""
	default:
		return v
	}
}
