package repository

import (
	"database/sql"
	"sort"

	"aaquestions/models"
)

// rowTarget is implemented by pointers to entities that can be hydrated from
// a named-column row.
type rowTarget[T any] interface {
	*T
	TableName() string
	Columns() map[string]any
}

// decodeRows hydrates rows into entities, stopping after limit rows when
// limit is positive. Every column the entity declares must be present in the
// result set; extra columns are skipped. Scan failures (NULL into a non-null
// field, text into an integer) surface as *models.DecodeError.
func decodeRows[T any, PT rowTarget[T]](rows *sql.Rows, limit int) ([]*T, error) {
	var probe T
	table := PT(&probe).TableName()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &models.DecodeError{Table: table, Err: err}
	}
	if err := requireColumns(table, cols, PT(&probe).Columns()); err != nil {
		return nil, err
	}

	out := make([]*T, 0)
	for rows.Next() {
		item := new(T)
		fields := PT(item).Columns()

		dest := make([]any, len(cols))
		for i, c := range cols {
			if f, ok := fields[c]; ok {
				dest[i] = f
			} else {
				dest[i] = new(any)
			}
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &models.DecodeError{Table: table, Err: err}
		}

		out = append(out, item)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func requireColumns(table string, cols []string, fields map[string]any) error {
	present := make(map[string]bool, len(cols))
	for _, c := range cols {
		present[c] = true
	}

	missing := make([]string, 0)
	for name := range fields {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &models.DecodeError{Table: table, Column: missing[0], Err: models.ErrMissingColumn}
}
