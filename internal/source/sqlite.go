package source

import (
	"database/sql"
	"fmt"
	"iter"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens a read-only connection to the SQLite database at path.
//
// The pool is left open to multiple connections: a merge holds two query
// cursors open at once, interleaving reads between them, so each side needs
// its own connection. Pragmas are applied per connection via the DSN.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, nil
}

// Query yields the first column of each row produced by query, as text.
//
// The query must return rows in the order the merge engine expects,
// i.e. carry an ORDER BY matching the comparator in use. Query does not
// verify this.
type Query struct {
	db    *sql.DB
	query string
	args  []any
	err   error
}

// NewQuery creates a query source. The query is not executed until the
// returned source's Seq is ranged over; each pass re-executes it.
func NewQuery(db *sql.DB, query string, args ...any) *Query {
	return &Query{db: db, query: query, args: args}
}

// Seq returns a fresh single-pass sequence over the query results. The
// rows handle is released when the sequence ends or the consumer stops
// early.
func (q *Query) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		q.err = nil

		rows, err := q.db.Query(q.query, q.args...)
		if err != nil {
			q.err = fmt.Errorf("execute query: %w", err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				q.err = fmt.Errorf("scan row: %w", err)
				return
			}
			if !yield(v) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			q.err = fmt.Errorf("iterate rows: %w", err)
		}
	}
}

// Err reports the first failure of the most recent pass, or nil.
func (q *Query) Err() error {
	return q.err
}
