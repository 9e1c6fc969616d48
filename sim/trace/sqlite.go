package trace

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"
)

// SQLiteWriter stores customer records in a SQLite database, one row per
// customer in table "customers". Rows are inserted in batched transactions.
type SQLiteWriter struct {
	db        *sql.DB
	statement *sql.Stmt
	path      string
	closed    bool

	records   []CustomerRecord
	batchSize int
}

// NewSQLiteWriter creates the database file and its schema. It refuses to
// overwrite an existing file.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	if path == "" {
		path = DefaultBaseName() + ".sqlite3"
	}
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("file %s already exists", path)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening trace database: %w", err)
	}

	w := &SQLiteWriter{
		db:        db,
		path:      path,
		batchSize: 10000,
	}
	if err := w.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	w.statement, err = db.Prepare(`
		insert into customers
			(customer_id, arrival_time, service_start, departure_time, burst, queue_depth)
		values (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing trace insert: %w", err)
	}

	atexit.Register(func() {
		if err := w.Close(); err != nil {
			logrus.Errorf("closing trace database %s: %v", w.path, err)
		}
	})
	return w, nil
}

func (w *SQLiteWriter) createTable() error {
	stmts := []string{
		`create table customers
		(
			customer_id    varchar(200) not null,
			arrival_time   integer      not null,
			service_start  integer      not null,
			departure_time integer      not null,
			burst          integer      not null,
			queue_depth    integer      not null
		);`,
		`create index customers_departure_time_index on customers (departure_time);`,
		`create index customers_burst_index on customers (burst);`,
	}
	for _, s := range stmts {
		if _, err := w.db.Exec(s); err != nil {
			return fmt.Errorf("creating trace schema: %w", err)
		}
	}
	return nil
}

// Path returns the database file the writer stores records in.
func (w *SQLiteWriter) Path() string {
	return w.path
}

// Write buffers a record, flushing when the batch is full.
func (w *SQLiteWriter) Write(record CustomerRecord) error {
	if w.closed {
		return fmt.Errorf("trace database %s is closed", w.path)
	}
	w.records = append(w.records, record)
	if len(w.records) >= w.batchSize {
		return w.Flush()
	}
	return nil
}

// Flush inserts all buffered records in a single transaction.
func (w *SQLiteWriter) Flush() error {
	if w.closed || len(w.records) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning trace transaction: %w", err)
	}
	stmt := tx.Stmt(w.statement)
	for _, r := range w.records {
		_, err := stmt.Exec(r.CustomerID, r.ArrivalTime, r.ServiceStart, r.DepartureTime, r.Burst, r.QueueDepth)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting trace record %s: %w", r.CustomerID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing trace transaction: %w", err)
	}

	w.records = nil
	return nil
}

// Close flushes and closes the database. Safe to call more than once.
func (w *SQLiteWriter) Close() error {
	if w.closed {
		return nil
	}
	flushErr := w.Flush()
	w.closed = true
	stmtErr := w.statement.Close()
	if err := w.db.Close(); err != nil {
		return err
	}
	if flushErr != nil {
		return flushErr
	}
	return stmtErr
}
