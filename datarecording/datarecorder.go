// Package datarecording persists simulation results into SQLite databases.
//
// A recorder owns one database file per run. Tables are declared from
// sample structs and rows are buffered in memory, so inserting on the
// simulation hot path stays cheap; buffered rows reach the database on
// Flush, when the batch limit is hit, and at process exit.
package datarecording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// Recorders store results in SQLite files.
	_ "github.com/mattn/go-sqlite3"
	"github.com/tebeka/atexit"
)

// DataRecorder is a backend that can record and store simulation results.
type DataRecorder interface {
	// CreateTable creates a table whose columns are the fields of the
	// sample entry.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers one row for a table that already exists. The entry
	// must have the same type as the table's sample entry.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all created tables.
	ListTables() []string

	// Flush writes all buffered rows into the database.
	Flush()

	// Close flushes and releases the database.
	Close()
}

// NewRecorder creates a DataRecorder writing to path + ".sqlite3". The file
// must not exist yet. Buffered rows are flushed at process exit.
func NewRecorder(path string) DataRecorder {
	w := &sqliteWriter{
		path:      path,
		batchSize: 4096,
		tables:    make(map[string]*table),
	}

	w.open()

	atexit.Register(func() { w.Flush() })

	return w
}

// NewRecorderWithDB creates a DataRecorder over an already-open database.
func NewRecorderWithDB(db *sql.DB) DataRecorder {
	w := &sqliteWriter{
		db:        db,
		batchSize: 4096,
		tables:    make(map[string]*table),
	}

	atexit.Register(func() { w.Flush() })

	return w
}

type table struct {
	structType reflect.Type
	columns    []string
	rows       []any
}

type sqliteWriter struct {
	db *sql.DB

	path      string
	tables    map[string]*table
	batchSize int
	pending   int
}

func (w *sqliteWriter) open() {
	filename := w.path + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	// Connect right away so the file exists from now on.
	err = db.Ping()
	if err != nil {
		panic(err)
	}

	w.db = db
}

func (w *sqliteWriter) CreateTable(tableName string, sampleEntry any) {
	mustBeFlatStruct(sampleEntry)

	columns := structs.Names(sampleEntry)
	stmt := "CREATE TABLE " + tableName +
		" (\n\t" + strings.Join(columns, ",\n\t") + "\n);"
	w.mustExecute(stmt)

	w.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
		columns:    columns,
	}
}

func (w *sqliteWriter) InsertData(tableName string, entry any) {
	t, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != t.structType {
		panic(fmt.Sprintf("entry type %T does not match table %s",
			entry, tableName))
	}

	t.rows = append(t.rows, entry)

	w.pending++
	if w.pending >= w.batchSize {
		w.Flush()
	}
}

func (w *sqliteWriter) ListTables() []string {
	names := make([]string, 0, len(w.tables))
	for name := range w.tables {
		names = append(names, name)
	}

	return names
}

func (w *sqliteWriter) Flush() {
	if w.pending == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for tableName, t := range w.tables {
		if len(t.rows) == 0 {
			continue
		}

		w.insertRows(tableName, t)
		t.rows = nil
	}

	w.pending = 0
}

func (w *sqliteWriter) insertRows(tableName string, t *table) {
	placeholders := make([]string, len(t.columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	stmt, err := w.db.Prepare("INSERT INTO " + tableName +
		" VALUES (" + strings.Join(placeholders, ", ") + ")")
	if err != nil {
		panic(err)
	}
	defer stmt.Close()

	for _, row := range t.rows {
		v := reflect.ValueOf(row)

		values := make([]any, 0, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			values = append(values, v.Field(i).Interface())
		}

		_, err := stmt.Exec(values...)
		if err != nil {
			panic(err)
		}
	}
}

func (w *sqliteWriter) Close() {
	w.Flush()

	err := w.db.Close()
	if err != nil {
		panic(err)
	}
}

func (w *sqliteWriter) mustExecute(query string) sql.Result {
	res, err := w.db.Exec(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

func mustBeFlatStruct(entry any) {
	t := reflect.TypeOf(entry)
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("sample entry must be a struct, got %T", entry))
	}

	for i := 0; i < t.NumField(); i++ {
		switch t.Field(i).Type.Kind() {
		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16,
			reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16,
			reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64,
			reflect.String:
		default:
			panic(fmt.Sprintf("field %s has unsupported type %s",
				t.Field(i).Name, t.Field(i).Type))
		}
	}
}
