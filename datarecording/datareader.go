package datarecording

import (
	"database/sql"
	"fmt"
	"reflect"
)

// DataReader reads recorded results back from a database.
type DataReader interface {
	// MapTable establishes a mapping between a database table and a Go
	// struct type. The mapping is required before reading a table.
	MapTable(tableName string, sampleEntry any)

	// ReadAll returns every row of a mapped table, in insertion order.
	ReadAll(tableName string) ([]any, error)

	// Close closes the reader.
	Close() error
}

type sqliteReader struct {
	db      *sql.DB
	typeMap map[string]reflect.Type
}

// NewReader creates a DataReader over the database at path + ".sqlite3".
func NewReader(path string) DataReader {
	db, err := sql.Open("sqlite3", path+".sqlite3")
	if err != nil {
		panic(err)
	}

	return &sqliteReader{
		db:      db,
		typeMap: make(map[string]reflect.Type),
	}
}

// NewReaderWithDB creates a DataReader over an already-open database.
func NewReaderWithDB(db *sql.DB) DataReader {
	return &sqliteReader{
		db:      db,
		typeMap: make(map[string]reflect.Type),
	}
}

func (r *sqliteReader) MapTable(tableName string, sampleEntry any) {
	r.typeMap[tableName] = reflect.TypeOf(sampleEntry)
}

func (r *sqliteReader) ReadAll(tableName string) ([]any, error) {
	structType, ok := r.typeMap[tableName]
	if !ok {
		return nil, fmt.Errorf("no mapping found for table: %s", tableName)
	}

	rows, err := r.db.Query("SELECT * FROM " + tableName + " ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		entry := reflect.New(structType).Elem()

		fields := make([]any, entry.NumField())
		for i := range fields {
			fields[i] = entry.Field(i).Addr().Interface()
		}

		err := rows.Scan(fields...)
		if err != nil {
			return nil, err
		}

		results = append(results, entry.Interface())
	}

	return results, rows.Err()
}

func (r *sqliteReader) Close() error {
	return r.db.Close()
}
