// Package wkbstore persists feature geometries as WKB blobs in a sqlite
// database, one row per feature, with a small metadata table describing
// the dataset.
package wkbstore

import (
	"context"
	"fmt"
	"os"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
)

var emptyContext context.Context

const init_sql = `
CREATE TABLE metadata (name text, value text);
CREATE TABLE features (fid integer, geometry blob);
CREATE UNIQUE INDEX metadata_name on metadata (name);
CREATE UNIQUE INDEX feature_fid on features (fid);
`

// Writer is a pooled sqlite writer. Each worker goroutine should hold its
// own connection from GetConnection for the duration of its writes.
type Writer struct {
	pool *sqlitex.Pool
}

// NewWriter creates the database at path, overwriting any existing file.
func NewWriter(path string, poolsize int) (*Writer, error) {
	// always overwrite
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		os.Remove(path)
	}

	pool, err := sqlitex.Open(path, sqlite.SQLITE_OPEN_CREATE|sqlite.SQLITE_OPEN_READWRITE|sqlite.SQLITE_OPEN_NOMUTEX|sqlite.SQLITE_OPEN_WAL, poolsize)
	if err != nil {
		return nil, err
	}

	db := &Writer{
		pool: pool,
	}

	con, err := db.GetConnection()
	if err != nil {
		return nil, err
	}
	defer db.CloseConnection(con)

	if err := sqlitex.ExecScript(con, init_sql); err != nil {
		return nil, fmt.Errorf("could not initialize database: %q", err)
	}

	return db, nil
}

func (db *Writer) Close() {
	if db.pool != nil {
		// make sure that anything pending is written
		con, err := db.GetConnection()
		if err != nil {
			panic(err)
		}
		err = sqlitex.Exec(con, `PRAGMA wal_checkpoint;`, nil)
		if err != nil {
			panic(err)
		}
		db.CloseConnection(con)

		db.pool.Close()
	}
}

// GetConnection gets a sqlite.Conn from the open connection pool.
// CloseConnection(con) must be called to release the connection.
func (db *Writer) GetConnection() (*sqlite.Conn, error) {
	con := db.pool.Get(emptyContext)
	if con == nil {
		return nil, fmt.Errorf("connection could not be opened")
	}
	return con, nil
}

// CloseConnection returns an open sqlite.Conn to the pool.
func (db *Writer) CloseConnection(con *sqlite.Conn) {
	if con != nil {
		db.pool.Put(con)
	}
}

func writeMetadataItem(con *sqlite.Conn, key string, value interface{}) error {
	return sqlitex.Exec(con, "INSERT INTO metadata (name,value) VALUES (?, ?)", nil, key, value)
}

// WriteMetadata records the dataset description. bounds is
// xmin,ymin,xmax,ymax in source coordinates.
func (db *Writer) WriteMetadata(name string, description string, count int, bounds [4]float64) (err error) {
	if db == nil || db.pool == nil {
		return fmt.Errorf("cannot write to closed database")
	}

	con, e := db.GetConnection()
	if e != nil {
		return e
	}
	defer db.CloseConnection(con)

	// create savepoint
	defer sqlitex.Save(con)(&err)

	if err = writeMetadataItem(con, "name", name); err != nil {
		return err
	}
	if err = writeMetadataItem(con, "description", description); err != nil {
		return err
	}
	if err = writeMetadataItem(con, "count", count); err != nil {
		return err
	}
	if err = writeMetadataItem(con, "bounds", fmt.Sprintf("%.5f,%.5f,%.5f,%.5f", bounds[0], bounds[1], bounds[2], bounds[3])); err != nil {
		return err
	}
	if err = writeMetadataItem(con, "format", "wkb"); err != nil {
		return err
	}
	if err = writeMetadataItem(con, "version", 1); err != nil {
		return err
	}

	return nil
}

// WriteFeature writes one feature using a fresh pool connection.
func (db *Writer) WriteFeature(fid uint64, wkb []byte) error {
	con, err := db.GetConnection()
	if err != nil {
		return err
	}
	defer db.CloseConnection(con)

	return WriteFeature(con, fid, wkb)
}

// WriteFeature writes one feature to the open connection.
func WriteFeature(con *sqlite.Conn, fid uint64, wkb []byte) error {
	err := sqlitex.Exec(con, "INSERT INTO features (fid, geometry) VALUES (?, ?)", nil, fid, wkb)
	if err != nil {
		return fmt.Errorf("could not write feature %v: %q", fid, err)
	}
	return nil
}

// ReadFeature returns the stored WKB for a feature, or nil if the feature
// does not exist.
func ReadFeature(con *sqlite.Conn, fid uint64) ([]byte, error) {
	var data []byte
	err := sqlitex.Exec(con, "SELECT geometry FROM features WHERE fid = ?", func(stmt *sqlite.Stmt) error {
		buf := make([]byte, stmt.ColumnLen(0))
		stmt.ColumnBytes(0, buf)
		data = buf
		return nil
	}, fid)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// CountFeatures returns the number of stored features.
func CountFeatures(con *sqlite.Conn) (int, error) {
	count := 0
	err := sqlitex.Exec(con, "SELECT count(*) FROM features", func(stmt *sqlite.Stmt) error {
		count = stmt.ColumnInt(0)
		return nil
	})
	return count, err
}
