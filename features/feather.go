package features

import (
	"fmt"
	"os"

	"github.com/apache/arrow/go/arrow"
	"github.com/apache/arrow/go/arrow/array"
	"github.com/apache/arrow/go/arrow/ipc"
)

// ReadFeather extracts a binary WKB geometry column and an optional
// integer id column from an Arrow IPC (feather) file. If idColName is
// empty, features are numbered sequentially.
func ReadFeather(path string, geomColName string, idColName string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := ipc.NewFileReader(f)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	// read records into a simple Arrow table
	records := make([]array.Record, r.NumRecords())
	for i := 0; i < r.NumRecords(); i++ {
		records[i], err = r.RecordAt(i)
		if err != nil {
			return nil, err
		}
	}
	t := array.NewTableFromRecords(r.Schema(), records)

	geomColIdxs := r.Schema().FieldIndices(geomColName)
	if geomColIdxs == nil {
		return nil, fmt.Errorf("'%v' column must be present", geomColName)
	}

	// copy WKB values out of the Arrow buffers, which are released with
	// the reader
	wkbs := make([][]byte, t.NumRows())
	i := 0
	for _, chunk := range t.Column(geomColIdxs[0]).Data().Chunks() {
		c, ok := chunk.(*array.Binary)
		if !ok {
			return nil, fmt.Errorf("'%v' column must be a binary WKB column", geomColName)
		}
		for j := 0; j < chunk.Len(); j++ {
			wkbs[i] = append([]byte(nil), c.Value(j)...)
			i++
		}
	}

	ids := make([]uint64, t.NumRows())
	if idColName == "" {
		for i = 0; i < len(ids); i++ {
			ids[i] = uint64(i)
		}
	} else {
		idColIdxs := r.Schema().FieldIndices(idColName)
		if idColIdxs == nil {
			return nil, fmt.Errorf("'%s' column must be present to use as id", idColName)
		}
		i = 0
		for _, chunk := range t.Column(idColIdxs[0]).Data().Chunks() {
			for j := 0; j < chunk.Len(); j++ {
				id, err := getFeatureID(chunk, j)
				if err != nil {
					return nil, err
				}
				ids[i] = id
				i++
			}
		}
	}

	return &Table{ids: ids, wkbs: wkbs}, nil
}

func getFeatureID(chunk array.Interface, i int) (uint64, error) {
	switch chunk.DataType().ID() {
	case arrow.INT32:
		id := chunk.(*array.Int32).Value(i)
		if id < 0 {
			return 0, fmt.Errorf("cannot use column with negative value for id")
		}
		return uint64(id), nil
	case arrow.INT64:
		id := chunk.(*array.Int64).Value(i)
		if id < 0 {
			return 0, fmt.Errorf("cannot use column with negative value for id")
		}
		return uint64(id), nil
	case arrow.UINT32:
		return uint64(chunk.(*array.Uint32).Value(i)), nil
	case arrow.UINT64:
		return chunk.(*array.Uint64).Value(i), nil
	default:
		return 0, fmt.Errorf("cannot use non-integer column for id")
	}
}
