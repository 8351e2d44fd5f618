package wkbstore

import (
	"bytes"
	"path/filepath"
	"testing"
)

func Test_WriteReadFeatures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")

	db, err := NewWriter(path, 2)
	if err != nil {
		t.Fatalf("could not create writer: %v", err)
	}
	defer db.Close()

	if err := db.WriteMetadata("test", "description", 3, [4]float64{0, 0, 1, 1}); err != nil {
		t.Fatalf("could not write metadata: %v", err)
	}

	wkbs := map[uint64][]byte{
		1: {0x01, 0x02, 0x03},
		2: {0x04},
		3: {0x05, 0x06},
	}
	for fid, wkb := range wkbs {
		if err := db.WriteFeature(fid, wkb); err != nil {
			t.Fatalf("could not write feature %v: %v", fid, err)
		}
	}

	con, err := db.GetConnection()
	if err != nil {
		t.Fatalf("could not get connection: %v", err)
	}
	defer db.CloseConnection(con)

	count, err := CountFeatures(con)
	if err != nil {
		t.Fatalf("could not count features: %v", err)
	}
	if count != len(wkbs) {
		t.Errorf("feature count %v does not match expected value %v", count, len(wkbs))
	}

	for fid, wkb := range wkbs {
		data, err := ReadFeature(con, fid)
		if err != nil {
			t.Fatalf("could not read feature %v: %v", fid, err)
		}
		if !bytes.Equal(data, wkb) {
			t.Errorf("feature %v data %v does not match expected value %v", fid, data, wkb)
		}
	}

	if data, err := ReadFeature(con, 99); err != nil || data != nil {
		t.Errorf("missing feature should read as nil (data=%v, err=%v)", data, err)
	}
}

func Test_DuplicateFeatureID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")

	db, err := NewWriter(path, 1)
	if err != nil {
		t.Fatalf("could not create writer: %v", err)
	}
	defer db.Close()

	if err := db.WriteFeature(1, []byte{0x01}); err != nil {
		t.Fatalf("could not write feature: %v", err)
	}
	if err := db.WriteFeature(1, []byte{0x02}); err == nil {
		t.Error("duplicate feature id should be rejected by the unique index")
	}
}
