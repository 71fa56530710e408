// Package snapshot persists whole tables as self-contained binary
// values: name, schema, key and tuples. The primary-key index is not
// persisted; it is rebuilt while tuples are re-inserted on load.
package snapshot

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"tabula/pkg/dberr"
	"tabula/pkg/logging"
	"tabula/pkg/table"
	"tabula/pkg/tuple"
	"tabula/pkg/types"
)

// Store is the persistence collaborator of the kernel: opaque
// whole-table load and save. Failures are reported to the caller, never
// fatal to the process.
type Store interface {
	Load(name string) (*table.Table, error)
	Save(t *table.Table) error
}

const (
	snapshotMagic = "TABSNAP1"
	snapshotExt   = ".tbl"
)

// FileStore keeps one snapshot file per table under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+snapshotExt)
}

// Save writes the table's snapshot, replacing any previous one.
func (s *FileStore) Save(t *table.Table) error {
	logging.Debug("save snapshot", "table", t.Name(), "dir", s.dir)

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return errors.Wrap(err, "create snapshot directory")
	}

	file, err := os.Create(s.path(t.Name()))
	if err != nil {
		return errors.Wrapf(err, "create snapshot for table %q", t.Name())
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := writeSnapshot(w, t); err != nil {
		return errors.Wrapf(err, "write snapshot for table %q", t.Name())
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "flush snapshot for table %q", t.Name())
	}
	return nil
}

// Load reads the snapshot with the given name back into a table. A
// missing snapshot is a not-found error.
func (s *FileStore) Load(name string) (*table.Table, error) {
	logging.Debug("load snapshot", "table", name, "dir", s.dir)

	file, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dberr.Newf(dberr.CodeNotFound, "snapshot %q does not exist", name)
		}
		return nil, errors.Wrapf(err, "open snapshot %q", name)
	}
	defer file.Close()

	t, err := readSnapshot(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Wrapf(err, "read snapshot %q", name)
	}
	return t, nil
}

func writeSnapshot(w io.Writer, t *table.Table) error {
	if _, err := w.Write([]byte(snapshotMagic)); err != nil {
		return err
	}
	if err := writeString(w, t.Name()); err != nil {
		return err
	}

	desc := t.TupleDesc()
	if err := writeCount(w, desc.NumFields()); err != nil {
		return err
	}
	for i := 0; i < desc.NumFields(); i++ {
		name, _ := desc.FieldName(i)
		fieldType, _ := desc.TypeAtIndex(i)
		if err := writeString(w, name); err != nil {
			return err
		}
		if _, err := w.Write([]byte{byte(fieldType)}); err != nil {
			return err
		}
	}

	keyAttrs := t.KeyAttrs()
	if err := writeCount(w, len(keyAttrs)); err != nil {
		return err
	}
	for _, attr := range keyAttrs {
		if err := writeString(w, attr); err != nil {
			return err
		}
	}

	tuples := t.Tuples()
	if err := writeCount(w, len(tuples)); err != nil {
		return err
	}
	for _, tup := range tuples {
		for i := 0; i < desc.NumFields(); i++ {
			field, err := tup.GetField(i)
			if err != nil {
				return err
			}
			if err := field.Serialize(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func readSnapshot(r io.Reader) (*table.Table, error) {
	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, err
	}
	if string(magic) != snapshotMagic {
		return nil, errors.Errorf("bad snapshot header %q", magic)
	}

	name, err := readString(r)
	if err != nil {
		return nil, err
	}

	numFields, err := readCount(r)
	if err != nil {
		return nil, err
	}
	fieldNames := make([]string, numFields)
	fieldTypes := make([]types.Type, numFields)
	for i := 0; i < numFields; i++ {
		if fieldNames[i], err = readString(r); err != nil {
			return nil, err
		}
		typeByte := make([]byte, 1)
		if _, err := io.ReadFull(r, typeByte); err != nil {
			return nil, err
		}
		fieldTypes[i] = types.Type(typeByte[0])
	}

	numKeys, err := readCount(r)
	if err != nil {
		return nil, err
	}
	keyAttrs := make([]string, numKeys)
	for i := 0; i < numKeys; i++ {
		if keyAttrs[i], err = readString(r); err != nil {
			return nil, err
		}
	}

	desc, err := tuple.NewTupleDesc(fieldTypes, fieldNames)
	if err != nil {
		return nil, err
	}
	t, err := table.NewTable(name, desc, keyAttrs)
	if err != nil {
		return nil, err
	}

	numTuples, err := readCount(r)
	if err != nil {
		return nil, err
	}
	for n := 0; n < numTuples; n++ {
		tup := tuple.NewTuple(desc)
		for i := 0; i < numFields; i++ {
			field, err := types.ParseField(r, fieldTypes[i])
			if err != nil {
				return nil, err
			}
			if err := tup.SetField(i, field); err != nil {
				return nil, err
			}
		}
		if err := t.Insert(tup); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func writeCount(w io.Writer, n int) error {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(n)) // #nosec G115
	_, err := w.Write(bytes)
	return err
}

func readCount(r io.Reader) (int, error) {
	bytes := make([]byte, 4)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return 0, err
	}
	return int(binary.BigEndian.Uint32(bytes)), nil
}

func writeString(w io.Writer, s string) error {
	if err := writeCount(w, len(s)); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	length, err := readCount(r)
	if err != nil {
		return "", err
	}
	bytes := make([]byte, length)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return "", err
	}
	return string(bytes), nil
}
