package storage

import (
	"fmt"
	"log/slog"
	"permissioned-registry/errors"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Open opens (or creates) the badger database at path.
// Badger holds a directory lock, so a second process fails fast instead of
// interleaving requests with the first one.
func Open(path string, log *slog.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLoggingLevel(badger.WARNING).
		WithLogger(newBadgerLogger(log))
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Storage("open", err)
	}
	return db, nil
}

// OpenInMemory opens a throwaway database, used as the substitute store in tests.
func OpenInMemory() (*badger.DB, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, errors.Storage("open", err)
	}
	return db, nil
}

// Row is one raw entry of a namespace.
type Row struct {
	Key   string
	Value []byte
}

// Dump returns every entry of ns in key order. The config singleton is
// returned as the only row of ConfigNamespace.
func Dump(db *badger.DB, ns Namespace) ([]Row, error) {
	var rows []Row
	err := db.View(func(txn *badger.Txn) error {
		if ns == ConfigNamespace {
			item, err := txn.Get(ns.Singleton())
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			rows = append(rows, Row{Key: string(item.Key()), Value: value})
			return nil
		}

		prefix := ns.Prefix()
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			rows = append(rows, Row{Key: string(item.KeyCopy(nil)), Value: value})
		}
		return nil
	})
	if err != nil {
		return nil, errors.Storage("dump "+string(ns), err)
	}
	return rows, nil
}

// badgerLogger routes badger's internal logging into slog.
type badgerLogger struct {
	log *slog.Logger
}

func newBadgerLogger(log *slog.Logger) badger.Logger {
	if log == nil {
		return nil
	}
	return badgerLogger{log: log.With("component", "badger")}
}

func (b badgerLogger) Errorf(format string, args ...any) {
	b.log.Error(trimFormat(format, args))
}

func (b badgerLogger) Warningf(format string, args ...any) {
	b.log.Warn(trimFormat(format, args))
}

func (b badgerLogger) Infof(format string, args ...any) {
	b.log.Info(trimFormat(format, args))
}

func (b badgerLogger) Debugf(format string, args ...any) {
	b.log.Debug(trimFormat(format, args))
}

// badger terminates its log lines with a newline, slog adds its own.
func trimFormat(format string, args []any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
