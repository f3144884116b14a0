//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=../mocks/mock_writer_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"permissioned-registry/domain"
	"permissioned-registry/errors"
	"permissioned-registry/storage"

	"github.com/dgraph-io/badger/v4"
)

// IWriterRepository is the writer set. It does no authorization:
// callers check ownership before mutating it.
type IWriterRepository interface {
	AddWriter(id domain.Identity) error
	RemoveWriter(id domain.Identity) error
	HasWriter(id domain.Identity) (bool, error)
	ListWriters() ([]domain.Identity, error)
}

type WriterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewWriterRepository(db *badger.DB, log *slog.Logger) WriterRepository {
	return WriterRepository{db: db, log: log}
}

// AddWriter stores the key "writers:{identity}" with an empty value.
// Presence of the key is membership, so adding twice is harmless.
func (w WriterRepository) AddWriter(id domain.Identity) error {
	err := w.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storage.WritersNamespace.Key(id), nil)
	})
	return errors.Storage("add writer", err)
}

// RemoveWriter deletes the membership key. Removing an absent writer is a no-op.
func (w WriterRepository) RemoveWriter(id domain.Identity) error {
	err := w.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(storage.WritersNamespace.Key(id))
	})
	return errors.Storage("remove writer", err)
}

func (w WriterRepository) HasWriter(id domain.Identity) (bool, error) {
	found := false
	err := w.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(storage.WritersNamespace.Key(id))
		switch {
		case err == nil:
			found = true
			return nil
		case errors.Is(err, badger.ErrKeyNotFound):
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, errors.Storage("has writer", err)
	}
	return found, nil
}

// ListWriters returns every member in ascending identity order.
// The iteration is key-only: membership carries no value.
func (w WriterRepository) ListWriters() ([]domain.Identity, error) {
	writers := []domain.Identity{}
	err := w.db.View(func(txn *badger.Txn) error {
		prefix := storage.WritersNamespace.Prefix()
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id, ok := storage.WritersNamespace.IdentityFromKey(it.Item().KeyCopy(nil))
			if !ok {
				continue
			}
			writers = append(writers, id)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Storage("list writers", err)
	}
	w.log.Debug("Listed writers", "count", len(writers))
	return writers, nil
}
