//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"permissioned-registry/codec"
	"permissioned-registry/domain"
	"permissioned-registry/errors"
	"permissioned-registry/storage"

	"github.com/dgraph-io/badger/v4"
)

// IMessageRepository stores at most one message per identity.
// It has no opinion on writer status.
type IMessageRepository interface {
	RegisterMessage(id domain.Identity, content string) (domain.MessageRecord, error)
	GetMessage(id domain.Identity) (*domain.MessageRecord, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// RegisterMessage persists a message under "messages:{identity}".
// The existence check and the write share one read-write transaction:
//  1. An existing record fails with ErrMessageAlreadyExists and is left untouched.
//  2. If a concurrent transaction committed the same key first, badger aborts
//     ours with ErrConflict, which is reported the same way once the winner is visible.
func (m MessageRepository) RegisterMessage(id domain.Identity, content string) (domain.MessageRecord, error) {
	record := domain.NewMessageRecord(id, content)
	data, err := codec.Marshal(record)
	if err != nil {
		return domain.MessageRecord{}, errors.Storage("marshal message", err)
	}

	key := storage.MessagesNamespace.Key(id)
	err = m.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return errors.ErrMessageAlreadyExists
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(key, data)
	})

	if errors.Is(err, badger.ErrConflict) {
		m.log.Warn("Concurrent message registration", "author", id)
		if existing, getErr := m.GetMessage(id); getErr == nil && existing != nil {
			return domain.MessageRecord{}, errors.ErrMessageAlreadyExists
		}
	}
	if err != nil {
		return domain.MessageRecord{}, errors.Storage("register message", err)
	}
	return record, nil
}

// GetMessage returns nil without error when the identity has no message.
func (m MessageRepository) GetMessage(id domain.Identity) (*domain.MessageRecord, error) {
	var record *domain.MessageRecord
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storage.MessagesNamespace.Key(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var stored domain.MessageRecord
			if err := codec.Unmarshal(val, &stored); err != nil {
				return err
			}
			record = &stored
			return nil
		})
	})
	if err != nil {
		return nil, errors.Storage("get message", err)
	}
	return record, nil
}
