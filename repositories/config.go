//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=../mocks/mock_config_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"permissioned-registry/codec"
	"permissioned-registry/domain"
	"permissioned-registry/errors"
	"permissioned-registry/storage"

	"github.com/dgraph-io/badger/v4"
)

type IConfigRepository interface {
	SaveConfig(config domain.Config) error
	GetConfig() (domain.Config, error)
}

type ConfigRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConfigRepository(db *badger.DB, log *slog.Logger) ConfigRepository {
	return ConfigRepository{db: db, log: log}
}

// SaveConfig stores the singleton configuration.
// It is written once: a second call fails with ErrAlreadyInstantiated.
func (c ConfigRepository) SaveConfig(config domain.Config) error {
	data, err := codec.Marshal(config)
	if err != nil {
		return errors.Storage("marshal config", err)
	}
	key := storage.ConfigNamespace.Singleton()
	err = c.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return errors.ErrAlreadyInstantiated
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(key, data)
	})
	if errors.Is(err, badger.ErrConflict) {
		return errors.ErrAlreadyInstantiated
	}
	return errors.Storage("save config", err)
}

// GetConfig loads the configuration, ErrNotInstantiated if none was saved.
func (c ConfigRepository) GetConfig() (domain.Config, error) {
	var config domain.Config
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storage.ConfigNamespace.Singleton())
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrNotInstantiated
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return codec.Unmarshal(val, &config)
		})
	})
	if err != nil {
		return domain.Config{}, errors.Storage("load config", err)
	}
	return config, nil
}
