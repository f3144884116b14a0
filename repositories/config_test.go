package repositories

import (
	"log/slog"
	"permissioned-registry/domain"
	"permissioned-registry/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigRepository_SaveOnce(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewConfigRepository(db, slog.Default())

	_, err := repo.GetConfig()
	req.ErrorIs(err, errors.ErrNotInstantiated)

	req.NoError(repo.SaveConfig(domain.Config{Owner: "owner"}))

	config, err := repo.GetConfig()
	req.NoError(err)
	req.Equal(domain.Identity("owner"), config.Owner)

	// The owner never changes after instantiation
	err = repo.SaveConfig(domain.Config{Owner: "intruder"})
	req.ErrorIs(err, errors.ErrAlreadyInstantiated)

	config, err = repo.GetConfig()
	req.NoError(err)
	req.Equal(domain.Identity("owner"), config.Owner)
}
