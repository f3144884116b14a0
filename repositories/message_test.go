package repositories

import (
	"log/slog"
	"permissioned-registry/domain"
	"permissioned-registry/errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageRepository_RegisterAndGet(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	record, err := repo.GetMessage("alice")
	req.NoError(err)
	req.Nil(record)

	created, err := repo.RegisterMessage("alice", "hello")
	req.NoError(err)
	req.Equal(domain.MessageRecord{Author: "alice", Content: "hello"}, created)

	record, err = repo.GetMessage("alice")
	req.NoError(err)
	req.NotNil(record)
	req.Equal(created, *record)
}

func TestMessageRepository_WriteOnce(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	_, err := repo.RegisterMessage("alice", "first")
	req.NoError(err)

	_, err = repo.RegisterMessage("alice", "second")
	req.ErrorIs(err, errors.ErrMessageAlreadyExists)

	record, err := repo.GetMessage("alice")
	req.NoError(err)
	req.Equal("first", record.Content)
}

func TestMessageRepository_EmptyContentIsAMessage(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	_, err := repo.RegisterMessage("alice", "")
	req.NoError(err)

	record, err := repo.GetMessage("alice")
	req.NoError(err)
	req.NotNil(record)
	req.Empty(record.Content)

	_, err = repo.RegisterMessage("alice", "late")
	req.ErrorIs(err, errors.ErrMessageAlreadyExists)
}

func TestMessageRepository_ConcurrentRegistrationHasOneWinner(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.RegisterMessage("alice", "hello")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		req.ErrorIs(err, errors.ErrMessageAlreadyExists)
	}
	req.Equal(1, wins)
}
