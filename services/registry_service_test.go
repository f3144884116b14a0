package services

import (
	"context"
	"fmt"
	"log/slog"
	"permissioned-registry/domain"
	"permissioned-registry/errors"
	"permissioned-registry/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type registryMocks struct {
	config   *mocks.MockIConfigRepository
	writers  *mocks.MockIWriterRepository
	messages *mocks.MockIMessageRepository
}

func newMockedService(t *testing.T) (*RegistryService, registryMocks) {
	ctrl := gomock.NewController(t)
	m := registryMocks{
		config:   mocks.NewMockIConfigRepository(ctrl),
		writers:  mocks.NewMockIWriterRepository(ctrl),
		messages: mocks.NewMockIMessageRepository(ctrl),
	}
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewRegistryService(log, m.config, m.writers, m.messages), m
}

func TestRegistryService_Instantiate(t *testing.T) {
	ctx := context.Background()

	t.Run("should make the caller owner when none is given", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().SaveConfig(domain.Config{Owner: "creator"}).Return(nil).Times(1)

		resp, err := svc.Instantiate(ctx, "Creator", domain.InstantiateCommand{})

		req.NoError(err)
		owner, ok := resp.Attribute("owner")
		req.True(ok)
		req.Equal("creator", owner)
	})

	t.Run("should use the explicit owner", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().SaveConfig(domain.Config{Owner: "admin"}).Return(nil).Times(1)

		_, err := svc.Instantiate(ctx, "creator", domain.InstantiateCommand{Owner: lo.ToPtr("admin")})

		req.NoError(err)
	})

	t.Run("should reject an invalid explicit owner before writing", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().SaveConfig(gomock.Any()).Times(0)

		_, err := svc.Instantiate(ctx, "creator", domain.InstantiateCommand{Owner: lo.ToPtr("x")})

		req.ErrorIs(err, errors.ErrInvalidIdentity)
	})

	t.Run("should refuse a second instantiation", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().SaveConfig(gomock.Any()).Return(errors.ErrAlreadyInstantiated).Times(1)

		_, err := svc.Instantiate(ctx, "creator", domain.InstantiateCommand{})

		req.ErrorIs(err, errors.ErrAlreadyInstantiated)
	})
}

func TestRegistryService_AddWriter(t *testing.T) {
	ctx := context.Background()

	t.Run("should add the canonical writer when the owner asks", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().GetConfig().Return(domain.Config{Owner: "owner"}, nil).Times(1)
		m.writers.EXPECT().AddWriter(domain.Identity("alice")).Return(nil).Times(1)

		resp, err := svc.Execute(ctx, "owner", domain.AddWriterCommand{Writer: " ALICE "})

		req.NoError(err)
		req.Equal([]domain.Attribute{
			{Key: "action", Value: "add_writer"},
			{Key: "writer", Value: "alice"},
		}, resp.Attributes)
	})

	t.Run("should reject a non owner without touching the writer set", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().GetConfig().Return(domain.Config{Owner: "owner"}, nil).Times(1)
		m.writers.EXPECT().AddWriter(gomock.Any()).Times(0)

		_, err := svc.Execute(ctx, "mallory", domain.AddWriterCommand{Writer: "bob"})

		req.ErrorIs(err, errors.ErrUnauthorized)
	})

	t.Run("should answer unauthorized to a non owner even with a bad writer", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().GetConfig().Return(domain.Config{Owner: "owner"}, nil).Times(1)

		_, err := svc.Execute(ctx, "mallory", domain.AddWriterCommand{Writer: "!"})

		req.ErrorIs(err, errors.ErrUnauthorized)
	})

	t.Run("should reject an invalid writer from the owner", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().GetConfig().Return(domain.Config{Owner: "owner"}, nil).Times(1)
		m.writers.EXPECT().AddWriter(gomock.Any()).Times(0)

		_, err := svc.Execute(ctx, "owner", domain.AddWriterCommand{Writer: "a b"})

		req.ErrorIs(err, errors.ErrInvalidIdentity)
	})

	t.Run("should reject an invalid caller", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().GetConfig().Times(0)

		_, err := svc.Execute(ctx, "", domain.AddWriterCommand{Writer: "alice"})

		req.ErrorIs(err, errors.ErrInvalidIdentity)
	})

	t.Run("should not write once the request is cancelled", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		m.config.EXPECT().GetConfig().Return(domain.Config{Owner: "owner"}, nil).Times(1)
		m.writers.EXPECT().AddWriter(gomock.Any()).Times(0)

		_, err := svc.Execute(cancelled, "owner", domain.AddWriterCommand{Writer: "alice"})

		req.ErrorIs(err, context.Canceled)
	})

	t.Run("should fail before instantiation", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().GetConfig().Return(domain.Config{}, errors.ErrNotInstantiated).Times(1)

		_, err := svc.Execute(ctx, "owner", domain.AddWriterCommand{Writer: "alice"})

		req.ErrorIs(err, errors.ErrNotInstantiated)
	})
}

func TestRegistryService_RemoveWriter(t *testing.T) {
	ctx := context.Background()

	t.Run("should remove without touching messages", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().GetConfig().Return(domain.Config{Owner: "owner"}, nil).Times(1)
		m.writers.EXPECT().RemoveWriter(domain.Identity("alice")).Return(nil).Times(1)
		m.messages.EXPECT().GetMessage(gomock.Any()).Times(0)
		m.messages.EXPECT().RegisterMessage(gomock.Any(), gomock.Any()).Times(0)

		resp, err := svc.Execute(ctx, "owner", domain.RemoveWriterCommand{Writer: "alice"})

		req.NoError(err)
		action, _ := resp.Attribute("action")
		req.Equal("remove_writer", action)
	})

	t.Run("should reject a non owner", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().GetConfig().Return(domain.Config{Owner: "owner"}, nil).Times(1)
		m.writers.EXPECT().RemoveWriter(gomock.Any()).Times(0)

		_, err := svc.Execute(ctx, "alice", domain.RemoveWriterCommand{Writer: "alice"})

		req.ErrorIs(err, errors.ErrUnauthorized)
	})
}

func TestRegistryService_RegisterMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("should store the message of a current writer", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		record := domain.NewMessageRecord("alice", "hello")
		m.writers.EXPECT().HasWriter(domain.Identity("alice")).Return(true, nil).Times(1)
		m.messages.EXPECT().RegisterMessage(domain.Identity("alice"), "hello").Return(record, nil).Times(1)

		resp, err := svc.Execute(ctx, "alice", domain.RegisterMessageCommand{Content: "hello"})

		req.NoError(err)
		req.Equal(&record, resp.Message)
	})

	t.Run("should reject a caller who is not a writer", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.writers.EXPECT().HasWriter(domain.Identity("bob")).Return(false, nil).Times(1)
		m.messages.EXPECT().RegisterMessage(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Execute(ctx, "bob", domain.RegisterMessageCommand{Content: "hi"})

		req.ErrorIs(err, errors.ErrNotAWriter)
	})

	t.Run("should surface an existing message", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.writers.EXPECT().HasWriter(domain.Identity("alice")).Return(true, nil).Times(1)
		m.messages.EXPECT().RegisterMessage(domain.Identity("alice"), "again").
			Return(domain.MessageRecord{}, errors.ErrMessageAlreadyExists).Times(1)

		_, err := svc.Execute(ctx, "alice", domain.RegisterMessageCommand{Content: "again"})

		req.ErrorIs(err, errors.ErrMessageAlreadyExists)
	})

	t.Run("should propagate storage errors unchanged", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		cause := errors.Storage("has writer", fmt.Errorf("value log corrupted"))
		m.writers.EXPECT().HasWriter(domain.Identity("alice")).Return(false, cause).Times(1)

		_, err := svc.Execute(ctx, "alice", domain.RegisterMessageCommand{Content: "hello"})

		var storageErr *errors.StorageError
		req.True(errors.As(err, &storageErr))
		req.Equal("has writer", storageErr.Op)
	})
}

type unknownCommand struct{ domain.AddWriterCommand }

func TestRegistryService_UnknownOperations(t *testing.T) {
	req := require.New(t)
	svc, _ := newMockedService(t)
	ctx := context.Background()

	_, err := svc.Execute(ctx, "owner", nil)
	req.ErrorIs(err, errors.ErrUnknownOperation)

	_, err = svc.Execute(ctx, "owner", unknownCommand{})
	req.ErrorIs(err, errors.ErrUnknownOperation)

	_, err = svc.Query(ctx, nil)
	req.ErrorIs(err, errors.ErrUnknownOperation)
}

func TestRegistryService_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("should return no message without error", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.messages.EXPECT().GetMessage(domain.Identity("alice")).Return(nil, nil).Times(1)

		resp, err := svc.Query(ctx, domain.GetMessageQuery{Writer: "Alice"})

		req.NoError(err)
		req.Nil(resp.Message)
	})

	t.Run("should validate the queried writer", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.messages.EXPECT().GetMessage(gomock.Any()).Times(0)

		_, err := svc.Query(ctx, domain.GetMessageQuery{Writer: "?"})

		req.ErrorIs(err, errors.ErrInvalidIdentity)
	})

	t.Run("should list writers without authorization", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedService(t)
		m.config.EXPECT().GetConfig().Times(0)
		m.writers.EXPECT().ListWriters().Return([]domain.Identity{"writer-a", "writer-b"}, nil).Times(1)

		resp, err := svc.Query(ctx, domain.GetWritersQuery{})

		req.NoError(err)
		req.Equal([]domain.Identity{"writer-a", "writer-b"}, resp.Writers)
	})
}
