package services

import (
	"context"
	"fmt"
	"log/slog"
	"permissioned-registry/auth"
	"permissioned-registry/domain"
	"permissioned-registry/errors"
	"permissioned-registry/repositories"
	"sync"

	"github.com/google/uuid"
)

type IRegistryService interface {
	Instantiate(ctx context.Context, caller string, cmd domain.InstantiateCommand) (domain.Response, error)
	Execute(ctx context.Context, caller string, cmd domain.ExecuteCommand) (domain.Response, error)
	Query(ctx context.Context, q domain.Query) (domain.QueryResponse, error)
	GetMessage(ctx context.Context, writer string) (*domain.MessageRecord, error)
	GetWriters(ctx context.Context) ([]domain.Identity, error)
}

// RegistryService runs each request straight through: validate, authorize,
// delegate to a repository, build the response. A failure at any step
// returns before anything is written.
type RegistryService struct {
	// mu admits one mutating request at a time.
	mu                sync.Mutex
	log               *slog.Logger
	gate              auth.Gate
	configRepository  repositories.IConfigRepository
	writerRepository  repositories.IWriterRepository
	messageRepository repositories.IMessageRepository
}

func NewRegistryService(
	log *slog.Logger,
	configRepository repositories.IConfigRepository,
	writerRepository repositories.IWriterRepository,
	messageRepository repositories.IMessageRepository,
) *RegistryService {
	return &RegistryService{
		log:               log,
		gate:              auth.NewGate(configRepository, writerRepository),
		configRepository:  configRepository,
		writerRepository:  writerRepository,
		messageRepository: messageRepository,
	}
}

// Instantiate stores the owner: the explicit owner when given, the caller otherwise.
func (s *RegistryService) Instantiate(ctx context.Context, caller string, cmd domain.InstantiateCommand) (domain.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.requestLogger(domain.ActionInstantiate, caller)

	sender, err := auth.ValidateIdentity(caller)
	if err != nil {
		return s.fail(log, err)
	}
	owner := sender
	if cmd.Owner != nil {
		if owner, err = auth.ValidateIdentity(*cmd.Owner); err != nil {
			return s.fail(log, err)
		}
	}
	if err = ctx.Err(); err != nil {
		return s.fail(log, err)
	}
	if err = s.configRepository.SaveConfig(domain.Config{Owner: owner}); err != nil {
		return s.fail(log, err)
	}

	log.Info("Registry instantiated", "owner", owner)
	return domain.NewResponse().
		AddAttribute("action", domain.ActionInstantiate).
		AddAttribute("owner", owner.String()), nil
}

// Execute applies a state-changing command on behalf of caller.
func (s *RegistryService) Execute(ctx context.Context, caller string, cmd domain.ExecuteCommand) (domain.Response, error) {
	if cmd == nil {
		return domain.Response{}, errors.ErrUnknownOperation
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.requestLogger(cmd.Action(), caller)

	sender, err := auth.ValidateIdentity(caller)
	if err != nil {
		return s.fail(log, err)
	}

	var response domain.Response
	switch c := cmd.(type) {
	case domain.AddWriterCommand:
		response, err = s.addWriter(ctx, sender, c)
	case domain.RemoveWriterCommand:
		response, err = s.removeWriter(ctx, sender, c)
	case domain.RegisterMessageCommand:
		response, err = s.registerMessage(ctx, sender, c)
	default:
		err = fmt.Errorf("%w: %T", errors.ErrUnknownOperation, cmd)
	}
	if err != nil {
		return s.fail(log, err)
	}

	log.Info("Command applied")
	return response, nil
}

// Ownership is checked before the writer argument is validated, so a
// non-owner is always told Unauthorized whatever they pass.
func (s *RegistryService) addWriter(ctx context.Context, sender domain.Identity, cmd domain.AddWriterCommand) (domain.Response, error) {
	if err := s.gate.RequireOwner(sender); err != nil {
		return domain.Response{}, err
	}
	writer, err := auth.ValidateIdentity(cmd.Writer)
	if err != nil {
		return domain.Response{}, err
	}
	if err = ctx.Err(); err != nil {
		return domain.Response{}, err
	}
	if err = s.writerRepository.AddWriter(writer); err != nil {
		return domain.Response{}, err
	}
	return domain.NewResponse().
		AddAttribute("action", domain.ActionAddWriter).
		AddAttribute("writer", writer.String()), nil
}

// removeWriter leaves any message the writer registered in place.
func (s *RegistryService) removeWriter(ctx context.Context, sender domain.Identity, cmd domain.RemoveWriterCommand) (domain.Response, error) {
	if err := s.gate.RequireOwner(sender); err != nil {
		return domain.Response{}, err
	}
	writer, err := auth.ValidateIdentity(cmd.Writer)
	if err != nil {
		return domain.Response{}, err
	}
	if err = ctx.Err(); err != nil {
		return domain.Response{}, err
	}
	if err = s.writerRepository.RemoveWriter(writer); err != nil {
		return domain.Response{}, err
	}
	return domain.NewResponse().
		AddAttribute("action", domain.ActionRemoveWriter).
		AddAttribute("writer", writer.String()), nil
}

func (s *RegistryService) registerMessage(ctx context.Context, sender domain.Identity, cmd domain.RegisterMessageCommand) (domain.Response, error) {
	if err := s.gate.RequireWriter(sender); err != nil {
		return domain.Response{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Response{}, err
	}
	record, err := s.messageRepository.RegisterMessage(sender, cmd.Content)
	if err != nil {
		return domain.Response{}, err
	}
	response := domain.NewResponse().AddAttribute("action", domain.ActionRegisterMessage)
	response.Message = &record
	return response, nil
}

// Query answers read-only requests. Anyone may query.
func (s *RegistryService) Query(ctx context.Context, q domain.Query) (domain.QueryResponse, error) {
	s.log.Debug("Query received", "query", domain.QueryName(q))
	switch query := q.(type) {
	case domain.GetMessageQuery:
		record, err := s.GetMessage(ctx, query.Writer)
		if err != nil {
			return domain.QueryResponse{}, err
		}
		return domain.QueryResponse{Message: record}, nil
	case domain.GetWritersQuery:
		writers, err := s.GetWriters(ctx)
		if err != nil {
			return domain.QueryResponse{}, err
		}
		return domain.QueryResponse{Writers: writers}, nil
	default:
		return domain.QueryResponse{}, fmt.Errorf("%w: %T", errors.ErrUnknownOperation, q)
	}
}

// GetMessage returns nil without error when writer has no message.
func (s *RegistryService) GetMessage(_ context.Context, writer string) (*domain.MessageRecord, error) {
	id, err := auth.ValidateIdentity(writer)
	if err != nil {
		return nil, err
	}
	return s.messageRepository.GetMessage(id)
}

func (s *RegistryService) GetWriters(_ context.Context) ([]domain.Identity, error) {
	return s.writerRepository.ListWriters()
}

func (s *RegistryService) requestLogger(action, caller string) *slog.Logger {
	return s.log.With("request_id", uuid.NewString(), "action", action, "caller", caller)
}

func (s *RegistryService) fail(log *slog.Logger, err error) (domain.Response, error) {
	var storageErr *errors.StorageError
	if errors.As(err, &storageErr) {
		log.Error("Request aborted", "error", err)
	} else {
		log.Warn("Request rejected", "error", err)
	}
	return domain.Response{}, err
}
