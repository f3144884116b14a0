package auth

import (
	"permissioned-registry/domain"
	"permissioned-registry/errors"
	"permissioned-registry/repositories"
)

// Gate answers who may mutate the registry. It only reads.
type Gate struct {
	configRepository repositories.IConfigRepository
	writerRepository repositories.IWriterRepository
}

func NewGate(configRepository repositories.IConfigRepository, writerRepository repositories.IWriterRepository) Gate {
	return Gate{configRepository: configRepository, writerRepository: writerRepository}
}

func (g Gate) IsOwner(id domain.Identity) (bool, error) {
	config, err := g.configRepository.GetConfig()
	if err != nil {
		return false, err
	}
	return config.Owner == id, nil
}

func (g Gate) IsWriter(id domain.Identity) (bool, error) {
	return g.writerRepository.HasWriter(id)
}

// RequireOwner fails with ErrUnauthorized unless id is the owner.
func (g Gate) RequireOwner(id domain.Identity) error {
	ok, err := g.IsOwner(id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrUnauthorized
	}
	return nil
}

// RequireWriter fails with ErrNotAWriter unless id is currently a writer.
func (g Gate) RequireWriter(id domain.Identity) error {
	ok, err := g.IsWriter(id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotAWriter
	}
	return nil
}
