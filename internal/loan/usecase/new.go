package usecase

import (
	"library-circulation/internal/catalog"
	"library-circulation/internal/identity"
	"library-circulation/internal/loan/repository"
	pkgLog "library-circulation/pkg/log"
)

// implUseCase is the private implementation of loan.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	catalog  catalog.Provider
	identity identity.Directory
}

// New creates a new circulation UseCase implementation.
func New(l pkgLog.Logger, repo repository.Repository, cat catalog.Provider, dir identity.Directory) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		catalog:  cat,
		identity: dir,
	}
}
