package usecase

import (
	"context"
	"fmt"

	"github.com/rfagner/filmes-api/internal/data/repository"
	"github.com/rfagner/filmes-api/internal/dto/request"
	"github.com/rfagner/filmes-api/internal/dto/response"
	"github.com/rfagner/filmes-api/pkg/jsonpatch"
	"github.com/rfagner/filmes-api/pkg/utils"

	"go.uber.org/zap"
)

type FilmeService interface {
	List(ctx context.Context, params *request.ListParams) ([]response.FilmeResponse, int64, error)
	GetByID(ctx context.Context, id int64) (*response.FilmeResponse, error)
	Create(ctx context.Context, req *request.FilmeRequest) (*response.FilmeResponse, error)
	Update(ctx context.Context, id int64, req *request.FilmeUpdateRequest) error
	Patch(ctx context.Context, id int64, patch jsonpatch.Patch) error
	Delete(ctx context.Context, id int64) error
}

type filmeService struct {
	repo repository.FilmeRepository
	log  *zap.Logger
}

func NewFilmeService(repo repository.FilmeRepository, log *zap.Logger) FilmeService {
	return &filmeService{
		repo: repo,
		log:  log.With(zap.String("service", "filme")),
	}
}

func (s *filmeService) List(ctx context.Context, params *request.ListParams) ([]response.FilmeResponse, int64, error) {
	filmes, err := s.repo.FindAll(ctx, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list filmes: %w", err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count filmes: %w", err)
	}

	filmeResponses := make([]response.FilmeResponse, len(filmes))
	for i, filme := range filmes {
		filmeResponses[i] = response.FilmeToResponse(filme)
	}

	s.log.Debug("Filmes listed",
		zap.Int("count", len(filmes)),
		zap.Int64("total", total),
		zap.Int("skip", params.Offset()),
		zap.Int("take", params.Limit()),
	)

	return filmeResponses, total, nil
}

func (s *filmeService) GetByID(ctx context.Context, id int64) (*response.FilmeResponse, error) {
	filme, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.FilmeToResponse(filme)
	return &resp, nil
}

func (s *filmeService) Create(ctx context.Context, req *request.FilmeRequest) (*response.FilmeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create filme validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	filme := req.ToEntity()
	if err := s.repo.Insert(ctx, filme); err != nil {
		return nil, err
	}

	s.log.Info("Filme created",
		zap.Int64("filme_id", filme.ID),
		zap.String("titulo", filme.Titulo),
	)

	resp := response.FilmeToResponse(filme)
	return &resp, nil
}

func (s *filmeService) Update(ctx context.Context, id int64, req *request.FilmeUpdateRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update filme validation failed",
			zap.Int64("filme_id", id),
			zap.Any("errors", errs),
		)
		return newValidationError(errs)
	}

	filme, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	req.ApplyTo(filme)
	return s.repo.Update(ctx, filme)
}

// Patch projects the row into the update shape, applies the operations,
// re-validates the result and only then writes the row back. A failing
// operation or a validation violation leaves the row untouched.
func (s *filmeService) Patch(ctx context.Context, id int64, patch jsonpatch.Patch) error {
	filme, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	projection := request.FilmeToUpdateRequest(filme)
	if err := patch.Apply(&projection); err != nil {
		s.log.Warn("Patch filme application failed",
			zap.Int64("filme_id", id),
			zap.Error(err),
		)
		return patchError(err)
	}

	if errs := utils.ValidateStruct(projection); len(errs) > 0 {
		s.log.Warn("Patch filme validation failed",
			zap.Int64("filme_id", id),
			zap.Any("errors", errs),
		)
		return newValidationError(errs)
	}

	projection.ApplyTo(filme)
	return s.repo.Update(ctx, filme)
}

func (s *filmeService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
