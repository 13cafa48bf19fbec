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

type CinemaService interface {
	List(ctx context.Context, params *request.ListParams) ([]response.CinemaResponse, int64, error)
	GetByID(ctx context.Context, id int64) (*response.CinemaResponse, error)
	Create(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error)
	Update(ctx context.Context, id int64, req *request.CinemaUpdateRequest) error
	Patch(ctx context.Context, id int64, patch jsonpatch.Patch) error
	Delete(ctx context.Context, id int64) error
}

type cinemaService struct {
	repo repository.CinemaRepository
	log  *zap.Logger
}

func NewCinemaService(repo repository.CinemaRepository, log *zap.Logger) CinemaService {
	return &cinemaService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) List(ctx context.Context, params *request.ListParams) ([]response.CinemaResponse, int64, error) {
	cinemas, err := s.repo.FindAll(ctx, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list cinemas: %w", err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count cinemas: %w", err)
	}

	cinemaResponses := make([]response.CinemaResponse, len(cinemas))
	for i, cinema := range cinemas {
		cinemaResponses[i] = response.CinemaToResponse(cinema)
	}

	return cinemaResponses, total, nil
}

func (s *cinemaService) GetByID(ctx context.Context, id int64) (*response.CinemaResponse, error) {
	cinema, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) Create(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cinema validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	cinema := req.ToEntity()
	if err := s.repo.Insert(ctx, cinema); err != nil {
		return nil, err
	}

	s.log.Info("Cinema created",
		zap.Int64("cinema_id", cinema.ID),
		zap.String("nome", cinema.Nome),
	)

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) Update(ctx context.Context, id int64, req *request.CinemaUpdateRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update cinema validation failed",
			zap.Int64("cinema_id", id),
			zap.Any("errors", errs),
		)
		return newValidationError(errs)
	}

	cinema, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	req.ApplyTo(cinema)
	return s.repo.Update(ctx, cinema)
}

func (s *cinemaService) Patch(ctx context.Context, id int64, patch jsonpatch.Patch) error {
	cinema, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	projection := request.CinemaToUpdateRequest(cinema)
	if err := patch.Apply(&projection); err != nil {
		s.log.Warn("Patch cinema application failed",
			zap.Int64("cinema_id", id),
			zap.Error(err),
		)
		return patchError(err)
	}

	if errs := utils.ValidateStruct(projection); len(errs) > 0 {
		s.log.Warn("Patch cinema validation failed",
			zap.Int64("cinema_id", id),
			zap.Any("errors", errs),
		)
		return newValidationError(errs)
	}

	projection.ApplyTo(cinema)
	return s.repo.Update(ctx, cinema)
}

func (s *cinemaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
