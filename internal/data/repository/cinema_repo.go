package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rfagner/filmes-api/internal/data/entity"
	"github.com/rfagner/filmes-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CinemaRepository interface {
	Insert(ctx context.Context, cinema *entity.Cinema) error
	FindByID(ctx context.Context, id int64) (*entity.Cinema, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Cinema, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, cinema *entity.Cinema) error
	Delete(ctx context.Context, id int64) error
}

type cinemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCinemaRepository(db database.PgxIface, log *zap.Logger) CinemaRepository {
	return &cinemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema")),
	}
}

func (r *cinemaRepository) Insert(ctx context.Context, cinema *entity.Cinema) error {
	query := `INSERT INTO cinemas (nome) VALUES ($1) RETURNING id`

	err := r.db.QueryRow(ctx, query, cinema.Nome).Scan(&cinema.ID)
	if err != nil {
		r.log.Error("Failed to insert cinema",
			zap.Error(err),
			zap.String("nome", cinema.Nome),
		)
		return fmt.Errorf("insert cinema: %w", err)
	}

	return nil
}

func (r *cinemaRepository) FindByID(ctx context.Context, id int64) (*entity.Cinema, error) {
	query := `SELECT id, nome FROM cinemas WHERE id = $1`

	var cinema entity.Cinema
	err := r.db.QueryRow(ctx, query, id).Scan(&cinema.ID, &cinema.Nome)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find cinema by ID",
			zap.Error(err),
			zap.Int64("cinema_id", id),
		)
		return nil, fmt.Errorf("find cinema: %w", err)
	}

	return &cinema, nil
}

func (r *cinemaRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Cinema, error) {
	query := `
		SELECT id, nome
		FROM cinemas
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all cinemas",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find cinemas: %w", err)
	}
	defer rows.Close()

	cinemas := make([]*entity.Cinema, 0)
	for rows.Next() {
		var cinema entity.Cinema
		if err := rows.Scan(&cinema.ID, &cinema.Nome); err != nil {
			r.log.Error("Failed to scan cinema row", zap.Error(err))
			return nil, fmt.Errorf("scan cinema: %w", err)
		}
		cinemas = append(cinemas, &cinema)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return cinemas, nil
}

func (r *cinemaRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cinemas`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count cinemas", zap.Error(err))
		return 0, fmt.Errorf("count cinemas: %w", err)
	}

	return total, nil
}

func (r *cinemaRepository) Update(ctx context.Context, cinema *entity.Cinema) error {
	query := `UPDATE cinemas SET nome = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, cinema.ID, cinema.Nome)
	if err != nil {
		r.log.Error("Failed to update cinema",
			zap.Error(err),
			zap.Int64("cinema_id", cinema.ID),
		)
		return fmt.Errorf("update cinema: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cinemaRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM cinemas WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete cinema",
			zap.Error(err),
			zap.Int64("cinema_id", id),
		)
		return fmt.Errorf("delete cinema: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Cinema deleted", zap.Int64("cinema_id", id))
	return nil
}
