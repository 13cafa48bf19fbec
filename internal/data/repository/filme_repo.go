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

type FilmeRepository interface {
	Insert(ctx context.Context, filme *entity.Filme) error
	FindByID(ctx context.Context, id int64) (*entity.Filme, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Filme, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, filme *entity.Filme) error
	Delete(ctx context.Context, id int64) error
}

type filmeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmeRepository(db database.PgxIface, log *zap.Logger) FilmeRepository {
	return &filmeRepository{
		db:  db,
		log: log.With(zap.String("repository", "filme")),
	}
}

// Insert stores a new row and writes the generated id back into filme.
func (r *filmeRepository) Insert(ctx context.Context, filme *entity.Filme) error {
	query := `
		INSERT INTO filmes (titulo, genero, duracao, cinema_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		filme.Titulo,
		filme.Genero,
		filme.Duracao,
		filme.CinemaID,
	).Scan(&filme.ID)

	if err != nil {
		r.log.Error("Failed to insert filme",
			zap.Error(err),
			zap.String("titulo", filme.Titulo),
		)
		return fmt.Errorf("insert filme: %w", err)
	}

	return nil
}

func (r *filmeRepository) FindByID(ctx context.Context, id int64) (*entity.Filme, error) {
	query := `
		SELECT id, titulo, genero, duracao, cinema_id
		FROM filmes
		WHERE id = $1
	`

	var filme entity.Filme
	err := r.db.QueryRow(ctx, query, id).Scan(
		&filme.ID,
		&filme.Titulo,
		&filme.Genero,
		&filme.Duracao,
		&filme.CinemaID,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find filme by ID",
			zap.Error(err),
			zap.Int64("filme_id", id),
		)
		return nil, fmt.Errorf("find filme: %w", err)
	}

	return &filme, nil
}

// FindAll lists rows ordered by id so any skip/take tiling walks the
// collection deterministically.
func (r *filmeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Filme, error) {
	query := `
		SELECT id, titulo, genero, duracao, cinema_id
		FROM filmes
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all filmes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find filmes: %w", err)
	}
	defer rows.Close()

	filmes := make([]*entity.Filme, 0)
	for rows.Next() {
		var filme entity.Filme
		err := rows.Scan(
			&filme.ID,
			&filme.Titulo,
			&filme.Genero,
			&filme.Duracao,
			&filme.CinemaID,
		)
		if err != nil {
			r.log.Error("Failed to scan filme row", zap.Error(err))
			return nil, fmt.Errorf("scan filme: %w", err)
		}
		filmes = append(filmes, &filme)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return filmes, nil
}

func (r *filmeRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM filmes`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count filmes", zap.Error(err))
		return 0, fmt.Errorf("count filmes: %w", err)
	}

	return total, nil
}

func (r *filmeRepository) Update(ctx context.Context, filme *entity.Filme) error {
	query := `
		UPDATE filmes
		SET titulo = $2, genero = $3, duracao = $4, cinema_id = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		filme.ID,
		filme.Titulo,
		filme.Genero,
		filme.Duracao,
		filme.CinemaID,
	)

	if err != nil {
		r.log.Error("Failed to update filme",
			zap.Error(err),
			zap.Int64("filme_id", filme.ID),
		)
		return fmt.Errorf("update filme: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *filmeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM filmes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete filme",
			zap.Error(err),
			zap.Int64("filme_id", id),
		)
		return fmt.Errorf("delete filme: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Filme deleted", zap.Int64("filme_id", id))
	return nil
}
