package adaptor

import (
	"errors"
	"net/http"

	"github.com/rfagner/filmes-api/internal/data/repository"
	"github.com/rfagner/filmes-api/internal/usecase"
	"github.com/rfagner/filmes-api/pkg/utils"

	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses: the not-found
// sentinel becomes a bodiless 404, a validation failure becomes a 400
// carrying the violated rules, anything else a 500.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w)

	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Any("errors", validationErr.Fields))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
