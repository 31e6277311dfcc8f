package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"reqif-exporter/internal/model"
)

// FileRetriever reads model dumps from local files.
type FileRetriever struct {
	logger *slog.Logger
}

// NewFileRetriever returns a retriever logging to logger, or to slog.Default when nil.
func NewFileRetriever(logger *slog.Logger) *FileRetriever {
	if logger == nil {
		logger = slog.Default()
	}

	return &FileRetriever{logger: logger}
}

// Retrieve implements Retriever. The credentials' user name is only logged; a file
// data source needs no authentication.
func (f *FileRetriever) Retrieve(ctx context.Context, credentials Credentials, modelID uuid.UUID) (*model.Iteration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := DataSourcePath(credentials.DataSource)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("reading model dump", "path", path, "user", credentials.Username, "model", modelID)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data source: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	models, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return LatestIteration(models, modelID)
}

// LatestIteration selects the model with id modelID and returns its latest
// non-deleted iteration.
func LatestIteration(models []*model.EngineeringModel, modelID uuid.UUID) (*model.Iteration, error) {
	for _, m := range models {
		if m.ID != modelID {
			continue
		}

		return m.LatestIteration()
	}

	return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelID)
}
