// Package session retrieves the engineering model iteration an export works on.
//
// Only file data sources are supported: a JSON or YAML dump of one or more
// engineering models, addressed by a plain path or a file:// URI.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"

	"reqif-exporter/internal/model"
)

var (
	// ErrUnsupportedDataSource is returned for data sources other than local files.
	ErrUnsupportedDataSource = errors.New("unsupported data source")
	// ErrModelNotFound is returned when the dump holds no model with the requested id.
	ErrModelNotFound = errors.New("engineering model not found")
	// ErrDanglingReference is returned when the dump references a thing it does not contain.
	ErrDanglingReference = errors.New("dangling reference")
	// ErrEmptyDump is returned for a data source file without content.
	ErrEmptyDump = errors.New("model dump is empty")
)

// Credentials identify the user and the data source.
type Credentials struct {
	Username   string
	Password   string
	DataSource string
}

// String never includes the password.
func (c Credentials) String() string {
	return fmt.Sprintf("%s@%s", c.Username, c.DataSource)
}

// Retriever opens a data source and returns the latest iteration of a model.
type Retriever interface {
	Retrieve(ctx context.Context, credentials Credentials, modelID uuid.UUID) (*model.Iteration, error)
}

// DataSourcePath returns the local path a data source designates. Plain paths are
// returned as they are; file:// URIs are converted; anything else is rejected.
func DataSourcePath(dataSource string) (string, error) {
	if dataSource == "" {
		return "", fmt.Errorf("%w: empty data source", ErrUnsupportedDataSource)
	}

	u, err := url.Parse(dataSource)
	// A one-letter scheme is a Windows drive.
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		return dataSource, nil
	}

	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: %s (only local files can be read)", ErrUnsupportedDataSource, u.Scheme)
	}

	path := u.Path
	if u.Host != "" && u.Host != "localhost" {
		path = u.Host + u.Path
	}

	return filepath.FromSlash(path), nil
}
