// Package store is the single point of contact with the document database.
// Documents live in named collections and are addressed by store-assigned
// ids; internal id representations never leave this package in raw form.
package store

import (
	"context"
	"errors"

	"github.com/carzone/spareparts-shop/shared/config"
	"github.com/carzone/spareparts-shop/shared/models"
)

var (
	// ErrNotConfigured means no live store handle exists.
	ErrNotConfigured = errors.New("database not configured")
	// ErrInvalidID means the supplied id string cannot be parsed into a
	// native identifier. Distinct from ErrNotFound.
	ErrInvalidID = errors.New("invalid document id")
	// ErrNotFound means a well-formed id matched no document.
	ErrNotFound = errors.New("document not found")
)

// Store is implemented by every backing store. All methods are safe for
// concurrent use.
type Store interface {
	CreatePart(ctx context.Context, part models.SparePart) (string, error)
	FindParts(ctx context.Context, filter PartFilter) ([]models.SparePart, error)
	GetPart(ctx context.Context, id string) (*models.SparePart, error)
	CreateOrder(ctx context.Context, order models.Order) (string, error)
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New builds the store selected by STORE_BACKEND. The default is MongoDB;
// "memory" selects the in-process store used for development and tests.
func New(cfg config.Config) (Store, error) {
	if cfg.StoreBackend == "memory" {
		return NewMemoryStore(), nil
	}
	client, err := config.ConnectMongoDB(cfg)
	if err != nil {
		return nil, err
	}
	return NewMongoStore(client, cfg.DatabaseName), nil
}
