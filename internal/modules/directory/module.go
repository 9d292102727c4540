package directory

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/flowart/internal/modules/directory/application"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/fixtures"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/persistence/postgres"
	directoryHTTP "github.com/saransh1220/flowart/internal/modules/directory/interfaces/http"
)

const (
	SourcePostgres = "postgres"
	SourceFixtures = "fixtures"
)

// Module represents the Directory module
type Module struct {
	source  domain.ArtistSource
	service application.DirectoryService
	handler *directoryHTTP.DirectoryHandler
}

// NewSource picks the record store named by kind.
func NewSource(kind string, db *sqlx.DB) (domain.ArtistSource, error) {
	switch kind {
	case SourceFixtures:
		return fixtures.NewStore(nil), nil
	case SourcePostgres, "":
		if db == nil {
			return nil, fmt.Errorf("directory source %q needs a database", SourcePostgres)
		}
		return postgres.NewArtistRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown directory source %q", kind)
	}
}

// NewModule creates and initializes the Directory module
func NewModule(source domain.ArtistSource, cache application.ResultCache, defaultLimit, featuredCount int) *Module {
	service := application.NewDirectoryService(source, cache, defaultLimit, featuredCount)
	return &Module{
		source:  source,
		service: service,
		handler: directoryHTTP.NewDirectoryHandler(service),
	}
}

// Service returns the directory service
func (m *Module) Service() application.DirectoryService {
	return m.service
}

// Source returns the underlying record store
func (m *Module) Source() domain.ArtistSource {
	return m.source
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *directoryHTTP.DirectoryHandler {
	return m.handler
}
