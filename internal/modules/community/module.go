package community

import (
	"github.com/jmoiron/sqlx"
	authDomain "github.com/saransh1220/flowart/internal/modules/auth/domain"
	"github.com/saransh1220/flowart/internal/modules/community/application"
	"github.com/saransh1220/flowart/internal/modules/community/infrastructure/persistence/postgres"
	"github.com/saransh1220/flowart/internal/modules/community/infrastructure/websocket"
	community_http "github.com/saransh1220/flowart/internal/modules/community/interfaces/http"
)

type Module struct {
	service *application.CommunityService
	handler *community_http.CommunityHandler
	hub     *websocket.Hub
}

// NewModule wires the board and starts its live feed hub. Call Close on shutdown.
func NewModule(db *sqlx.DB, authors authDomain.UserFinder, allowedOrigins ...string) *Module {
	repo := postgres.NewPostRepository(db)
	hub := websocket.NewHub(allowedOrigins...)
	go hub.Run()

	service := application.NewCommunityService(repo, authors, hub)
	handler := community_http.NewCommunityHandler(service, hub)

	return &Module{
		service: service,
		handler: handler,
		hub:     hub,
	}
}

func (m *Module) HTTPHandler() *community_http.CommunityHandler {
	return m.handler
}

func (m *Module) Service() *application.CommunityService {
	return m.service
}

// Close disconnects live feed subscribers.
func (m *Module) Close() {
	m.hub.Stop()
}
