// Package httpapi exposes the bot's state to the desktop companion over a
// small JSON surface guarded by a shared-secret header.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Acronica/Team-Maker/domain/entities"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Service is the slice of the bot the API reads and writes through.
type Service interface {
	GuildInfo(ctx context.Context, guildID string) (entities.Guild, error)
	GuildConfig(guildID string) (entities.GuildConfig, bool)
	ChannelName(ctx context.Context, channelID string) (string, error)
	VoiceCategories(ctx context.Context, guildID string) ([]entities.Category, error)
	ChannelMembers(ctx context.Context, channelID string) ([]entities.Member, error)
	UpdateConfig(ctx context.Context, guildID string, cfg entities.GuildConfig) error
	SubmitTeams(ctx context.Context, guildID string, team1, team2 []string) error
}

// Config holds API server configuration
type Config struct {
	APIKey string
	Port   int
}

type Server struct {
	config  Config
	service Service
	httpSrv *http.Server
}

func NewServer(config Config, service Service) *Server {
	s := &Server{config: config, service: service}

	router := mux.NewRouter()
	router.Use(requestLogging)
	router.Use(s.requireAPIKey)

	router.HandleFunc("/server/{guildId}", s.handleGuildInfo).Methods(http.MethodGet)
	router.HandleFunc("/servers/{guildId}/config", s.handleGuildConfig).Methods(http.MethodGet)
	router.HandleFunc("/servers/{guildId}/channels", s.handleGuildChannels).Methods(http.MethodGet)
	router.HandleFunc("/channel-members/{channelId}", s.handleChannelMembers).Methods(http.MethodGet)
	router.HandleFunc("/update-config", s.handleUpdateConfig).Methods(http.MethodPost)
	router.HandleFunc("/submit-teams", s.handleSubmitTeams).Methods(http.MethodPost)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.WithField("addr", s.httpSrv.Addr).Info("API server listening")
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
