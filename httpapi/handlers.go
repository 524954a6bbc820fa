package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Acronica/Team-Maker/domain/engine"
	"github.com/Acronica/Team-Maker/domain/entities"
	"github.com/Acronica/Team-Maker/domain/interfaces"

	"github.com/gorilla/mux"
)

type namedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type resolvedConfig struct {
	Guild namedRef `json:"guild"`
	Lobby namedRef `json:"lobby"`
	Team1 namedRef `json:"team1"`
	Team2 namedRef `json:"team2"`
}

type updateConfigRequest struct {
	Guild struct {
		ID string `json:"id"`
	} `json:"guild"`
	Channels struct {
		Lobby struct {
			ID string `json:"id"`
		} `json:"lobby"`
		Team1 struct {
			ID string `json:"id"`
		} `json:"team1"`
		Team2 struct {
			ID string `json:"id"`
		} `json:"team2"`
	} `json:"channels"`
}

type submitTeamsRequest struct {
	GuildID string   `json:"guildId"`
	Team1   []string `json:"team1"`
	Team2   []string `json:"team2"`
}

func (s *Server) handleGuildInfo(w http.ResponseWriter, r *http.Request) {
	guildID := mux.Vars(r)["guildId"]

	guild, err := s.service.GuildInfo(r.Context(), guildID)
	if err != nil {
		writeError(w, http.StatusNotFound, "server not found")
		return
	}
	writeJSON(w, http.StatusOK, namedRef{ID: guild.ID, Name: guild.Name})
}

func (s *Server) handleGuildConfig(w http.ResponseWriter, r *http.Request) {
	guildID := mux.Vars(r)["guildId"]

	cfg, ok := s.service.GuildConfig(guildID)
	if !ok {
		writeError(w, http.StatusNotFound, "server not configured")
		return
	}

	guild, err := s.service.GuildInfo(r.Context(), guildID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to resolve server")
		return
	}

	resolved := resolvedConfig{Guild: namedRef{ID: guild.ID, Name: guild.Name}}
	targets := []struct {
		slot entities.ChannelSlot
		ref  *namedRef
	}{
		{entities.SlotLobby, &resolved.Lobby},
		{entities.SlotTeam1, &resolved.Team1},
		{entities.SlotTeam2, &resolved.Team2},
	}
	for _, t := range targets {
		id := cfg.Channel(t.slot)
		name, err := s.service.ChannelName(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to resolve configured channels")
			return
		}
		*t.ref = namedRef{ID: id, Name: name}
	}
	writeJSON(w, http.StatusOK, resolved)
}

func (s *Server) handleGuildChannels(w http.ResponseWriter, r *http.Request) {
	guildID := mux.Vars(r)["guildId"]

	categories, err := s.service.VoiceCategories(r.Context(), guildID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list channels")
		return
	}
	if categories == nil {
		categories = []entities.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleChannelMembers(w http.ResponseWriter, r *http.Request) {
	channelID := mux.Vars(r)["channelId"]

	members, err := s.service.ChannelMembers(r.Context(), channelID)
	switch {
	case errors.Is(err, interfaces.ErrUnknownChannel), errors.Is(err, interfaces.ErrNotVoice):
		writeError(w, http.StatusNotFound, "voice channel not found")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to list channel members")
		return
	}
	if members == nil {
		members = []entities.Member{}
	}
	writeJSON(w, http.StatusOK, members)
}

func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req updateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Guild.ID == "" || req.Channels.Lobby.ID == "" || req.Channels.Team1.ID == "" || req.Channels.Team2.ID == "" {
		writeError(w, http.StatusBadRequest, "guild and all three channels are required")
		return
	}

	cfg := entities.GuildConfig{
		LobbyChannelID: req.Channels.Lobby.ID,
		Team1ChannelID: req.Channels.Team1.ID,
		Team2ChannelID: req.Channels.Team2.ID,
	}
	if err := s.service.UpdateConfig(r.Context(), req.Guild.ID, cfg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSubmitTeams(w http.ResponseWriter, r *http.Request) {
	var req submitTeamsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.GuildID == "" {
		writeError(w, http.StatusBadRequest, "guildId is required")
		return
	}

	err := s.service.SubmitTeams(r.Context(), req.GuildID, req.Team1, req.Team2)
	switch {
	case errors.Is(err, engine.ErrNoSession):
		writeError(w, http.StatusNotFound, "no active game session for this server")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to submit teams")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
