// Package handlers implements the REST handlers for the Game Profile API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ramonehamilton/replay-companion/internal/api/response"
	"github.com/ramonehamilton/replay-companion/internal/gui"
	"github.com/ramonehamilton/replay-companion/internal/profile"
	"github.com/ramonehamilton/replay-companion/internal/storage/models"
)

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

// ProfileService is the subset of the profile facade the handlers use.
type ProfileService interface {
	ListGames(ctx context.Context, limit int) ([]*models.Game, error)
	GetGameProfile(ctx context.Context, gameID string) (*profile.Profile, error)
	GetLatestProfile(ctx context.Context) (*profile.Profile, error)
	Compare(in profile.ComparisonInput) (profile.ComparisonResult, error)
}

// ProfileHandler handles game and comparison requests.
type ProfileHandler struct {
	service ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// CompareRequest is the body of POST /compare. Values may be JSON numbers
// or numeric strings.
type CompareRequest struct {
	Value1        json.RawMessage `json:"value1"`
	Value2        json.RawMessage `json:"value2"`
	Type          string          `json:"type"`
	Unit          string          `json:"unit,omitempty"`
	HighlightMode string          `json:"highlight_mode,omitempty"`
}

// ListGames returns recent games.
func (h *ProfileHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.BadRequest(w, fmt.Errorf("limit must be a positive integer"))
			return
		}
		limit = n
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	games, err := h.service.ListGames(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if games == nil {
		games = []*models.Game{}
	}

	response.List(w, games, len(games), limit)
}

// GetGameProfile returns the profile of a single game.
func (h *ProfileHandler) GetGameProfile(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		response.BadRequest(w, errors.New("game ID is required"))
		return
	}

	p, err := h.service.GetGameProfile(r.Context(), gameID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, p)
}

// GetLatestProfile returns the profile of the most recent game.
func (h *ProfileHandler) GetLatestProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetLatestProfile(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, p)
}

// Compare evaluates a single comparison.
func (h *ProfileHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, fmt.Errorf("invalid request body: %w", err))
		return
	}

	in, err := req.toInput()
	if err != nil {
		response.BadRequest(w, err)
		return
	}

	result, err := h.service.Compare(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, result)
}

func (req CompareRequest) toInput() (profile.ComparisonInput, error) {
	v1, err := decodeValue(req.Value1)
	if err != nil {
		return profile.ComparisonInput{}, fmt.Errorf("value1: %w", err)
	}
	v2, err := decodeValue(req.Value2)
	if err != nil {
		return profile.ComparisonInput{}, fmt.Errorf("value2: %w", err)
	}

	return profile.ComparisonInput{
		Value1:        v1,
		Value2:        v2,
		Type:          profile.ValueType(req.Type),
		Unit:          req.Unit,
		HighlightMode: profile.HighlightMode(req.HighlightMode),
	}, nil
}

// decodeValue accepts either a JSON number or a string holding one.
func decodeValue(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, fmt.Errorf("%w: value is required", profile.ErrInvalidInput)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return profile.ParseValue(s)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: %s is not a number", profile.ErrInvalidInput, raw)
	}
	return profile.ParseValue(n.String())
}

func writeServiceError(w http.ResponseWriter, err error) {
	var appErr *gui.AppError
	msg := err
	if errors.As(err, &appErr) {
		msg = errors.New(appErr.Message)
	}

	switch {
	case errors.Is(err, profile.ErrInvalidInput):
		response.BadRequest(w, msg)
	case errors.Is(err, gui.ErrGameNotFound):
		response.NotFound(w, msg)
	default:
		log.Printf("API request failed: %v", err)
		response.InternalError(w, msg)
	}
}
