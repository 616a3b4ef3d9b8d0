package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kozaktomas/slideshow-builder/internal/catalog"
	"github.com/kozaktomas/slideshow-builder/internal/config"
	"github.com/kozaktomas/slideshow-builder/internal/engine"
	"github.com/kozaktomas/slideshow-builder/internal/slideshow"
)

// SlideshowHandler builds slideshows from posted catalog text.
type SlideshowHandler struct {
	config *config.Config
}

// NewSlideshowHandler creates a new slideshow handler.
func NewSlideshowHandler(cfg *config.Config) *SlideshowHandler {
	return &SlideshowHandler{config: cfg}
}

// SlideshowResponse represents a built slideshow.
type SlideshowResponse struct {
	Slides     [][]int `json:"slides"`
	SlideCount int     `json:"slide_count"`
	Score      int     `json:"score"`
	DroppedID  int     `json:"dropped_id"` // -1 when no vertical photo was dropped
	Ranking    string  `json:"ranking"`
	Sequencing string  `json:"sequencing"`
}

// resolvePolicies resolves the ranking/sequencing selection for a
// request, falling back to the configured defaults.
func resolvePolicies(cfg *config.Config, r *http.Request) (string, string, error) {
	ranking := r.URL.Query().Get("ranking")
	if ranking == "" {
		ranking = cfg.Engine.Ranking
	}
	if !cfg.Policies.Ranking.Known(ranking) {
		return "", "", fmt.Errorf("unknown ranking policy: %s", ranking)
	}

	sequencing := r.URL.Query().Get("sequencing")
	if sequencing == "" {
		sequencing = cfg.Engine.Sequencing
	}
	if !cfg.Policies.Sequencing.Known(sequencing) {
		return "", "", fmt.Errorf("unknown sequencing policy: %s", sequencing)
	}

	return ranking, sequencing, nil
}

// Build parses the request body as a photo catalog and responds with
// the built slideshow. Policy overrides come from query parameters.
func (h *SlideshowHandler) Build(w http.ResponseWriter, r *http.Request) {
	ranking, sequencing, err := resolvePolicies(h.config, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := catalog.Parse(r.Body)
	if err != nil {
		if errors.Is(err, catalog.ErrMalformedInput) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to read catalog")
		return
	}

	eng, err := engine.New(engine.Options{Ranking: ranking, Sequencing: sequencing})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	show, droppedID := eng.BuildShow(cat)
	respondJSON(w, http.StatusOK, buildResponse(show, droppedID, ranking, sequencing))
}

func buildResponse(show *slideshow.Slideshow, droppedID int, ranking, sequencing string) *SlideshowResponse {
	slides := make([][]int, len(show.Slides))
	for i, slide := range show.Slides {
		slides[i] = slide.PhotoIDs()
	}
	return &SlideshowResponse{
		Slides:     slides,
		SlideCount: len(show.Slides),
		Score:      show.Score,
		DroppedID:  droppedID,
		Ranking:    ranking,
		Sequencing: sequencing,
	}
}
