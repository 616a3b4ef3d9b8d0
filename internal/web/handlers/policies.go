package handlers

import (
	"net/http"

	"github.com/kozaktomas/slideshow-builder/internal/config"
)

// PoliciesHandler lists the known ranking and sequencing policies.
type PoliciesHandler struct {
	config *config.Config
}

// NewPoliciesHandler creates a new policies handler.
func NewPoliciesHandler(cfg *config.Config) *PoliciesHandler {
	return &PoliciesHandler{config: cfg}
}

// PolicyGroupResponse describes one policy dimension.
type PolicyGroupResponse struct {
	Default  string            `json:"default"`
	Policies map[string]string `json:"policies"`
}

// PoliciesResponse represents the policies listing.
type PoliciesResponse struct {
	Ranking    PolicyGroupResponse `json:"ranking"`
	Sequencing PolicyGroupResponse `json:"sequencing"`
}

// List returns the declared policies and the configured defaults.
// The defaults reflect the server environment, not the embedded file.
func (h *PoliciesHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, PoliciesResponse{
		Ranking: PolicyGroupResponse{
			Default:  h.config.Engine.Ranking,
			Policies: h.config.Policies.Ranking.Policies,
		},
		Sequencing: PolicyGroupResponse{
			Default:  h.config.Engine.Sequencing,
			Policies: h.config.Policies.Sequencing.Policies,
		},
	})
}
