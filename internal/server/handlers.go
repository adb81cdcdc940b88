package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/config"
	"github.com/vntrade/tariff-calculator/internal/domain"
	"github.com/vntrade/tariff-calculator/internal/news"
	"go.uber.org/zap"
)

// handleBreakdown accepts a TariffInput object, optionally carrying a
// "classification_key" that selects the duty rate from the rate table.
func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var in domain.TariffInput
	if err := json.Unmarshal(data, &in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	var key struct {
		ClassificationKey string `json:"classification_key"`
	}
	if err := json.Unmarshal(data, &key); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	if err := config.ValidateTariffInput(&in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.engine.BreakdownFor(strings.TrimSpace(key.ClassificationKey), in))
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	var in domain.ProjectionInput
	if !decode(w, r, &in) {
		return
	}
	if err := config.ValidateProjection(&in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.engine.ProjectMultiYear(in))
}

func (s *Server) handleImpact(w http.ResponseWriter, r *http.Request) {
	var in domain.ImpactInput
	if !decode(w, r, &in) {
		return
	}
	if err := config.ValidateImpact(&in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.engine.ProjectImpact(in))
}

// CompareRequest is the body of POST /api/v1/compare.
type CompareRequest struct {
	Scenarios []domain.Scenario `json:"scenarios"`
}

// CompareResponse carries the comparison in display order plus its ranking.
type CompareResponse struct {
	*domain.ComparisonResult
	Ranking        []calculation.RankedScenario `json:"ranking"`
	Recommendation *calculation.Recommendation  `json:"recommendation,omitempty"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !decode(w, r, &req) {
		return
	}
	switch {
	case len(req.Scenarios) == 0:
		writeError(w, http.StatusBadRequest, config.ErrNoScenarios.Error())
		return
	case len(req.Scenarios) > s.maxScenarios:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s: %d provided, at most %d can be compared",
			config.ErrTooManyScenarios, len(req.Scenarios), s.maxScenarios))
		return
	}
	seen := make(map[string]bool, len(req.Scenarios))
	for i, sc := range req.Scenarios {
		if sc.ID == "" {
			continue
		}
		if seen[sc.ID] {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("scenario %d: duplicate id %q", i, sc.ID))
			return
		}
		seen[sc.ID] = true
	}

	result := s.engine.CompareScenarios(req.Scenarios)
	resp := CompareResponse{ComparisonResult: result, Ranking: calculation.RankScenarios(result)}
	if rec := calculation.Recommend(result); rec.ScenarioID != "" {
		resp.Recommendation = &rec
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Rates.Table())
}

// RateLookupResponse echoes the requested key with its resolved rate.
type RateLookupResponse struct {
	Key string `json:"key"`
	domain.DutyRate
}

func (s *Server) handleRateLookup(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if key == "" {
		writeError(w, http.StatusBadRequest, "classification key is required")
		return
	}
	writeJSON(w, http.StatusOK, RateLookupResponse{Key: key, DutyRate: s.engine.ResolveRate(key)})
}

func (s *Server) handleHSCodes(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", calculation.DefaultSearchLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Rates.Search(r.URL.Query().Get("q"), limit))
}

// NewsResponse lists headlines from the configured source.
type NewsResponse struct {
	Source string      `json:"source"`
	Items  []news.Item `json:"items"`
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	if s.news == nil {
		writeError(w, http.StatusServiceUnavailable, "news is not configured")
		return
	}
	limit, err := queryInt(r, "limit", news.DefaultLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := s.news.Fetch(r.Context(), limit)
	if err != nil {
		s.logger.Warn("news fetch failed", zap.String("source", s.news.Name()), zap.Error(err))
		status := http.StatusBadGateway
		if !errors.Is(err, news.ErrFeedUnavailable) {
			status = http.StatusInternalServerError
		}
		writeError(w, status, "news feed unavailable")
		return
	}
	writeJSON(w, http.StatusOK, NewsResponse{Source: s.news.Name(), Items: items})
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return n, nil
}
