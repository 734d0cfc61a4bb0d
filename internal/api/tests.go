package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/QTest-hq/autoprio/internal/backlog"
	"github.com/QTest-hq/autoprio/internal/render"
	"github.com/QTest-hq/autoprio/internal/report"
	"github.com/QTest-hq/autoprio/internal/scoring"
)

// TestRequest is the request body for creating or updating a test
type TestRequest struct {
	Name         string                    `json:"name"`
	Section      string                    `json:"section,omitempty"`
	Description  string                    `json:"description,omitempty"`
	TicketID     string                    `json:"ticket_id,omitempty"`
	Scores       map[scoring.FactorKey]int `json:"scores"`
	YesNoAnswers map[string]bool           `json:"yes_no_answers,omitempty"`
}

// ImportRequest is the request body for a bulk import
type ImportRequest struct {
	Rows    []map[string]string `json:"rows"`
	Replace bool                `json:"replace,omitempty"`
}

// ImportResponse reports how many rows were processed
type ImportResponse struct {
	Imported int `json:"imported"`
}

// CatalogResponse describes the factor catalog for clients
type CatalogResponse struct {
	Factors []CatalogFactor `json:"factors"`
	MaxRaw  int             `json:"max_raw_score"`
}

// CatalogFactor is one factor with its score option labels
type CatalogFactor struct {
	Key     scoring.FactorKey `json:"key"`
	Name    string            `json:"name"`
	Weight  int               `json:"weight"`
	Options map[int]string    `json:"options"`
}

func (in TestRequest) input() backlog.TestInput {
	return backlog.TestInput{
		Name:         in.Name,
		Section:      in.Section,
		Description:  in.Description,
		TicketID:     in.TicketID,
		Scores:       in.Scores,
		YesNoAnswers: in.YesNoAnswers,
	}
}

func (s *Server) listTests(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	respondJSON(w, http.StatusOK, s.repo.GetSorted(section))
}

func (s *Server) createTest(w http.ResponseWriter, r *http.Request) {
	var req TestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	test := s.repo.AddTest(req.input())
	log.Info().Int("id", test.ID).Str("priority", string(test.Priority)).Msg("test added")
	respondJSON(w, http.StatusCreated, test)
}

func (s *Server) getTest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTestID(w, r)
	if !ok {
		return
	}

	test := s.repo.FindByID(id)
	if test == nil {
		respondError(w, http.StatusNotFound, "test not found")
		return
	}
	respondJSON(w, http.StatusOK, test)
}

func (s *Server) updateTest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTestID(w, r)
	if !ok {
		return
	}

	var req TestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	test := s.repo.UpdateTest(id, req.input())
	if test == nil {
		respondError(w, http.StatusNotFound, "test not found")
		return
	}
	respondJSON(w, http.StatusOK, test)
}

func (s *Server) deleteTest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTestID(w, r)
	if !ok {
		return
	}

	if !s.repo.DeleteOne(id) {
		respondError(w, http.StatusNotFound, "test not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteAllTests(w http.ResponseWriter, r *http.Request) {
	deleted := s.repo.DeleteAll()
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (s *Server) getTiers(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	respondJSON(w, http.StatusOK, s.repo.GetPriorityTiers(section))
}

func (s *Server) getSections(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"sections": s.repo.Sections()})
}

func (s *Server) getCatalog(w http.ResponseWriter, r *http.Request) {
	cat := s.repo.Catalog()
	resp := CatalogResponse{MaxRaw: cat.MaxRawScore()}
	for _, f := range cat.Factors() {
		options := make(map[int]string, len(scoring.ScoreValues))
		for _, score := range scoring.ScoreValues {
			if label := cat.OptionLabel(f.Key, score); label != "" {
				options[score] = label
			}
		}
		resp.Factors = append(resp.Factors, CatalogFactor{
			Key:     f.Key,
			Name:    f.Name,
			Weight:  f.Weight,
			Options: options,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) getGuide(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(render.ScoringGuide(s.repo.Catalog())))
}

func (s *Server) importTests(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	count := s.repo.ImportTests(req.Rows, req.Replace)
	log.Info().Int("rows", count).Bool("replace", req.Replace).Msg("tests imported")
	respondJSON(w, http.StatusOK, ImportResponse{Imported: count})
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "text"
	}
	section := r.URL.Query().Get("section")

	renderer, err := s.renderers.Get(format)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep := report.Build(
		s.repo.GetSorted(section),
		s.repo.GetPriorityTiers(section),
		s.repo.Catalog(),
	)
	out, err := renderer.Render(rep)
	if err != nil {
		log.Error().Err(err).Str("format", format).Msg("failed to render report")
		respondError(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.Write([]byte(out))
}

func parseTestID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "testID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid test id")
		return 0, false
	}
	return id, true
}

func contentType(format string) string {
	switch format {
	case "html", "doc":
		return "text/html; charset=utf-8"
	case "csv":
		return "text/csv; charset=utf-8"
	case "markdown":
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
