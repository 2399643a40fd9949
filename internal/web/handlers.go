package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"amphi/internal/domain"
	"amphi/internal/search"
	"amphi/internal/web/pages"
)

func (s *Server) landingPage(w http.ResponseWriter, r *http.Request) {
	page := pages.Layout(
		pages.PageConfig{Title: "Amphi", Description: "Ask anything, search everything."},
		pages.Topbar(s.config.Nav),
		pages.Hero(),
		pages.LogoLoop(s.config.Logos),
		pages.SearchDialog(),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		s.logger.Warn("render landing page", zap.Error(err))
	}
}

// serviceName identifies this server in health responses
const serviceName = "amphi"

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": serviceName})
}

// search answers GET /api/search?q= with the result envelope
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	reqID := middleware.GetReqID(r.Context())

	results, err := s.backend.Query(r.Context(), q)
	if err != nil {
		s.logger.Warn("search failed",
			zap.String("request_id", reqID),
			zap.String("query", q),
			zap.Error(err))
		status := http.StatusBadGateway
		if search.IsKind(err, search.KindTimeout) {
			status = http.StatusGatewayTimeout
		}
		writeJSON(w, status, search.Response{
			Success:   false,
			Error:     err.Error(),
			Timestamp: timestamp(),
		})
		return
	}

	if results == nil {
		results = []domain.SearchResult{}
	}
	s.logger.Debug("search served",
		zap.String("request_id", reqID),
		zap.String("query", q),
		zap.Int("results", len(results)))
	writeJSON(w, http.StatusOK, search.Response{
		Data:      results,
		Success:   true,
		Timestamp: timestamp(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
