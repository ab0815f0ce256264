package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/hyperjump/hondana/internal/catalog"
	"github.com/hyperjump/hondana/internal/chat"
	"github.com/hyperjump/hondana/internal/models"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.catalog.Categories(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "no categories found")
			return
		}
		s.logger.Error("list categories failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.respondJSON(w, http.StatusOK, cats)
}

func (s *Server) handleCategoryQuery(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	q := r.URL.Query()
	criteria := models.FilterCriteria{
		Name:      q.Get("name"),
		MinRating: q.Get("minRating"),
		MaxRating: q.Get("maxRating"),
		MinPrice:  q.Get("minPrice"),
		MaxPrice:  q.Get("maxPrice"),
		Genre:     q.Get("genre"),
		Language:  q.Get("language"),
	}
	items, err := s.catalog.Query(r.Context(), category, criteria, q.Get("sortPrice"))
	if err != nil {
		var noMatch *catalog.NoMatchError
		switch {
		case errors.As(err, &noMatch):
			s.respondJSON(w, http.StatusNotFound, map[string]interface{}{
				"error": noMatch.Error(),
				"query": noMatch.Predicate,
			})
		case errors.Is(err, catalog.ErrInvalidArgument):
			s.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, catalog.ErrNotFound):
			s.respondError(w, http.StatusNotFound, err.Error())
		default:
			s.logger.Error("category query failed", zap.String("category", category), zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	s.respondJSON(w, http.StatusOK, items)
}

type recommendRequest struct {
	Genres []string `json:"genres"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	items, err := s.recommend.Recommend(r.Context(), req.Genres)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidArgument) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("recommendations failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var in chat.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reply, err := s.chat.Route(r.Context(), in)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidArgument) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("chat routing failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.respondJSON(w, http.StatusOK, reply)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "instance": s.instance})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
