package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type languageService interface {
	List(ctx context.Context, activeOnly bool) ([]*models.Language, error)
	FindByCode(ctx context.Context, code string) (*models.Language, error)
}

type languageHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   languageService
}

func newLanguageHandler(service languageService) languageHandler {
	logger := log.With().Str("handlerName", "languageHandler").Logger()

	return languageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// getLanguages lists the supported languages
// @Summary Get languages
// @Tags Languages
// @Produce json
// @Param active query bool false "Only active languages"
// @Success 200 {array} models.Language
// @Router /languages [get]
func (h languageHandler) getLanguages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := false
		if raw := r.URL.Query().Get("active"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("active", "must be a boolean"))
				return
			}
			activeOnly = parsed
		}

		languages, err := h.service.List(r.Context(), activeOnly)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, languages)
	}
}

// @Router /languages/{code} [get]
func (h languageHandler) getLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		language, err := h.service.FindByCode(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, language)
	}
}
