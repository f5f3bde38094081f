package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *content.Service
}

func newSkillHandler(service *content.Service) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// skillRequest is the JSON body of a skill create/update.
type skillRequest struct {
	Category models.SkillCategory `json:"category"`
	Name     string               `json:"name"`
	Level    int                  `json:"level"`
}

func (h skillHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"categories": models.SkillCategories,
		})
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := h.decodeSkill(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.service.CreateSkill(content.SkillInput{
			Category: req.Category,
			Name:     req.Name,
			Level:    req.Level,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		req, err := h.decodeSkill(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.service.UpdateSkill(skillID, content.SkillInput{
			Category: req.Category,
			Name:     req.Name,
			Level:    req.Level,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.DeleteSkill(skillID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}

func (h skillHandler) decodeSkill(r *http.Request) (skillRequest, error) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		return skillRequest{}, errs.NewBadRequestError("failed to read request body")
	}

	var req skillRequest
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode skill request body")
		return skillRequest{}, errs.NewBadRequestError("malformed request body")
	}

	return req, nil
}
