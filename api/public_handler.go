package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type publicHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *content.Service
}

func newPublicHandler(service *content.Service) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// home returns the full public read model with derived about values
// @Summary Public site view
// @Description Returns projects, skills, about facts with derived values, and live stats
// @Tags Public
// @Produce json
// @Success 200 {object} content.View "Public view"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router / [get]
func (h publicHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.service.PublicView(time.Now())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, view)
	}
}

// projectDetail returns a single project for the public detail page.
func (h publicHandler) projectDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.GetProject(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitContact stores a visitor's contact form message.
func (h publicHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req contactRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		contactMsg, err := h.service.SubmitContact(content.ContactInput{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Owner notification is best-effort and never blocks the response
		go func() {
			if err := services.NotifyContact(contactMsg); err != nil {
				h.logger.Error().Err(err).Msg("Failed to send contact notification")
			}
		}()

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, contactMsg)
	}
}
