package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *content.Service
}

func newAboutHandler(service *content.Service) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// overview returns every collection as stored, without derived substitution,
// for the admin panel.
func (h aboutHandler) overview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := h.service.AdminOverview()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, overview)
	}
}

type aboutUpdateRequest struct {
	StartYear string `json:"start_year"`
}

// updateStartYear stores the submitted start year on the years_experience fact.
func (h aboutHandler) updateStartYear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req aboutUpdateRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode about request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.service.UpdateStartYear(req.StartYear); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "about info updated successfully",
		})
	}
}
