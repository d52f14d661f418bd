package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type messageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
	alerter     *services.InquiryAlerter
}

func newMessageHandler(messageRepo *database.MessageRepo, alerter *services.InquiryAlerter) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
		alerter:     alerter,
	}
}

// getAllMessages lists the contact inbox, newest first
// @Summary Get contact messages
// @Tags Messages
// @Produce json
// @Success 200 {array} models.ContactSubmission
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /messages [get]
func (h messageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "messages", err))
			return
		}
		h.responder.WriteJSON(w, messages)
	}
}

// submitMessage stores a contact form submission and alerts the owner
// @Summary Submit contact form
// @Description Stores the message with a server timestamp. Owner alerts go out in the background.
// @Tags Messages
// @Accept json
// @Produce json
// @Param message body models.ContactSubmission true "Name, email, subject and message"
// @Success 201 {object} models.ContactSubmission "Stored submission"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or invalid field"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Message not stored, retry"
// @Router /message [post]
func (h messageHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactSubmission
		if err := decodeJSON(w, r, maxJSONBody, "message", &msg); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		stored, err := h.messageRepo.Add(msg)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("store", "message", err))
			return
		}

		h.logger.Info().Int64("messageId", stored.ID).Str("subject", stored.Subject).Msg("Contact message received")
		h.alerter.NotifyAsync(stored)
		h.responder.WriteJSONStatus(w, http.StatusCreated, stored)
	}
}

// @Summary Delete contact message
// @Tags Messages
// @Param messageID path integer true "Message ID"
// @Success 200 {object} StatusResponse
// @Router /message/{messageID} [delete]
func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := idParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.messageRepo.Delete(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "message", err))
			return
		}
		h.responder.WriteJSON(w, StatusResponse{Status: "success", Message: "message deleted successfully"})
	}
}
