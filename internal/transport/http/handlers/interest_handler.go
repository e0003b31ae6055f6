package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/laksanil/vivaahready/internal/domain/enums"
	"github.com/laksanil/vivaahready/internal/domain/model"
	authsvc "github.com/laksanil/vivaahready/internal/services/auth"
	interestsvc "github.com/laksanil/vivaahready/internal/services/interests"
	"github.com/laksanil/vivaahready/internal/transport/http/dto"
	httperrors "github.com/laksanil/vivaahready/internal/transport/http/errors"
)

type InterestHandler struct {
	service   *interestsvc.Service
	listLimit int
}

func NewInterestHandler(service *interestsvc.Service, listLimit int) *InterestHandler {
	if listLimit <= 0 {
		listLimit = 100
	}
	return &InterestHandler{service: service, listLimit: listLimit}
}

func (h *InterestHandler) Express(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "INTEREST_SERVICE_UNAVAILABLE", "interest service is unavailable")
		return
	}

	var req dto.ExpressInterestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}
	if req.ReceiverID <= 0 {
		writeBadRequest(w, "VALIDATION_ERROR", "receiver_id is required")
		return
	}

	interest, err := h.service.Express(r.Context(), identity.UserID, req.ReceiverID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, interestsvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid interest request")
		case errors.Is(err, interestsvc.ErrReceiverNotFound):
			writeNotFound(w, "RECEIVER_NOT_FOUND", "receiver profile does not exist")
		case errors.Is(err, interestsvc.ErrAlreadySent):
			writeConflict(w, "INTEREST_ALREADY_SENT", "interest was already sent to this member")
		default:
			if rl, ok := interestsvc.IsRateLimited(err); ok {
				httperrors.Write(w, http.StatusTooManyRequests, httperrors.RateLimitError{
					Code:          "RATE_LIMITED",
					Message:       "too many interests sent, slow down",
					RetryAfterSec: rl.RetryAfter(),
				})
				return
			}
			writeInternal(w, "INTERNAL_ERROR", "failed to send interest")
		}
		return
	}

	httperrors.Write(w, http.StatusCreated, interestToDTO(interest))
}

func (h *InterestHandler) Respond(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "INTEREST_SERVICE_UNAVAILABLE", "interest service is unavailable")
		return
	}

	interestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || interestID <= 0 {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid interest id")
		return
	}

	var req dto.RespondInterestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}
	action, ok := enums.ParseInterestAction(req.Action)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "action must be accept, reject or reconsider")
		return
	}

	result, err := h.service.Respond(r.Context(), identity.UserID, interestID, action)
	if err != nil {
		switch {
		case errors.Is(err, interestsvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid respond request")
		case errors.Is(err, interestsvc.ErrNotFound):
			writeNotFound(w, "INTEREST_NOT_FOUND", "interest does not exist")
		case errors.Is(err, interestsvc.ErrNotReceiver):
			writeForbidden(w, "NOT_RECEIVER", "only the receiver may respond to an interest")
		case errors.Is(err, interestsvc.ErrInvalidTransition):
			writeConflict(w, "INVALID_TRANSITION", "reconsider applies to rejected interests only")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to respond to interest")
		}
		return
	}

	resp := dto.RespondInterestResponse{
		Interest: interestToDTO(result.Interest),
		Mutual:   result.Mutual,
	}
	if result.Contact != nil {
		resp.Contact = contactToDTO(*result.Contact)
	}

	httperrors.Write(w, http.StatusOK, resp)
}

func (h *InterestHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *InterestHandler) Outgoing(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *InterestHandler) list(w http.ResponseWriter, r *http.Request, incoming bool) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "INTEREST_SERVICE_UNAVAILABLE", "interest service is unavailable")
		return
	}

	var (
		items []interestsvc.ListItem
		err   error
	)
	if incoming {
		items, err = h.service.ListIncoming(r.Context(), identity.UserID, h.listLimit)
	} else {
		items, err = h.service.ListOutgoing(r.Context(), identity.UserID, h.listLimit)
	}
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to list interests")
		return
	}

	resp := dto.InterestListResponse{Items: make([]dto.InterestListItem, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InterestListItem{
			ID:          item.ID,
			OtherUserID: item.OtherUserID,
			DisplayName: item.DisplayName,
			Location:    item.Location,
			Status:      string(item.Status),
			Message:     item.Message,
			Mutual:      item.Mutual,
			CreatedAt:   item.CreatedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, resp)
}

func interestToDTO(interest model.Interest) dto.InterestResponse {
	return dto.InterestResponse{
		ID:         interest.ID,
		SenderID:   interest.SenderID,
		ReceiverID: interest.ReceiverID,
		Status:     string(interest.Status),
		Message:    interest.Message,
		CreatedAt:  interest.CreatedAt,
	}
}

func contactToDTO(contact model.ContactInfo) *dto.ContactCard {
	return &dto.ContactCard{
		UserID:      contact.UserID,
		DisplayName: contact.DisplayName,
		Email:       contact.Email,
		Phone:       contact.Phone,
		LinkedInURL: contact.LinkedInURL,
		InstagramID: contact.InstagramID,
	}
}
