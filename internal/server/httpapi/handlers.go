package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/okunev/musicbox/internal/common"
	"github.com/okunev/musicbox/internal/logging"
	"github.com/okunev/musicbox/internal/server/accounts"
	"github.com/okunev/musicbox/internal/server/catalog"
	"github.com/okunev/musicbox/internal/server/sessions"
	"github.com/okunev/musicbox/internal/server/subscriptions"
)

type Handlers struct {
	accounts      *accounts.Service
	sessions      *sessions.Service
	catalog       *catalog.Service
	subscriptions *subscriptions.Service
	logger        logging.Logger
	validate      *validator.Validate
}

func NewHandlers(
	accountService *accounts.Service,
	sessionService *sessions.Service,
	catalogService *catalog.Service,
	subscriptionService *subscriptions.Service,
	logger logging.Logger,
) *Handlers {
	return &Handlers{
		accounts:      accountService,
		sessions:      sessionService,
		catalog:       catalogService,
		subscriptions: subscriptionService,
		logger:        logger.With("module", "httpapi"),
		validate:      validator.New(validator.WithRequiredStructEnabled()),
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type queryRequest struct {
	Title  string `json:"title"`
	Year   string `json:"year"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
}

type addSubscriptionRequest struct {
	Title string `json:"title" validate:"required"`
	Year  string `json:"year" validate:"required"`
}

type removeSubscriptionRequest struct {
	UUID string `json:"uuid"`
}

// decodeBody unmarshals the request body into v. An empty body is treated
// as an empty JSON object, matching clients that omit the body entirely.
func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	h.logger.Info(r.Context(), "registration request")

	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "Missing email, username or password")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "Missing email, username or password")
		return
	}

	if err := h.accounts.Register(r.Context(), req.Email, req.UserName, req.Password); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			respondFail(w, http.StatusConflict, "The email already exists")
			return
		}
		h.logger.Error(r.Context(), "registration failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info(r.Context(), "registered", "email", accounts.NormalizeEmail(req.Email))
	respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "User registered successfully",
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondFail(w, http.StatusUnauthorized, "Email or password is invalid")
		return
	}

	session, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			respondFail(w, http.StatusUnauthorized, "Email or password is invalid")
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info(r.Context(), "session issued", "email", session.Email)
	respondJSON(w, http.StatusOK, map[string]any{
		"success":            true,
		"session_token":      session.Token,
		"session_expiration": session.TTL,
	})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := EmailFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "no authenticated email in context")
		return
	}

	userName, err := h.accounts.Profile(r.Context(), email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondFail(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error(r.Context(), "profile lookup failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"user_name": userName,
	})
}

func (h *Handlers) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items, err := h.catalog.Search(r.Context(), catalog.Filter{
		Title:  req.Title,
		Year:   req.Year,
		Artist: req.Artist,
		Album:  req.Album,
	})
	if err != nil {
		if errors.Is(err, common.ErrNoFilter) {
			respondError(w, http.StatusBadRequest, "You must provide at least one filter: title, year, artist, or album.")
			return
		}
		h.logger.Error(r.Context(), "catalog query failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if items == nil {
		items = []catalog.Item{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"results": items,
	})
}

func (h *Handlers) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	email, ok := EmailFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "no authenticated email in context")
		return
	}

	subs, err := h.subscriptions.List(r.Context(), email)
	if err != nil {
		h.logger.Error(r.Context(), "listing subscriptions failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if subs == nil {
		subs = []subscriptions.Subscription{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"subscriptions": subs})
}

func (h *Handlers) AddSubscription(w http.ResponseWriter, r *http.Request) {
	email, ok := EmailFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "no authenticated email in context")
		return
	}

	var req addSubscriptionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "title and year are required")
		return
	}

	id, err := h.subscriptions.Add(r.Context(), email, req.Title, req.Year)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Music not found.")
			return
		}
		h.logger.Error(r.Context(), "adding subscription failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"uuid":    id,
	})
}

func (h *Handlers) RemoveSubscription(w http.ResponseWriter, r *http.Request) {
	email, ok := EmailFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "no authenticated email in context")
		return
	}

	var req removeSubscriptionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.subscriptions.Remove(r.Context(), email, req.UUID); err != nil {
		if errors.Is(err, common.ErrMissingUUID) {
			respondError(w, http.StatusBadRequest, "UUID is required for deletion.")
			return
		}
		h.logger.Error(r.Context(), "removing subscription failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
