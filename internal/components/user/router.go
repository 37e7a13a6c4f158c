package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"accounts-api/internal/shared/middleware"
	"accounts-api/internal/shared/token"
)

type (
	Router struct {
		service servicer
	}
)

func NewRouter(service servicer, issuer *token.Issuer) chi.Router {
	router := &Router{service: service}
	return router.Routes(issuer)
}

func (r *Router) Routes(issuer *token.Issuer) chi.Router {
	router := chi.NewRouter()

	router.Post("/", r.CreateUser)
	router.With(middleware.NewAuthMiddleware(issuer)).Get("/{id}", r.GetUser)

	return router
}

// CreateUser registers a new account and answers 201 with a Location header
// pointing at the created resource
func (r *Router) CreateUser(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var in CreateUserIn
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := r.service.Create(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameRequired), errors.Is(err, ErrPasswordRequired):
			writeMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUsernameTaken):
			logger.Warn().Str("username", in.Username).Msg("Registration rejected: username taken")
			writeMessage(w, http.StatusConflict, err.Error())
		default:
			logger.Error().Err(err).Msg("Error creating user")
			writeMessage(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	logger.Debug().Int64("user_id", created.ID).Str("username", created.Username).Msg("User created")

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", fmt.Sprintf("/users/%d", created.ID))
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		logger.Error().Err(err).Msg("Failed to encode user response")
	}
}

// GetUser returns a single user by id, or 404 when the id matches nothing
func (r *Router) GetUser(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}

	found, err := r.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "user not found")
			return
		}
		logger.Error().Err(err).Int64("user_id", id).Msg("Error getting user")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(found); err != nil {
		logger.Error().Err(err).Msg("Failed to encode user response")
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
