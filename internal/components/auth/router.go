package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

type (
	Router struct {
		service servicer
	}
)

func NewRouter(service servicer) chi.Router {
	router := &Router{service: service}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", r.Login)
	return router
}

// Login exchanges credentials for a bearer token. Failed attempts answer
// with a generic message that does not reveal which field was wrong.
func (r *Router) Login(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var in LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	logger.Debug().Str("username", in.Username).Msg("Login attempt")

	resp, err := r.service.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn().Str("username", in.Username).Msg("Login failed: invalid credentials")
			writeMessage(w, http.StatusBadRequest, "Username or password is incorrect")
			return
		}
		logger.Error().Err(err).Msg("Error authenticating user")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	logger.Debug().Int64("user_id", resp.User.ID).Msg("Login successful")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error().Err(err).Msg("Failed to encode auth response")
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
