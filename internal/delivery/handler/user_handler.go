package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/command"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/interfaces"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/delivery/middleware"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
)

type UserHandler struct {
	service interfaces.UserService
}

func NewUserHandler(service interfaces.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerCommand command.RegisterUserCommand
	if err := json.NewDecoder(r.Body).Decode(&registerCommand); err != nil {
		respondMessage(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	if registerCommand.Name == "" || registerCommand.Email == "" || registerCommand.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	registerCommand.Host = r.Host

	result, err := h.service.RegisterUser(r.Context(), &registerCommand)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUserAlreadyExists):
			respondMessage(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, entities.ErrTooManyRequests):
			respondMessage(w, http.StatusTooManyRequests, "Too many requests, please try again later")
		default:
			log.Printf("register failed: %v", err)
			respondMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *UserHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	result, err := h.service.VerifyUser(r.Context(), &command.VerifyUserCommand{Token: token})
	if err != nil {
		if errors.Is(err, entities.ErrInvalidVerificationToken) {
			respondMessage(w, http.StatusBadRequest, "Invalid or expired verification token")
			return
		}
		log.Printf("verification failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Me returns the profile of the authenticated user.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	result, err := h.service.FindUserById(r.Context(), userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			respondMessage(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("fetching profile failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, result.Result)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginCommand command.LoginUserCommand
	if err := json.NewDecoder(r.Body).Decode(&loginCommand); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid Credentials")
		return
	}

	result, err := h.service.LoginUser(r.Context(), &loginCommand)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidCredentials):
			respondMessage(w, http.StatusBadRequest, "Invalid Credentials")
		case errors.Is(err, entities.ErrAccountNotActive):
			respondMessage(w, http.StatusForbidden, "Account not active. Please check your email to verify your account.")
		case errors.Is(err, entities.ErrTooManyRequests):
			respondMessage(w, http.StatusTooManyRequests, "Too many requests, please try again later")
		default:
			// Covers corrupt stored hashes as well; never surfaced as a
			// credential failure.
			log.Printf("login failed: %v", err)
			respondMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}
