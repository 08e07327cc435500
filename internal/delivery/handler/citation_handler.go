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

type CitationHandler struct {
	service interfaces.CitationService
}

func NewCitationHandler(service interfaces.CitationService) *CitationHandler {
	return &CitationHandler{service: service}
}

func (h *CitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var createCommand command.CreateCitationCommand
	if err := json.NewDecoder(r.Body).Decode(&createCommand); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid citation data")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	createCommand.UserID = userID

	result, err := h.service.CreateCitation(r.Context(), &createCommand)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, result.Result)
}

func (h *CitationHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCitations(r.Context())
	if err != nil {
		log.Printf("listing citations failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, result.Result)
}

func (h *CitationHandler) GetById(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.FindCitationById(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, entities.ErrCitationNotFound) {
			respondMessage(w, http.StatusNotFound, "Citation not found")
			return
		}
		log.Printf("fetching citation failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, result.Result)
}

func (h *CitationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updateCommand command.UpdateCitationCommand
	if err := json.NewDecoder(r.Body).Decode(&updateCommand); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid citation data")
		return
	}
	updateCommand.ID = mux.Vars(r)["id"]

	result, err := h.service.UpdateCitation(r.Context(), &updateCommand)
	if err != nil {
		if errors.Is(err, entities.ErrCitationNotFound) {
			respondMessage(w, http.StatusNotFound, "Citation not found")
			return
		}
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result.Result)
}

func (h *CitationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteCitation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, entities.ErrCitationNotFound) {
			respondMessage(w, http.StatusNotFound, "Citation not found")
			return
		}
		log.Printf("deleting citation failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
