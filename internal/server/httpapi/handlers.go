package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kanishkgoel/gridboard/internal/common"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type savePreferencesRequest struct {
	Username string          `json:"username"`
	Filters  json.RawMessage `json:"filters"`
	Session  json.RawMessage `json:"session"`
	Columns  json.RawMessage `json:"columns,omitempty"`
}

type getPreferencesRequest struct {
	Username string `json:"username"`
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body.", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decode(w, r, &req) {
		return
	}

	_, err := s.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			http.Error(w, "User already exists.", http.StatusBadRequest)
			return
		}
		s.logger.Error(r.Context(), "registration failed", "username", req.Username, "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", req.Username)
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte("User registered successfully."))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}

	_, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			http.Error(w, "Invalid credentials.", http.StatusUnauthorized)
			return
		}
		s.logger.Error(r.Context(), "login failed", "username", req.Username, "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Write([]byte("Login successful."))
}

func (s *Server) handleSavePreferences(w http.ResponseWriter, r *http.Request) {
	var req savePreferencesRequest
	if !decode(w, r, &req) {
		return
	}

	err := s.prefs.Save(r.Context(), req.Username, req.Filters, req.Session, req.Columns)
	if err != nil {
		s.logger.Error(r.Context(), "saving preferences failed", "username", req.Username, "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Write([]byte("Preferences saved successfully."))
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	var req getPreferencesRequest
	if !decode(w, r, &req) {
		return
	}

	record, err := s.prefs.Get(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.Error(w, "User not found.", http.StatusNotFound)
			return
		}
		s.logger.Error(r.Context(), "loading preferences failed", "username", req.Username, "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(record); err != nil {
		s.logger.Error(r.Context(), "encoding preferences failed", "username", req.Username, "error", err.Error())
	}
}

func (s *Server) handleGetTable(w http.ResponseWriter, r *http.Request) {
	data, err := s.dataset.Load(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "reading dataset failed", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Server is running"))
}
