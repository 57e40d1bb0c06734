package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pricelink/supplier-mapping-service/internal/auth"
	"github.com/pricelink/supplier-mapping-service/internal/config"
	httpdto "github.com/pricelink/supplier-mapping-service/internal/delivery/http/dto"
)

const sessionCookieName = "admin_session"

type AuthHandler struct {
	sessions *auth.SessionManager
	cfg      config.AdminAuth
}

func NewAuthHandler(sessions *auth.SessionManager, cfg config.AdminAuth) *AuthHandler {
	return &AuthHandler{sessions: sessions, cfg: cfg}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload httpdto.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(payload.Username), []byte(h.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(payload.Password), []byte(h.cfg.Password)) == 1
	if !userOK || !passOK {
		writeJSON(w, http.StatusUnauthorized, httpdto.ErrorResponse{
			Error:   "INVALID_CREDENTIALS",
			Message: "invalid username or password",
		})
		return
	}

	token, err := h.sessions.Issue(payload.Username)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(time.Duration(h.cfg.SessionHours) * time.Hour / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, httpdto.StatusResponse{Status: "ok"})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, httpdto.StatusResponse{Status: "ok"})
}
