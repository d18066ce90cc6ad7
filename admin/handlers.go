package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"dorata/globals"
	"dorata/models"
	"dorata/notifier"
	"dorata/orders"
	"dorata/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store    *orders.Store
	Auth     Authorizer
	Notifier *notifier.Notifier
}

func NewHandler(store *orders.Store, auth Authorizer, n *notifier.Notifier) *Handler {
	return &Handler{Store: store, Auth: auth, Notifier: n}
}

// Login exchanges a valid PIN for a role-bearing token. A wrong PIN just
// re-prompts; there is no lockout.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if !h.Auth.IsAuthorized(body.PIN) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Code PIN incorrect")
		return
	}

	token, err := issueToken()
	if err != nil {
		log.Println("Login token error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": token})
}

// ListOrders returns every order, newest first.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		log.Println("ListOrders error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve orders")
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"orders": list})
}

// GetStats returns the dashboard tally.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		log.Println("GetStats error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve orders")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ComputeTally(list))
}

// SetStatus applies one forward transition to an order. The store enforces
// the ordering; the handler just maps its verdict onto HTTP.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if !body.Status.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	order, err := h.Store.SetStatus(ctx, ps.ByName("orderid"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, orders.ErrBadTransition):
			utils.RespondWithError(w, http.StatusConflict, "Invalid status transition")
		default:
			log.Println("SetStatus error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// GetSoundPref reports the session's notification sound preference.
func (h *Handler) GetSoundPref(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session := sessionFrom(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"soundEnabled": h.Notifier.SoundEnabled(session),
	})
}

// SetSoundPref toggles the session's notification sound preference.
func (h *Handler) SetSoundPref(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		SoundEnabled *bool `json:"soundEnabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.SoundEnabled == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "soundEnabled is required")
		return
	}

	session := sessionFrom(r)
	h.Notifier.SetSoundEnabled(session, *body.SoundEnabled)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"soundEnabled": *body.SoundEnabled,
	})
}

func sessionFrom(r *http.Request) string {
	if v, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		return v
	}
	return ""
}
