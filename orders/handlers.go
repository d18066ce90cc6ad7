package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"dorata/cart"
	"dorata/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store    *Store
	Sessions *cart.Sessions
}

func NewHandler(store *Store, sessions *cart.Sessions) *Handler {
	return &Handler{Store: store, Sessions: sessions}
}

// SubmitOrder turns the session's cart plus the checkout form into a pending
// order. Validation failures come back as a per-field map; append failures
// come back retryable with the cart untouched.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var form SubmissionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Println("SubmitOrder decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	c, ok := h.Sessions.Get(r.Header.Get(cart.SessionHeader))
	if !ok || c.Empty() {
		utils.RespondWithError(w, http.StatusBadRequest, "Votre panier est vide")
		return
	}

	order, err := Submit(ctx, h.Store, c, form)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
				"error":  "validation",
				"fields": verr.Fields,
			})
			return
		}
		if errors.Is(err, ErrEmptyCart) {
			utils.RespondWithError(w, http.StatusBadRequest, "Votre panier est vide")
			return
		}
		log.Println("SubmitOrder append error:", err)
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, utils.M{
			"error":     "submission",
			"retryable": true,
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetPickupSlots lists the fixed pickup windows.
func (h *Handler) GetPickupSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"slots": PickupSlots})
}
