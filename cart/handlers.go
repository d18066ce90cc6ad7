package cart

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"dorata/catalog"
	"dorata/utils"

	"github.com/julienschmidt/httprouter"
)

// SessionHeader carries the opaque cart session id. The server mints one on
// first touch and echoes it back; the client sends it on every cart call.
const SessionHeader = "X-Cart-Session"

type Handler struct {
	Sessions *Sessions
}

func NewHandler(sessions *Sessions) *Handler {
	return &Handler{Sessions: sessions}
}

// AddItem resolves the catalog price server-side and adds one unit to the cart.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		ItemID string `json:"itemId"`
		Size   string `json:"size,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Println("AddItem decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	item, err := catalog.ItemByID(body.ItemID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Unknown item")
		return
	}
	price, err := catalog.PriceFor(item, body.Size)
	if err != nil {
		if errors.Is(err, catalog.ErrBadSize) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid size for this item")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "Could not price item")
		return
	}

	session, c := h.Sessions.GetOrCreate(r.Header.Get(SessionHeader))
	c.AddItem(item, body.Size, price)

	w.Header().Set(SessionHeader, session)
	utils.RespondWithJSON(w, http.StatusCreated, c.View())
}

// GetCart returns the session's lines plus derived totals.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session, c := h.Sessions.GetOrCreate(r.Header.Get(SessionHeader))
	c.Touch()
	w.Header().Set(SessionHeader, session)
	utils.RespondWithJSON(w, http.StatusOK, c.View())
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Quantity == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Quantity is required")
		return
	}

	c, ok := h.Sessions.Get(r.Header.Get(SessionHeader))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "No active cart")
		return
	}
	c.UpdateQuantity(ps.ByName("lineid"), *body.Quantity)
	utils.RespondWithJSON(w, http.StatusOK, c.View())
}

// RemoveItem drops a line from the cart.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	c, ok := h.Sessions.Get(r.Header.Get(SessionHeader))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "No active cart")
		return
	}
	c.RemoveItem(ps.ByName("lineid"))
	utils.RespondWithJSON(w, http.StatusOK, c.View())
}

// ClearCart empties the cart without ending the session.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c, ok := h.Sessions.Get(r.Header.Get(SessionHeader))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "No active cart")
		return
	}
	c.Clear()
	utils.RespondWithJSON(w, http.StatusOK, c.View())
}
