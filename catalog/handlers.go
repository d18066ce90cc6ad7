package catalog

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"dorata/rdx"
	"dorata/utils"

	"github.com/julienschmidt/httprouter"
)

const cacheTTL = 12 * time.Hour

// GetCatalog serves the whole menu plus the size price table.
func GetCatalog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cacheKey := "catalog:full"

	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	payload := utils.M{
		"categories": Menu,
		"sizePrices": SizePrices,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode catalog")
		return
	}
	if err := rdx.RdxSetWithTTL(cacheKey, string(data), cacheTTL); err != nil {
		log.Println("catalog cache set:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetCategory serves a single category.
func GetCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cat, err := CategoryByID(ps.ByName("categoryid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cat)
}
