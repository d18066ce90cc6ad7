package routes

import (
	"dorata/admin"
	"dorata/cart"
	"dorata/catalog"
	"dorata/feed"
	"dorata/middleware"
	"dorata/orders"
	"dorata/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/catalog", catalog.GetCatalog)
	router.GET("/api/catalog/:categoryid", catalog.GetCategory)
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.POST("/api/cart/items", h.AddItem)
	router.GET("/api/cart", h.GetCart)
	router.PATCH("/api/cart/items/:lineid", h.UpdateQuantity)
	router.DELETE("/api/cart/items/:lineid", h.RemoveItem)
	router.DELETE("/api/cart", h.ClearCart)
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/pickup-slots", h.GetPickupSlots)
	router.POST("/api/orders", rl.Limit(h.SubmitOrder))
}

func AddAdminRoutes(router *httprouter.Router, h *admin.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/admin/login", rl.Limit(h.Login))
	router.GET("/api/admin/orders", middleware.RequireRole(middleware.RoleAdmin, h.ListOrders))
	router.GET("/api/admin/orders/stats", middleware.RequireRole(middleware.RoleAdmin, h.GetStats))
	router.PATCH("/api/admin/orders/:orderid/status", middleware.RequireRole(middleware.RoleAdmin, h.SetStatus))
	router.GET("/api/admin/notifications/sound", middleware.RequireRole(middleware.RoleAdmin, h.GetSoundPref))
	router.PUT("/api/admin/notifications/sound", middleware.RequireRole(middleware.RoleAdmin, h.SetSoundPref))
}

// AddFeedRoutes wires the live order feed; the socket authenticates itself
// from the token query param, so it is not wrapped in RequireRole.
func AddFeedRoutes(router *httprouter.Router, hub *feed.Hub, store *orders.Store, auth feed.Authorizer) {
	router.GET("/api/admin/orders/feed", feed.WebSocketHandler(hub, store, auth))
}
