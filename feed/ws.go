package feed

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"dorata/middleware"
	"dorata/orders"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Authorizer gates feed access; it only answers yes or no, independent of how
// the credential reached us.
type Authorizer interface {
	IsAuthorized(credential string) bool
}

// WebSocketHandler upgrades an admin connection onto the live feed. Browsers
// cannot set headers on websocket dials, so the token rides in ?token=.
// The current order list is pushed first so a reconnecting view converges
// before any incremental event arrives.
func WebSocketHandler(hub *Hub, store *orders.Store, auth Authorizer) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		token := r.URL.Query().Get("token")
		if token == "" {
			token = r.Header.Get("Authorization")
			if len(token) > 7 && token[:7] == "Bearer " {
				token = token[7:]
			}
		}
		if !auth.IsAuthorized(token) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		claims, err := middleware.ParseToken(token)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Send:    make(chan []byte, 256),
			Session: claims.Subject,
		}

		// Queue the newest-first snapshot before the client joins the hub.
		// Send is buffered and nothing can close it yet, so this cannot
		// block or panic, and no broadcast can slip in ahead of it.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if list, err := store.List(ctx); err != nil {
			log.Println("feed snapshot:", err)
		} else {
			snapshot := struct {
				Action string      `json:"action"`
				Orders interface{} `json:"orders"`
			}{Action: "snapshot", Orders: list}
			if data, err := json.Marshal(snapshot); err == nil {
				client.Send <- data
			}
		}

		hub.Register(client)
		go writePump(client, conn)
		go readPump(client, conn, hub)
	}
}

func writePump(c *Client, conn *websocket.Conn) {
	defer conn.Close()
	for msg := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump only watches for the close; admins never send over the feed.
func readPump(c *Client, conn *websocket.Conn, hub *Hub) {
	defer func() {
		hub.Unregister(c)
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
