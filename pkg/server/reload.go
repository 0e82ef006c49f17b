package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	Path  string            `json:"path,omitempty"`
}

// ReloadHub manages the websocket connections of reloading browsers.
type ReloadHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
}

// NewReloadHub creates a hub with no clients.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // dev only
			},
		},
	}
}

// HandleWebSocket upgrades the request and keeps the connection until the
// browser goes away.
func (h *ReloadHub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// NotifyReload tells every browser to reload. path names the page that
// changed, if any.
func (h *ReloadHub) NotifyReload(path string) {
	h.broadcast(ReloadMessage{Type: ReloadTypeFull, Path: path})
}

// NotifyError shows errMsg in every browser.
func (h *ReloadHub) NotifyError(errMsg string) {
	h.broadcast(ReloadMessage{Type: ReloadTypeError, Error: errMsg})
}

// ClearError removes a previously shown error.
func (h *ReloadHub) ClearError() {
	h.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

func (h *ReloadHub) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	// gorilla connections allow one concurrent writer.
	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			delete(h.clients, client)
			h.mu.Unlock()
			client.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *ReloadHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}

// ReloadClientScript connects to /_reload, reloads the page on request
// and shows render errors in a banner until they clear. It reconnects
// with exponential backoff.
const ReloadClientScript = `<script>
(function() {
    'use strict';
    var delay = 1000;
    function showError(text) {
        console.error('[htmlnode]', text);
        var el = document.getElementById('htmlnode-error');
        if (!el) {
            el = document.createElement('pre');
            el.id = 'htmlnode-error';
            el.style.cssText = 'position:fixed;bottom:0;left:0;right:0;margin:0;padding:1rem;' +
                'background:#fee;color:#900;border-top:2px solid #c00;z-index:2147483647;white-space:pre-wrap';
            document.body.appendChild(el);
        }
        el.textContent = text;
    }
    function clearError() {
        var el = document.getElementById('htmlnode-error');
        if (el) { el.parentNode.removeChild(el); }
    }
    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/_reload');
        ws.onopen = function() { delay = 1000; };
        ws.onmessage = function(e) {
            var msg;
            try { msg = JSON.parse(e.data); } catch (err) { return; }
            if (msg.type === 'reload') { location.reload(); }
            if (msg.type === 'error') { showError(msg.error); }
            if (msg.type === 'clear') { clearError(); }
        };
        ws.onclose = function() {
            setTimeout(function() { delay = Math.min(delay * 2, 30000); connect(); }, delay);
        };
        ws.onerror = function() { ws.close(); };
    }
    connect();
})();
</script>`

// InjectReloadScript inserts ReloadClientScript before the last </body>,
// or appends it when the document has none.
func InjectReloadScript(html string) string {
	i := strings.LastIndex(strings.ToLower(html), "</body>")
	if i < 0 {
		return html + ReloadClientScript
	}
	return html[:i] + ReloadClientScript + html[i:]
}
