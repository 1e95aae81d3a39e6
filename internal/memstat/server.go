package memstat

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Server streams memory samples over a websocket so the numbers can be
// watched from a browser next to the OS task manager. Disabled unless the
// CLI supplies an address.
type Server struct {
	addr     string
	interval time.Duration

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local tooling, any origin is fine
	},
}

// NewServer creates a stats server for the given listen address.
func NewServer(addr string, interval time.Duration) *Server {
	return &Server{
		addr:     addr,
		interval: interval,
		clients:  make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Start launches the HTTP listener and the broadcast loop. Errors from the
// listener are logged; the render loop must not die because a stats port
// is taken.
func (s *Server) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveHome)
	mux.HandleFunc("/ws", s.handleWebSocket)

	go s.broadcastLoop()
	go func() {
		log.Printf("memory stats on http://%s", s.addr)
		if err := http.ListenAndServe(s.addr, mux); err != nil {
			log.Printf("stats server stopped: %v", err)
		}
	}()
}

func (s *Server) serveHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, statsPage)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	s.mu.Lock()
	s.clients[conn] = connMutex
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
	}()

	// Send one sample immediately, then hold the connection open; the
	// broadcast loop takes over. Reads only serve to detect the close.
	connMutex.Lock()
	err = conn.WriteJSON(Take())
	connMutex.Unlock()
	if err != nil {
		return
	}
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) broadcastLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for range ticker.C {
		sample := Take()

		s.mu.RLock()
		conns := make(map[*websocket.Conn]*sync.Mutex, len(s.clients))
		for c, m := range s.clients {
			conns[c] = m
		}
		s.mu.RUnlock()

		for conn, connMutex := range conns {
			connMutex.Lock()
			err := conn.WriteJSON(sample)
			connMutex.Unlock()
			if err != nil {
				conn.Close()
			}
		}
	}
}

const statsPage = `<!DOCTYPE html>
<html>
<head><title>spherebench memory</title></head>
<body style="font-family: monospace; background: #111; color: #eee">
<h3>spherebench runtime memory</h3>
<pre id="out">connecting...</pre>
<script>
const out = document.getElementById('out');
const ws = new WebSocket('ws://' + location.host + '/ws');
const mib = n => (n / 1048576).toFixed(1) + ' MiB';
ws.onmessage = e => {
  const s = JSON.parse(e.data);
  out.textContent =
    'heap used     ' + mib(s.heapAlloc) + '\n' +
    'heap reserved ' + mib(s.heapSys) + '\n' +
    'runtime total ' + mib(s.sys) + '\n' +
    'GC cycles     ' + s.numGC + '\n' +
    'goroutines    ' + s.goroutines;
};
ws.onclose = () => { out.textContent += '\n(closed)'; };
</script>
</body>
</html>
`
