// Package ws exposes the daemon's status, mirror and control surface: a
// frame-mirror websocket in the exact bit order sent to hardware, a control
// websocket, and plain JSON endpoints a web UI can poll.
package ws

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/example/matrixclock/internal/app"
	"github.com/example/matrixclock/internal/driver"
	"github.com/example/matrixclock/internal/power"
)

type State struct {
	mu      sync.RWMutex
	ctrl    *app.Controller
	drv     driver.Driver
	clients map[*websocket.Conn]bool
}

func NewState(ctrl *app.Controller, drv driver.Driver) *State {
	return &State{
		ctrl:    ctrl,
		drv:     drv,
		clients: map[*websocket.Conn]bool{},
	}
}

// Routes registers every handler on the mux.
func (s *State) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.HandleFramesWS)
	mux.HandleFunc("/control", s.HandleControlWS)
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/api/time", s.HandleTime)
	mux.HandleFunc("/api/status", s.HandleStatus)
	mux.HandleFunc("/brightness", s.HandleBrightness)
	mux.HandleFunc("/schedule", s.HandleSchedule)
}

// Broadcast pushes a serialized frame to every mirror client. Wired as the
// controller's publish hook.
func (s *State) Broadcast(rows []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.clients) == 0 {
		return
	}
	type frameMsg struct {
		T    int64  `json:"t"`
		Rows []byte `json:"rows"`
	}
	b, _ := json.Marshal(frameMsg{T: time.Now().UnixNano(), Rows: rows})
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
}

func (s *State) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	// Register only after the topology write: once the client is visible,
	// Broadcast is the connection's sole writer.
	s.sendTopology(conn)
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// sendTopology tells a new mirror client how to decode the frames.
func (s *State) sendTopology(conn *websocket.Conn) {
	rows, rot, tx, ty := s.ctrl.Mirror()
	top := map[string]any{
		"tiles":    map[string]int{"x": tx, "y": ty},
		"rotation": rot.String(),
		"rows":     rows,
	}
	b, _ := json.Marshal(top)
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

func (s *State) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg controlMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		s.applyControl(msg)
	}
}

type controlMsg struct {
	Toggle     bool          `json:"toggle,omitempty"`
	Force      string        `json:"force,omitempty"` // "on" | "off"
	Brightness *int          `json:"brightness,omitempty"`
	Auto       *bool         `json:"auto,omitempty"`
	Test       *bool         `json:"test,omitempty"`
	Schedule   *power.Window `json:"schedule,omitempty"`
}

func (s *State) applyControl(msg controlMsg) {
	now := s.ctrl.Now()
	if msg.Toggle {
		s.ctrl.Do(func(m *power.Machine) { m.Toggle(now) })
	}
	switch msg.Force {
	case "on":
		s.ctrl.Do(func(m *power.Machine) { m.ForceOn(now) })
	case "off":
		s.ctrl.Do(func(m *power.Machine) { m.ForceOff(now) })
	}
	if msg.Brightness != nil {
		level := *msg.Brightness
		s.ctrl.Do(func(m *power.Machine) { m.SetManualLevel(level) })
	}
	if msg.Auto != nil {
		manual := !*msg.Auto
		s.ctrl.Do(func(m *power.Machine) { m.SetManualSource(manual) })
	}
	if msg.Schedule != nil {
		w := *msg.Schedule
		s.ctrl.Do(func(m *power.Machine) { m.SetSchedule(w) })
	}
	if msg.Test != nil && s.drv != nil {
		if err := s.drv.Test(*msg.Test); err != nil {
			log.Warn().Err(err).Msg("display test")
		}
	}
}

func (s *State) HandleHealth(w http.ResponseWriter, r *http.Request) {
	st := s.ctrl.Status()
	resp := map[string]any{
		"frame_id": st.FrameID,
		"uptime_s": st.UptimeS,
		"display":  st.Display,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *State) HandleTime(w http.ResponseWriter, r *http.Request) {
	now := s.ctrl.Now()
	resp := map[string]string{
		"time": now.Format("15:04:05"),
		"date": fmt.Sprintf("%d/%d/%d", now.Day(), int(now.Month()), now.Year()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *State) HandleStatus(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.ctrl.Status())
}

// HandleBrightness: ?mode=toggle flips the auto/manual source, ?value=N sets
// the manual level (clamped downstream).
func (s *State) HandleBrightness(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("mode") {
		s.ctrl.Do(func(m *power.Machine) { m.ToggleSource() })
		w.WriteHeader(http.StatusOK)
		return
	}
	if v := r.URL.Query().Get("value"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "bad value", http.StatusBadRequest)
			return
		}
		s.ctrl.Do(func(m *power.Machine) { m.SetManualLevel(level) })
	}
	w.WriteHeader(http.StatusOK)
}

// HandleSchedule accepts the off-window form fields. Values are clamped,
// never rejected.
func (s *State) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	win := power.Window{
		Enabled:     r.Form.Get("enabled") != "",
		StartHour:   formInt(r, "start_hour"),
		StartMinute: formInt(r, "start_min"),
		EndHour:     formInt(r, "end_hour"),
		EndMinute:   formInt(r, "end_min"),
	}
	s.ctrl.Do(func(m *power.Machine) { m.SetSchedule(win) })
	w.WriteHeader(http.StatusOK)
}

func formInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.Form.Get(key))
	return v
}
