package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"routeopt/internal/model"
	"routeopt/internal/opt"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(_ *http.Request) bool { return true }}

type streamFrame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type incumbentPayload struct {
	Order []string `json:"order"`
	Total float64  `json:"total"`
	Perm  int64    `json:"perm"`
}

// SolveStreamHandler handles /v1/solve/stream. The client sends one
// solve request as the first frame; the server streams "incumbent"
// frames as the exhaustive search improves its best tour, then a final
// "result" frame. Only brute-force runs produce incumbents.
func (s *Server) SolveStreamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(1 << 20)
	_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))

	var req model.SolveRequest
	if err := conn.ReadJSON(&req); err != nil {
		writeStreamError(conn, "invalid request: "+err.Error())
		return
	}
	if err := validateSolveRequest(&req, req.Places); err != nil {
		writeStreamError(conn, err.Error())
		return
	}

	names := make([]string, len(req.Places))
	for i, p := range req.Places {
		names[i] = p.Name
	}

	onIncumbent := func(inc opt.Incumbent) {
		order := make([]string, len(inc.Order))
		for i, idx := range inc.Order {
			order[i] = names[idx]
		}
		payload, _ := json.Marshal(incumbentPayload{Order: order, Total: inc.Total, Perm: inc.Perm})
		_ = conn.WriteJSON(streamFrame{Type: "incumbent", Payload: payload})
	}

	res, err := s.solve(req.Places, req, onIncumbent)
	if err != nil {
		writeStreamError(conn, err.Error())
		return
	}
	payload, _ := json.Marshal(res)
	_ = conn.WriteJSON(streamFrame{Type: "result", Payload: payload})
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func writeStreamError(conn *websocket.Conn, msg string) {
	payload, _ := json.Marshal(map[string]string{"message": msg})
	_ = conn.WriteJSON(streamFrame{Type: "error", Payload: payload})
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, ""))
}
