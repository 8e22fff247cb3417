package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/BriyanNicho/tiktok-quiz/internal/services"
	"github.com/BriyanNicho/tiktok-quiz/internal/tiktok"
	"github.com/BriyanNicho/tiktok-quiz/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub        *ws.Hub
	state      *services.StateService
	scoring    *services.ScoringEngine
	pintar     *services.ScoreLedger
	supervisor *tiktok.Supervisor
}

func NewWSHandler(
	hub *ws.Hub,
	state *services.StateService,
	scoring *services.ScoringEngine,
	pintar *services.ScoreLedger,
	supervisor *tiktok.Supervisor,
) *WSHandler {
	return &WSHandler{
		hub:        hub,
		state:      state,
		scoring:    scoring,
		pintar:     pintar,
		supervisor: supervisor,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// clientMessage is the envelope for inbound control messages. addScore is an
// accepted alias for addPintarScore.
type clientMessage struct {
	Type     string                     `json:"type"`
	Username string                     `json:"username,omitempty"`
	State    map[string]json.RawMessage `json:"state,omitempty"`
	UniqueID string                     `json:"uniqueId,omitempty"`
	Nickname string                     `json:"nickname,omitempty"`
	Avatar   string                     `json:"avatar,omitempty"`
	Score    int                        `json:"score,omitempty"`
}

// HandleWebSocket godoc
// @Summary      Control panel / overlay websocket
// @Description  Persistent duplex connection: the client receives a sync snapshot on connect, then every state, score and feed broadcast. Accepts control commands (connect, disconnect, updateState, triggerAction, addPintarScore).
// @Tags         websocket
// @Router       /ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}
		h.dispatch(raw)
	}
}

// dispatch routes one inbound frame. Malformed or unknown messages are logged
// and dropped; they never close the connection.
func (h *WSHandler) dispatch(raw []byte) {
	var msg clientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Printf("ws: bad message: %v", err)
		return
	}

	switch msg.Type {
	case "connect":
		h.supervisor.Start(msg.Username)
	case "disconnect":
		h.supervisor.Stop()
	case "updateState":
		h.updateState(msg.State)
	case "triggerAction":
		h.relayAction(raw)
	case "addPintarScore", "addScore":
		h.addPintarScore(msg)
	default:
		log.Printf("ws: unknown message type %q", msg.Type)
	}
}

func (h *WSHandler) updateState(patch map[string]json.RawMessage) {
	if len(patch) == 0 {
		return
	}

	state, err := h.state.Merge(patch)
	if err != nil {
		log.Printf("ws: update state: %v", err)
		return
	}

	// a new question opens a fresh credit window
	if _, ok := patch["activeQuestion"]; ok {
		h.scoring.QuestionChanged()
	}

	h.hub.Broadcast(ws.StateUpdatedMessage{Type: ws.TypeStateUpdated, State: state})
}

// relayAction rebroadcasts a presentation-only command untouched, tagged with
// its origin. The server does not interpret the payload.
func (h *WSHandler) relayAction(raw []byte) {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("ws: bad action payload: %v", err)
		return
	}
	payload["from"] = "control"
	h.hub.Broadcast(payload)
}

func (h *WSHandler) addPintarScore(msg clientMessage) {
	if msg.UniqueID == "" {
		log.Printf("ws: %s without uniqueId", msg.Type)
		return
	}

	if _, err := h.pintar.Increment(msg.UniqueID, msg.Nickname, msg.Avatar, msg.Score); err != nil {
		log.Printf("ws: add score: %v", err)
		return
	}
	entries, err := h.pintar.List()
	if err != nil {
		log.Printf("ws: list scores: %v", err)
		return
	}
	h.hub.Broadcast(ws.LedgerMessage{Type: ws.TypeUpdatePintar, PintarScores: entries})
}
