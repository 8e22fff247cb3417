package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/BriyanNicho/tiktok-quiz/internal/models"
	"github.com/BriyanNicho/tiktok-quiz/internal/services"
	"github.com/BriyanNicho/tiktok-quiz/internal/ws"

	"github.com/gin-gonic/gin"
)

type StateHandler struct {
	state   *services.StateService
	scoring *services.ScoringEngine
	pintar  *services.ScoreLedger
	sultan  *services.ScoreLedger
	hub     *ws.Hub
}

func NewStateHandler(
	state *services.StateService,
	scoring *services.ScoringEngine,
	pintar, sultan *services.ScoreLedger,
	hub *ws.Hub,
) *StateHandler {
	return &StateHandler{
		state:   state,
		scoring: scoring,
		pintar:  pintar,
		sultan:  sultan,
		hub:     hub,
	}
}

type StateResponse struct {
	models.SessionState
	PintarScores []models.ScoreEntry `json:"pintarScores"`
	SultanScores []models.ScoreEntry `json:"sultanScores"`
	ServerTime   int64               `json:"serverTime"`
}

// GetState godoc
// @Summary      Full relay state
// @Description  Session state plus both leaderboards. ServerTime lets clients compensate for clock drift against timerEndTime.
// @Tags         state
// @Produce      json
// @Success      200 {object} StateResponse
// @Router       /api/state [get]
func (h *StateHandler) GetState(c *gin.Context) {
	pintarScores, err := h.pintar.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	sultanScores, err := h.sultan.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, StateResponse{
		SessionState: h.state.Get(),
		PintarScores: pintarScores,
		SultanScores: sultanScores,
		ServerTime:   time.Now().UnixMilli(),
	})
}

// Reset godoc
// @Summary      Full quiz reset
// @Description  Clears both leaderboards and the active question, timer and running flag. The feed subscription and connectedUser are untouched.
// @Tags         state
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} SuccessResponse
// @Router       /api/reset [post]
func (h *StateHandler) Reset(c *gin.Context) {
	if err := h.pintar.ResetAll(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.sultan.ResetAll(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if _, err := h.state.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	h.scoring.QuestionChanged()

	log.Println("state: full reset")
	h.hub.Broadcast(ws.ResetMessage{Type: ws.TypeReset})
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
