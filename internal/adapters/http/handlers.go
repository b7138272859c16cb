package httpadapter

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"svw.info/mapcolor/internal/domain"
	"svw.info/mapcolor/internal/infrastructure/storage"
	"svw.info/mapcolor/internal/usecase"
)

type Handler struct {
	UC     *usecase.Service
	BoardW float64
	BoardH float64
}

func New(uc *usecase.Service, boardW, boardH float64) *Handler {
	return &Handler{UC: uc, BoardW: boardW, BoardH: boardH}
}

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/generate", h.handleGenerate)
	api.POST("/attempt", h.handleAttempt)
	api.POST("/hint", h.handleHint)
	api.POST("/complete", h.handleComplete)
	api.GET("/leaderboard", h.handleLeaderboard)
	api.GET("/puzzle/:id", h.handleLoad)
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Level      int    `json:"level,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(c.Request.Context(), seed, parseDifficulty(req.Difficulty), req.Level, h.BoardW, h.BoardH)
	if err != nil {
		c.JSON(http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	// Best effort; a missing store must not block play.
	_ = h.UC.SavePuzzle(c.Request.Context(), p)
	c.JSON(http.StatusOK, generateResp{
		Puzzle:     p,
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Attempt ----

type attemptReq struct {
	Regions  []*domain.Region `json:"regions"`
	RegionID string           `json:"regionId"`
	Color    int              `json:"color"`
}

type attemptResp struct {
	domain.AttemptResult
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleAttempt(c *gin.Context) {
	var req attemptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, attemptResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if domain.RegionByID(req.Regions, req.RegionID) == nil {
		c.JSON(http.StatusBadRequest, attemptResp{Error: "unknown region: " + req.RegionID})
		return
	}
	c.JSON(http.StatusOK, attemptResp{AttemptResult: h.UC.Attempt(req.RegionID, req.Color, req.Regions)})
}

// ---- Hint ----

type hintReq struct {
	Puzzle *domain.Puzzle `json:"puzzle"`
}

type hintResp struct {
	Hint  domain.Hint `json:"hint,omitempty"`
	Found bool        `json:"found"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Puzzle == nil {
		c.JSON(http.StatusBadRequest, hintResp{Error: "invalid JSON: missing puzzle"})
		return
	}
	hint, found, err := h.UC.Hint(c.Request.Context(), req.Puzzle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Hint: hint, Found: found})
}

// ---- Complete ----

type completeReq struct {
	PuzzleID   string           `json:"puzzleId,omitempty"`
	Seed       int64            `json:"seed,omitempty"`
	Difficulty string           `json:"difficulty,omitempty"`
	DurationMs int64            `json:"durationMs"`
	Regions    []*domain.Region `json:"regions"`
}

type completeResp struct {
	ID       string `json:"id,omitempty"`
	Complete bool   `json:"complete"`
	Colors   int    `json:"colors,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h *Handler) handleComplete(c *gin.Context) {
	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, completeResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if !h.UC.IsComplete(req.Regions) {
		c.JSON(http.StatusOK, completeResp{Complete: false})
		return
	}
	rec := &domain.Completion{
		ID:         uuid.NewString(),
		PuzzleID:   req.PuzzleID,
		Seed:       req.Seed,
		Difficulty: parseDifficulty(req.Difficulty),
		DurationMs: req.DurationMs,
		Colors:     h.UC.DistinctColors(req.Regions),
		CreatedAt:  time.Now().UnixMilli(),
	}
	if err := h.UC.RecordCompletion(c.Request.Context(), rec); err != nil {
		c.JSON(http.StatusInternalServerError, completeResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, completeResp{ID: rec.ID, Complete: true, Colors: rec.Colors})
}

// ---- Leaderboard ----

type leaderboardResp struct {
	Entries []domain.Completion `json:"entries"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	d := parseDifficulty(c.Query("difficulty"))
	entries, err := h.UC.Leaderboard(c.Request.Context(), d, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, leaderboardResp{Error: err.Error()})
		return
	}
	if entries == nil {
		entries = []domain.Completion{}
	}
	c.JSON(http.StatusOK, leaderboardResp{Entries: entries})
}

// ---- Load ----

func (h *Handler) handleLoad(c *gin.Context) {
	p, err := h.UC.LoadPuzzle(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}
