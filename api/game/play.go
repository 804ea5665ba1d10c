package gameapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/maze-sprint-api/api/identity"
	"github.com/beka-birhanu/maze-sprint-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultLeaderboardCount = 10

// PlayController manages level runs: starting levels, moving through the
// maze, and reading best times and leaderboards.
type PlayController struct {
	playManager i.PlayManager
	bestTimes   i.BestTimeRepo
	leaderboard i.Leaderboard
}

// NewPlayController initializes a PlayController.
func NewPlayController(pm i.PlayManager, bt i.BestTimeRepo, lb i.Leaderboard) (*PlayController, error) {
	if pm == nil || bt == nil || lb == nil {
		return nil, errors.New("play controller dependencies are incomplete")
	}

	return &PlayController{
		playManager: pm,
		bestTimes:   bt,
		leaderboard: lb,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *PlayController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (pc *PlayController) RegisterProtected(route *gin.RouterGroup) {
	play := route.Group("/play")
	{
		play.POST("/levels/:level/start", pc.startLevel)
		play.GET("/levels/:level/leaderboard", pc.levelLeaderboard)
		play.POST("/sessions/:ID/move", pc.move)
		play.GET("/sessions/:ID", pc.sessionState)
		play.GET("/bestTimes", pc.playerBestTimes)
	}
}

// startLevel generates a maze for the requested level and opens a session.
func (pc *PlayController) startLevel(ctx *gin.Context) {
	playerID, err := identity.CurrentPlayerID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	level, err := strconv.Atoi(ctx.Params.ByName("level"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid level number"})
		return
	}

	session, err := pc.playManager.StartLevel(playerID, level)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newSessionResponse(session))
}

// move applies one directional move to a session.
func (pc *PlayController) move(ctx *gin.Context) {
	playerID, err := identity.CurrentPlayerID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	sessionID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	before, err := pc.playManager.Session(playerID, sessionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	beforePos := before.PlayerPos()

	session, err := pc.playManager.Move(playerID, sessionID, request.Direction)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	playerPos := session.PlayerPos()
	ctx.JSON(http.StatusOK, &MoveResponse{
		Moved:          playerPos != beforePos,
		Won:            session.Won(),
		Player:         PositionResponse{Row: playerPos.Row, Col: playerPos.Col},
		ElapsedSeconds: session.ElapsedSeconds(),
	})
}

// sessionState returns the full state of a session.
func (pc *PlayController) sessionState(ctx *gin.Context) {
	playerID, err := identity.CurrentPlayerID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	sessionID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	session, err := pc.playManager.Session(playerID, sessionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newSessionResponse(session))
}

// playerBestTimes returns the authenticated player's best times per level.
func (pc *PlayController) playerBestTimes(ctx *gin.Context) {
	playerID, err := identity.CurrentPlayerID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	records, err := pc.bestTimes.ByPlayer(playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error loading best times"})
		return
	}

	response := make([]BestTimeResponse, 0, len(records))
	for _, record := range records {
		response = append(response, BestTimeResponse{Level: record.Level, Seconds: record.Seconds})
	}

	ctx.JSON(http.StatusOK, response)
}

// levelLeaderboard returns the fastest completions of a level.
func (pc *PlayController) levelLeaderboard(ctx *gin.Context) {
	level, err := strconv.Atoi(ctx.Params.ByName("level"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid level number"})
		return
	}

	count := int64(defaultLeaderboardCount)
	if raw := ctx.Query("count"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
			return
		}
		count = parsed
	}

	entries, err := pc.leaderboard.Top(ctx, level, count)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error loading leaderboard"})
		return
	}

	response := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, LeaderboardEntryResponse{PlayerID: entry.PlayerID, Seconds: entry.Seconds})
	}

	ctx.JSON(http.StatusOK, response)
}
