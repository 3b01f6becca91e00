package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-engine/service"
	"github.com/beka-birhanu/maze-engine/service/i"
	"github.com/beka-birhanu/maze-engine/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves maze generation, retrieval and solving.
type MazeController struct {
	mazes i.MazeManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(mazes i.MazeManager) (*MazeController, error) {
	if mazes == nil {
		return nil, errors.New("maze controller requires a maze manager")
	}
	return &MazeController{mazes: mazes}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.get)
		mazes.GET("/:ID/ascii", mc.ascii)
		mazes.GET("/live", mc.live)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.POST("/:ID/solve", mc.solve)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazes.Create(ctx, request.Width, request.Height, request.Algorithm)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDimensions) || errors.Is(err, service.ErrUnknownAlgorithm) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// get retrieves a stored maze.
func (mc *MazeController) get(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazes.Record(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// ascii renders a stored maze as text.
func (mc *MazeController) ascii(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	rendered, err := mc.mazes.Ascii(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.String(http.StatusOK, rendered)
}

// solve runs a solver over a stored maze.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path, trace, err := mc.mazes.Solve(ctx, id, request.Algorithm)
	if err != nil {
		switch {
		case errors.Is(err, solver.ErrUnknownKind):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, i.ErrMazeNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		case errors.Is(err, service.ErrUnsolvable):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		}
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(request.Algorithm, path, trace))
}

func mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}
