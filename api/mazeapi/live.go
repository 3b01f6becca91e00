package mazeapi

import (
	"net/http"
	"strconv"

	"github.com/beka-birhanu/maze-engine/generator"
	"github.com/beka-birhanu/maze-engine/maze"
	"github.com/beka-birhanu/maze-engine/service"
	servicei "github.com/beka-birhanu/maze-engine/service/i"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const maxLiveDimension = 64

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// live streams a maze being generated, one step per client message. The
// engine itself has no pacing; the client's read/write rhythm is the clock
// here, while the maze service's tight loop is the instant driver.
func (mc *MazeController) live(ctx *gin.Context) {
	width := queryInt(ctx, "width", 24)
	height := queryInt(ctx, "height", 24)
	if width <= 0 || height <= 0 || width > maxLiveDimension || height > maxLiveDimension {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze dimensions"})
		return
	}

	var gen servicei.Generator
	switch ctx.DefaultQuery("algorithm", service.AlgorithmWilson) {
	case service.AlgorithmWilson:
		gen = generator.NewWilson(width, height)
	case service.AlgorithmRandomDFS:
		gen = generator.NewRandomDFS(width, height)
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown generation algorithm"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	m, err := maze.New(width, height)
	if err != nil {
		return
	}

	for {
		// Any client message is one tick.
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}

		done := gen.Step(m)

		encoded, err := maze.Encode(m)
		if err != nil {
			return
		}

		frame := LiveFrame{Done: done, Encoded: encoded, Walk: generatorWalk(gen)}
		if err := conn.WriteJSON(frame); err != nil {
			return
		}

		if done {
			return
		}
	}
}

// generatorWalk exposes the in-progress walk of the concrete generators so
// clients can draw it.
func generatorWalk(gen servicei.Generator) []PathPosition {
	var walk []maze.Position
	switch g := gen.(type) {
	case *generator.Wilson:
		walk = g.Walk()
	case *generator.RandomDFS:
		walk = g.Stack()
	}

	positions := make([]PathPosition, len(walk))
	for i, pos := range walk {
		positions[i] = PathPosition{X: pos.X, Y: pos.Y}
	}
	return positions
}

func queryInt(ctx *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(ctx.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return -1
	}
	return value
}
