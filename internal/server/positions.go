package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/fen"
	"github.com/lgbarn/fenboard/internal/output"
)

type PositionHandler struct{}

func (ph *PositionHandler) start(c *gin.Context) {
	c.JSON(http.StatusOK, output.PositionToJSON(chess.NewPosition()))
}

func (ph *PositionHandler) parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pushBadRequestMessage(c, err)
		return
	}

	var opts []fen.Option
	if req.Lenient {
		opts = append(opts, fen.WithLenient())
	}
	pos, err := fen.Parse(req.FEN, opts...)
	if err != nil {
		pushErrorMessage(c, err)
		return
	}
	c.JSON(http.StatusOK, output.PositionToJSON(pos))
}

func (ph *PositionHandler) format(c *gin.Context) {
	var jp output.JSONPosition
	if err := c.ShouldBindJSON(&jp); err != nil {
		pushBadRequestMessage(c, err)
		return
	}
	pos, err := jp.Position()
	if err != nil {
		pushErrorMessage(c, err)
		return
	}
	c.JSON(http.StatusOK, &FENMessage{FEN: fen.Format(pos)})
}
