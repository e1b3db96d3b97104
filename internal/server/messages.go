package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/fenboard/internal/errors"
)

// ErrorMessage is the body of every failed request.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FENMessage carries a single FEN string.
type FENMessage struct {
	FEN string `json:"fen"`
}

// ParseRequest is the body of POST /positions/parse.
type ParseRequest struct {
	FEN     string `json:"fen"`
	Lenient bool   `json:"lenient"`
}

func pushErrorMessage(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, &ErrorMessage{
		Code:    errors.Code(err),
		Message: err.Error(),
	})
}

func pushBadRequestMessage(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, &ErrorMessage{
		Code:    "BAD_REQUEST",
		Message: err.Error(),
	})
}
