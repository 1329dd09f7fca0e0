package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nestorgt/sudoku-validator/service/gridservice"
	"github.com/nestorgt/sudoku-validator/sudoku"
)

type ValidateHandler struct{}

func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{}
}

// Board validates a full 9x9 board. An invalid board is still a 200: the
// response carries valid=false and the first failure. Only an unreadable
// request body is a client error.
func (h *ValidateHandler) Board(c *gin.Context) {
	var req gridservice.ValidateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("read board request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newResponse(sudoku.ValidateBoard(req.Board)))
}

// Group validates a single group of nine cells.
func (h *ValidateHandler) Group(c *gin.Context) {
	var req gridservice.ValidateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("read group request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newResponse(sudoku.ValidateGroup(req.Numbers, req.Label)))
}

func newResponse(err error) *gridservice.ValidateResponse {
	if err != nil {
		log.Info().Str("reason", err.Error()).Msg("grid rejected")
		return &gridservice.ValidateResponse{Error: gridservice.NewGroupError(err)}
	}
	return &gridservice.ValidateResponse{Valid: true}
}
