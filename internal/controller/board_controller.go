package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/restychess/backend/internal/model"
	"github.com/restychess/backend/internal/service"
)

type BoardController struct {
	boardService *service.BoardService
}

func NewBoardController(boardService *service.BoardService) *BoardController {
	return &BoardController{boardService: boardService}
}

// MoveRequest is the body for POST /v1/move. Fields are required; the
// square texts themselves are validated by the engine's coordinate parse.
type MoveRequest struct {
	FromSquare string `json:"from_square"`
	ToSquare   string `json:"to_square"`
}

func (r MoveRequest) validate() error {
	if r.FromSquare == "" {
		return errors.New("from_square is required")
	}
	if r.ToSquare == "" {
		return errors.New("to_square is required")
	}
	return nil
}

// RemoveRequest is the body for POST /v1/remove.
type RemoveRequest struct {
	Square string `json:"square"`
}

func (r RemoveRequest) validate() error {
	if r.Square == "" {
		return errors.New("square is required")
	}
	return nil
}

func (bc *BoardController) GetBoard(c *fiber.Ctx) error {
	return c.JSON(bc.boardService.GetBoardState())
}

func (bc *BoardController) MovePiece(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := req.validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	outcome, err := bc.boardService.MovePiece(req.FromSquare, req.ToSquare)
	if err != nil {
		return engineErrorResponse(c, err)
	}
	return c.JSON(outcome)
}

func (bc *BoardController) RemovePiece(c *fiber.Ctx) error {
	var req RemoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := req.validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	outcome, err := bc.boardService.RemovePiece(req.Square)
	if err != nil {
		return engineErrorResponse(c, err)
	}
	return c.JSON(outcome)
}

func (bc *BoardController) ResetBoard(c *fiber.Ctx) error {
	return c.JSON(bc.boardService.Reset())
}

func (bc *BoardController) GetLegalMoves(c *fiber.Ctx) error {
	square := c.Params("square")

	destinations, err := bc.boardService.LegalMoves(square)
	if err != nil {
		return engineErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"square":       square,
		"destinations": destinations,
	})
}

func (bc *BoardController) GetHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}

	entries, err := bc.boardService.History(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch history",
		})
	}
	return c.JSON(fiber.Map{
		"events": entries,
	})
}

// engineErrorResponse maps engine failures to status codes. Every engine
// failure is a caller error; anything else is unexpected.
func engineErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidCoordinate),
		errors.Is(err, model.ErrEmptyOriginSquare),
		errors.Is(err, model.ErrIllegalMove):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
		})
	}
}
