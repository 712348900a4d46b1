package service

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/restychess/backend/internal/model"
	"github.com/restychess/backend/internal/store"
	"github.com/restychess/backend/internal/ws"
	"golang.org/x/exp/slices"
)

// BoardState is the full serialized view of the board sent to clients:
// the 64-square map (nil entries for empty squares), the occupied-square
// list, the compact text grid, the FEN line and the side to move.
type BoardState struct {
	Board  map[string]*model.Piece `json:"board"`
	Pieces []model.PlacedPiece     `json:"pieces"`
	Grid   string                  `json:"grid"`
	FEN    string                  `json:"fen"`
	Turn   model.Color             `json:"turn"`
}

// MoveOutcome is the response payload of a successful move.
type MoveOutcome struct {
	BoardState
	FromSquare    string       `json:"from_square"`
	ToSquare      string       `json:"to_square"`
	MovedPiece    model.Piece  `json:"moved_piece"`
	CapturedPiece *model.Piece `json:"captured_piece"`
}

// RemoveOutcome is the response payload of a remove. RemovedPiece is nil
// when the square was already empty; that is not an error.
type RemoveOutcome struct {
	BoardState
	RemovedSquare string       `json:"removed_square"`
	RemovedPiece  *model.Piece `json:"removed_piece"`
}

// BoardService owns the single process-lifetime board. Every mutation
// goes through the write lock and every read through the read lock, so
// two concurrent moves can never interleave their read-modify-write of
// occupancy. Watch connections get the new state pushed after each
// mutation.
type BoardService struct {
	mu    sync.RWMutex
	board *model.Board
	turn  model.Color
	log   *store.MoveLog

	watchersMu sync.RWMutex
	watchers   map[string]*websocket.Conn
}

// NewBoardService starts from the standard position with white to move.
// moveLog may be nil to disable persistence.
func NewBoardService(moveLog *store.MoveLog) *BoardService {
	return &BoardService{
		board:    model.NewStandardBoard(),
		turn:     model.White,
		log:      moveLog,
		watchers: make(map[string]*websocket.Conn),
	}
}

// buildState must be called with at least the read lock held.
func (bs *BoardService) buildState() BoardState {
	boardMap := make(map[string]*model.Piece, 64)
	for _, square := range model.AllSquares() {
		boardMap[square.String()] = bs.board.PieceAt(square)
	}
	return BoardState{
		Board:  boardMap,
		Pieces: bs.board.Structured(),
		Grid:   bs.board.CompactText(),
		FEN:    bs.board.FEN(bs.turn),
		Turn:   bs.turn,
	}
}

func (bs *BoardService) GetBoardState() BoardState {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	return bs.buildState()
}

func (bs *BoardService) MovePiece(fromText, toText string) (MoveOutcome, error) {
	from, err := model.ParseCoordinate(fromText)
	if err != nil {
		return MoveOutcome{}, err
	}
	to, err := model.ParseCoordinate(toText)
	if err != nil {
		return MoveOutcome{}, err
	}

	bs.mu.Lock()
	result, err := bs.board.ApplyMove(from, to)
	if err != nil {
		bs.mu.Unlock()
		return MoveOutcome{}, err
	}
	bs.turn = bs.turn.Opposite()

	if bs.log != nil {
		captured := ""
		if result.Captured != nil {
			captured = fmt.Sprintf("%s %s", result.Captured.Color, result.Captured.Type)
		}
		if err := bs.log.RecordMove(fromText, toText, string(result.Piece.Type), string(result.Piece.Color), captured); err != nil {
			fmt.Println("failed to record move:", err)
		}
	}

	outcome := MoveOutcome{
		BoardState:    bs.buildState(),
		FromSquare:    fromText,
		ToSquare:      toText,
		MovedPiece:    result.Piece,
		CapturedPiece: result.Captured,
	}
	bs.mu.Unlock()

	go bs.broadcastState(outcome.BoardState)
	return outcome, nil
}

func (bs *BoardService) RemovePiece(squareText string) (RemoveOutcome, error) {
	square, err := model.ParseCoordinate(squareText)
	if err != nil {
		return RemoveOutcome{}, err
	}

	bs.mu.Lock()
	removed := bs.board.Remove(square)

	if bs.log != nil && removed != nil {
		if err := bs.log.RecordRemove(squareText, string(removed.Type), string(removed.Color)); err != nil {
			fmt.Println("failed to record remove:", err)
		}
	}

	outcome := RemoveOutcome{
		BoardState:    bs.buildState(),
		RemovedSquare: squareText,
		RemovedPiece:  removed,
	}
	bs.mu.Unlock()

	if removed != nil {
		go bs.broadcastState(outcome.BoardState)
	}
	return outcome, nil
}

// Reset reinitializes the standard position with white to move.
func (bs *BoardService) Reset() BoardState {
	bs.mu.Lock()
	bs.board = model.NewStandardBoard()
	bs.turn = model.White

	if bs.log != nil {
		if err := bs.log.RecordReset(); err != nil {
			fmt.Println("failed to record reset:", err)
		}
	}

	state := bs.buildState()
	bs.mu.Unlock()

	go bs.broadcastState(state)
	return state
}

// LegalMoves returns the destinations of the piece on a square, sorted
// for determinism.
func (bs *BoardService) LegalMoves(squareText string) ([]string, error) {
	square, err := model.ParseCoordinate(squareText)
	if err != nil {
		return nil, err
	}

	bs.mu.RLock()
	defer bs.mu.RUnlock()

	piece := bs.board.PieceAt(square)
	if piece == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrEmptyOriginSquare, squareText)
	}

	destinations := []string{}
	for _, destination := range piece.LegalDestinations(bs.board, square) {
		destinations = append(destinations, destination.String())
	}
	slices.Sort(destinations)
	return destinations, nil
}

func (bs *BoardService) History(limit int) ([]store.Entry, error) {
	if bs.log == nil {
		return []store.Entry{}, nil
	}
	return bs.log.Recent(limit)
}

// RegisterWatcher adds a board watch connection, sends it the current
// state, and returns the id to unregister with.
func (bs *BoardService) RegisterWatcher(conn *websocket.Conn) string {
	id := uuid.New().String()

	bs.watchersMu.Lock()
	bs.watchers[id] = conn
	bs.watchersMu.Unlock()
	fmt.Printf("Registered board watcher %s\n", id)

	state := bs.GetBoardState()
	if err := writeState(conn, state); err != nil {
		fmt.Println("Failed to send state to watcher", id, err)
	}
	return id
}

func (bs *BoardService) UnregisterWatcher(id string) {
	bs.watchersMu.Lock()
	defer bs.watchersMu.Unlock()
	delete(bs.watchers, id)
}

// broadcastState pushes a state snapshot to every watcher, dropping
// connections that fail to take the write.
func (bs *BoardService) broadcastState(state BoardState) {
	bs.watchersMu.RLock()
	active := make(map[string]*websocket.Conn, len(bs.watchers))
	for id, conn := range bs.watchers {
		active[id] = conn
	}
	bs.watchersMu.RUnlock()

	for id, conn := range active {
		if err := writeState(conn, state); err != nil {
			fmt.Println("Failed to send state to watcher", id, err)
			bs.watchersMu.Lock()
			delete(bs.watchers, id)
			bs.watchersMu.Unlock()
		}
	}
}

func writeState(conn *websocket.Conn, state BoardState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return conn.WriteJSON(ws.Message{
		Type:    ws.MessageTypeBoardState,
		Payload: json.RawMessage(payload),
	})
}
