package handler

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"workloadparser/models"
)

var (
	// ErrUnknownAction is returned when a handler owns the entity but not the action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingField is returned when a positional token is absent.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidNumber is returned when a token that must be numeric is not.
	ErrInvalidNumber = errors.New("invalid number")
)

// Instruction is one parsed workload line, ready to be turned into a request.
type Instruction interface {
	Entity() models.Entity
	Action() models.Action
	Request(baseURL string) models.Request
}

type Handler interface {
	CanHandle(entity models.Entity) bool
	Handle(action models.Action, args []string) (Instruction, error)
}

// BaseHandler - positional token access shared by all handlers
type BaseHandler struct{}

func (h *BaseHandler) Token(args []string, idx int, field string) (string, error) {
	if idx >= len(args) {
		return "", fmt.Errorf("%s (position %d): %w", field, idx+1, ErrMissingField)
	}
	return args[idx], nil
}

func (h *BaseHandler) Int(args []string, idx int, field string) (int, error) {
	raw, err := h.Token(args, idx, field)
	if err != nil {
		return 0, err
	}
	return parseInt(field, raw)
}

func (h *BaseHandler) Float(args []string, idx int, field string) (float64, error) {
	raw, err := h.Token(args, idx, field)
	if err != nil {
		return 0, err
	}
	return parseFloat(field, raw)
}

// Pairs collects key:value tokens starting at idx. Tokens without a colon are skipped,
// values keep everything after the first colon.
func (h *BaseHandler) Pairs(args []string, idx int) [][2]string {
	var pairs [][2]string
	for i := idx; i < len(args); i++ {
		key, value, ok := strings.Cut(args[i], ":")
		if !ok {
			continue
		}
		pairs = append(pairs, [2]string{key, value})
	}
	return pairs
}

func parseInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, raw, ErrInvalidNumber)
	}
	return v, nil
}

func parseFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %q: %w", field, raw, ErrInvalidNumber)
	}
	return v, nil
}
