package workload

import (
	"errors"
	"fmt"
	"strings"

	"workloadparser/core/workload/handler"
	"workloadparser/models"
)

// LineError is a malformed workload line. The run reports it and moves on.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Line is a tokenized workload line.
type Line struct {
	Entity models.Entity
	Action models.Action
	Args   []string
}

// Tokenize strips comments and section headers and splits the rest.
// ok is false for lines that carry no instruction.
func Tokenize(raw string) (Line, bool) {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "[") {
		return Line{}, false
	}
	if idx := strings.Index(text, "#"); idx >= 0 {
		text = text[:idx]
	}

	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		return Line{}, false
	}

	return Line{
		Entity: models.Entity(strings.ToUpper(tokens[0])),
		Action: models.Action(strings.ToLower(tokens[1])),
		Args:   tokens[2:],
	}, true
}

type Dispatcher struct {
	handlers []handler.Handler
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		handlers: make([]handler.Handler, 0),
	}
	d.registerHandlers()
	return d
}

func (d *Dispatcher) registerHandlers() {
	d.handlers = append(d.handlers,
		handler.NewUserHandler(),
		handler.NewProductHandler(),
		handler.NewOrderHandler(),
	)
}

// Parse turns one raw line into an instruction. A nil instruction with a nil
// error means the line is ignored: blank, comment, header or unknown command.
func (d *Dispatcher) Parse(lineNo int, raw string) (handler.Instruction, error) {
	line, ok := Tokenize(raw)
	if !ok {
		return nil, nil
	}

	for _, h := range d.handlers {
		if !h.CanHandle(line.Entity) {
			continue
		}

		inst, err := h.Handle(line.Action, line.Args)
		if errors.Is(err, handler.ErrUnknownAction) {
			return nil, nil
		}
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: strings.TrimSpace(raw), Err: err}
		}
		return inst, nil
	}

	return nil, nil
}
