package replay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"workloadparser/core/client"
	"workloadparser/core/workload"
	"workloadparser/core/workload/handler"
	"workloadparser/metrics"
	"workloadparser/models"
	"workloadparser/ui"
)

const maxLineSize = 1024 * 1024

// Sender delivers one request and returns the server's answer.
type Sender interface {
	Send(ctx context.Context, r models.Request) (models.Result, error)
}

// Stats counts what happened to the lines of one run.
type Stats struct {
	Lines           int
	Sent            int
	Skipped         int
	ParseErrors     int
	TransportErrors int
	RequestErrors   int
	HTTPErrors      int
}

type Replayer struct {
	baseURL    string
	dispatcher *workload.Dispatcher
	sender     Sender
	printer    *ui.Printer
	logger     *zap.Logger
}

func NewReplayer(baseURL string, sender Sender, printer *ui.Printer, logger *zap.Logger) *Replayer {
	return &Replayer{
		baseURL:    baseURL,
		dispatcher: workload.NewDispatcher(),
		sender:     sender,
		printer:    printer,
		logger:     logger,
	}
}

// RunFile opens the workload file and replays it front to back.
func (r *Replayer) RunFile(ctx context.Context, path string) (Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("opening workload: %w", err)
	}
	defer file.Close()

	return r.Run(ctx, file)
}

// Run replays every line of in sequentially. Each request completes before
// the next line is read. Malformed lines and failed requests are reported and
// skipped; only read errors and cancellation stop the run.
func (r *Replayer) Run(ctx context.Context, in io.Reader) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		lineNo++
		stats.Lines++
		r.execute(ctx, lineNo, scanner.Text(), &stats)
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading workload: %w", err)
	}

	return stats, nil
}

func (r *Replayer) execute(ctx context.Context, lineNo int, raw string, stats *Stats) {
	inst, err := r.dispatcher.Parse(lineNo, raw)
	if err != nil {
		stats.ParseErrors++
		metrics.ObserveLine(metrics.OutcomeParseError)
		r.logger.Warn("malformed workload line",
			zap.Int("line", lineNo),
			zap.Error(err))
		r.printer.LineError(err)
		return
	}
	if inst == nil {
		stats.Skipped++
		metrics.ObserveLine(metrics.OutcomeSkipped)
		return
	}

	metrics.ObserveLine(metrics.OutcomeDispatched)
	r.send(ctx, inst, stats)
}

func (r *Replayer) send(ctx context.Context, inst handler.Instruction, stats *Stats) {
	entity, action := string(inst.Entity()), string(inst.Action())
	req := inst.Request(r.baseURL)

	start := time.Now()
	result, err := r.sender.Send(ctx, req)
	metrics.RequestDuration.WithLabelValues(entity, action).Observe(time.Since(start).Seconds())

	var transportErr *client.TransportError
	if err != nil && !errors.As(err, &transportErr) {
		stats.RequestErrors++
		metrics.RequestErrors.WithLabelValues(entity, action).Inc()
		r.logger.Warn("request not sent",
			zap.String("request", req.String()),
			zap.Error(err))
		r.printer.RequestError(req, err)
		return
	}
	if err != nil {
		stats.TransportErrors++
		metrics.TransportErrors.WithLabelValues(entity, action).Inc()

		level := r.logger.Warn
		if errors.Is(err, context.Canceled) {
			level = r.logger.Debug
		}
		level("request failed",
			zap.String("request", req.String()),
			zap.Error(err))
		r.printer.ConnectionError(req, err)
		return
	}

	stats.Sent++
	if result.IsError() {
		stats.HTTPErrors++
	}
	metrics.RequestsTotal.WithLabelValues(entity, action, result.StatusClass()).Inc()
	r.logger.Debug("request completed",
		zap.String("request", req.String()),
		zap.String("request_id", result.RequestID),
		zap.Int("status", result.StatusCode))
	r.printer.Result(result)
}
