package ui

import (
	"errors"
	"fmt"
	"io"

	"workloadparser/core/client"
	"workloadparser/models"
)

// Printer writes request outcomes for the operator
type Printer struct {
	out io.Writer
}

// NewPrinter - printer over out, usually os.Stdout
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Result prints a response. 4xx/5xx are shown as error outcomes.
func (p *Printer) Result(r models.Result) {
	if r.IsError() {
		fmt.Fprintf(p.out, "%s %s\n", r.Method, r.URL)
		fmt.Fprintf(p.out, "Error Status: %d\n", r.StatusCode)
		fmt.Fprintf(p.out, "Error Body: %s\n", r.Body)
		return
	}

	fmt.Fprintf(p.out, "%s %s\n", r.Method, r.URL)
	fmt.Fprintf(p.out, "Status: %d\n", r.StatusCode)
	fmt.Fprintf(p.out, "Response: %s\n", r.Body)
}

// ConnectionError prints a request that never got a response.
func (p *Printer) ConnectionError(req models.Request, err error) {
	var te *client.TransportError
	if errors.As(err, &te) {
		err = te.Err
	}
	fmt.Fprintf(p.out, "%s %s\n", req.Method, req.URL)
	fmt.Fprintf(p.out, "Connection error: %v (target %s)\n", err, req.URL)
}

// RequestError prints a request that could not be built, so it was never sent.
func (p *Printer) RequestError(req models.Request, err error) {
	fmt.Fprintf(p.out, "%s %s\n", req.Method, req.URL)
	fmt.Fprintf(p.out, "Request error: %v\n", err)
}

// LineError prints a workload line that could not be parsed.
func (p *Printer) LineError(err error) {
	fmt.Fprintf(p.out, "Skipping malformed line: %v\n", err)
}
