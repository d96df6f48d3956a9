package models

import (
	"fmt"
	"net/http"
)

// Entity is the resource a workload line addresses.
type Entity string

const (
	EntityUser    Entity = "USER"
	EntityProduct Entity = "PRODUCT"
	EntityOrder   Entity = "ORDER"
)

// Action is the lowercased second token of a workload line.
type Action string

const (
	ActionGet    Action = "get"
	ActionInfo   Action = "info"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionPlace  Action = "place"
)

// Payload is the JSON body sent with POST requests. Values are string, int or float64.
type Payload map[string]interface{}

// Request is one HTTP call built from a single workload line.
type Request struct {
	Method string
	URL    string
	Body   Payload
}

// HasBody reports whether the request carries a JSON body.
func (r Request) HasBody() bool {
	return r.Body != nil
}

func (r Request) String() string {
	return fmt.Sprintf("%s %s", r.Method, r.URL)
}

// Result - outcome of a request that reached the server
type Result struct {
	RequestID  string
	Method     string
	URL        string
	StatusCode int
	Body       string
}

// IsError reports whether the server answered with a 4xx or 5xx status.
func (r Result) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

// StatusClass groups status codes for metric labels: "2xx", "4xx", ...
func (r Result) StatusClass() string {
	if r.StatusCode < 100 || r.StatusCode > 599 {
		return "unknown"
	}
	return fmt.Sprintf("%dxx", r.StatusCode/100)
}
