package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// ServiceEndpoint is one section of the services file, e.g.
// "OrderService": {"port": 14000, "ip": "127.0.0.1"}. Only the port is read.
type ServiceEndpoint struct {
	Port int
}

// Services maps service names to their endpoints.
type Services map[string]ServiceEndpoint

type ServiceNotFoundError struct {
	Service string
	File    string
}

func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("service %q has no usable port in %s", e.Service, e.File)
}

func LoadServices(path string) (Services, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading services config: %w", err)
	}
	return ParseServices(data)
}

// ParseServices decodes the top-level object. Entries that are not objects
// (strings, arrays, ...) are ignored, and so are all section keys but "port".
func ParseServices(data []byte) (Services, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing services config: %w", err)
	}

	services := make(Services, len(raw))
	for name, msg := range raw {
		var section map[string]json.RawMessage
		if err := json.Unmarshal(msg, &section); err != nil {
			continue
		}
		services[name] = ServiceEndpoint{Port: portValue(section["port"])}
	}
	return services, nil
}

// portValue reads the first run of digits of a JSON number or string, so
// 14000, "14000" and 14000.0 all give 14000. Anything else gives 0.
func portValue(raw json.RawMessage) int {
	text := bytes.TrimSpace(raw)
	if len(text) == 0 {
		return 0
	}
	if text[0] == '"' {
		var s string
		if err := json.Unmarshal(text, &s); err != nil {
			return 0
		}
		text = []byte(s)
	} else if text[0] < '0' || text[0] > '9' {
		return 0
	}

	start := 0
	for start < len(text) && (text[start] < '0' || text[start] > '9') {
		start++
	}
	end := start
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}

	port, err := strconv.Atoi(string(text[start:end]))
	if err != nil {
		return 0
	}
	return port
}

// Port returns the service's port, or false when the service is absent or
// its port is not positive.
func (s Services) Port(name string) (int, bool) {
	ep, ok := s[name]
	if !ok || ep.Port <= 0 {
		return 0, false
	}
	return ep.Port, true
}
