package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseWorkloadFile(t *testing.T) {
	var buf bytes.Buffer
	path, err := Parse([]string{"workload.txt"}, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if path != "workload.txt" {
		t.Errorf("Expected workload.txt, got %s", path)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestParseMissingArgument(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Parse(nil, &buf); err == nil {
		t.Fatal("Expected error for missing workload file")
	}
	if !strings.Contains(buf.String(), "workloadfile") {
		t.Errorf("Expected usage naming the argument, got %q", buf.String())
	}
}

func TestParseExtraArgumentsIgnored(t *testing.T) {
	var buf bytes.Buffer
	path, err := Parse([]string{"a.txt", "b.txt", "c.txt"}, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if path != "a.txt" {
		t.Errorf("Expected a.txt, got %s", path)
	}
}

func TestParseDashPathsAreLiteral(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"short dash", []string{"-w.txt"}, "-w.txt"},
		{"help", []string{"--help"}, "--help"},
		{"help-long", []string{"--help-long"}, "--help-long"},
		{"completion", []string{"--completion-bash"}, "--completion-bash"},
		{"lone dash", []string{"-"}, "-"},
		{"dash after path", []string{"workload.txt", "--help"}, "workload.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			path, err := Parse(tt.argv, &buf)
			if err != nil {
				t.Fatalf("Unexpected error: %v (output %q)", err, buf.String())
			}
			if path != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, path)
			}
			if buf.Len() != 0 {
				t.Errorf("Expected no output, got %q", buf.String())
			}
		})
	}
}
