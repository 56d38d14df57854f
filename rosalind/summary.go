package main

import (
	"encoding/json"
	"os"
)

// RunSummary is storing rosalind run summary information.
type RunSummary struct {
	// Version stores rosalind version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Command is the executed sub-command.
	Command string `json:"command"`
	// Result is the command output.
	Result string `json:"result"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}

// WriteFile writes summary in json format to a file.
func (s *RunSummary) WriteFile(fn string) error {
	j, err := json.Marshal(s)
	if err != nil {
		return err
	}
	log.Debug(string(j))
	return os.WriteFile(fn, j, 0666)
}
