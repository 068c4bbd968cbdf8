// Package syncinfo reads the build-provenance log written by the
// content-sync script and exposes it three ways: a parser, an HTTP
// endpoint for companion tooling, and a client + file watcher for the
// editor's header indicator. Provenance is advisory everywhere: a
// missing or malformed log is rendered as "no indicator", never as an
// editor-facing error.
package syncinfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Info is the parsed provenance of the last content sync.
type Info struct {
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
	Branch      string `json:"branch"`
	CommitShort string `json:"commitShort"`
	CommitFull  string `json:"commitFull"`
}

// ErrNoData means the log had no non-comment data line.
var ErrNoData = errors.New("no sync data found")

// ErrMalformed means the data line did not have 4 or 5 fields.
var ErrMalformed = errors.New("invalid sync log format")

// Parse reads the first non-comment, non-blank line of a sync log.
// The current format is pipe-delimited with five fields:
//
//	timestamp | source | branch | commit_short | commit_full
//
// The legacy four-field form lacks source, which defaults to "unknown".
func Parse(r io.Reader) (*Info, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return parseLine(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sync log: %w", err)
	}
	return nil, ErrNoData
}

func parseLine(line string) (*Info, error) {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch {
	case len(parts) >= 5:
		return &Info{
			Timestamp:   parts[0],
			Source:      parts[1],
			Branch:      parts[2],
			CommitShort: parts[3],
			CommitFull:  parts[4],
		}, nil
	case len(parts) == 4:
		return &Info{
			Timestamp:   parts[0],
			Source:      "unknown",
			Branch:      parts[1],
			CommitShort: parts[2],
			CommitFull:  parts[3],
		}, nil
	default:
		return nil, ErrMalformed
	}
}

// ParseFile parses the sync log at path.
func ParseFile(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sync log %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
