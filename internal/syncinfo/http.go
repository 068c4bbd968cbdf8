package syncinfo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

type errorBody struct {
	Error string `json:"error"`
}

// Handler serves the parsed sync log as JSON. Status codes follow the
// original endpoint: 404 when the log has no data line, 500 when the
// log is missing, unreadable, or malformed.
func Handler(logPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
			return
		}

		info, err := ParseFile(logPath)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, info)
		case errors.Is(err, ErrNoData):
			writeJSON(w, http.StatusNotFound, errorBody{Error: "No sync data found"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to read sync log"})
		}
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fetchTimeout bounds the advisory lookup so the UI never waits on it.
const fetchTimeout = 5 * time.Second

// Fetch retrieves sync info from a companion endpoint. Any transport
// error, non-2xx status, or undecodable body yields nil: the caller
// shows no indicator and moves on.
func Fetch(ctx context.Context, client *http.Client, url string) *Info {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	var info Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil
	}
	return &info
}
