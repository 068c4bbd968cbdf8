package syncinfo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Info
		wantErr error
	}{
		{
			name:  "five fields",
			input: "2025-06-15T10:30:00Z | vets-website | main | abc1234 | abc1234def5678\n",
			want: &Info{
				Timestamp:   "2025-06-15T10:30:00Z",
				Source:      "vets-website",
				Branch:      "main",
				CommitShort: "abc1234",
				CommitFull:  "abc1234def5678",
			},
		},
		{
			name:  "legacy four fields",
			input: "2025-06-15T10:30:00Z | main | abc1234 | abc1234def5678\n",
			want: &Info{
				Timestamp:   "2025-06-15T10:30:00Z",
				Source:      "unknown",
				Branch:      "main",
				CommitShort: "abc1234",
				CommitFull:  "abc1234def5678",
			},
		},
		{
			name: "comments and blanks skipped",
			input: "# sync log\n\n# written by sync.sh\n" +
				"2025-06-15T10:30:00Z | vets-website | main | abc1234 | abc1234def5678\n",
			want: &Info{
				Timestamp:   "2025-06-15T10:30:00Z",
				Source:      "vets-website",
				Branch:      "main",
				CommitShort: "abc1234",
				CommitFull:  "abc1234def5678",
			},
		},
		{
			name:  "only first data line read",
			input: "2025-06-15T10:30:00Z | a | b | c | d\n2020-01-01T00:00:00Z | x | y | z | w\n",
			want: &Info{
				Timestamp:   "2025-06-15T10:30:00Z",
				Source:      "a",
				Branch:      "b",
				CommitShort: "c",
				CommitFull:  "d",
			},
		},
		{name: "empty file", input: "", wantErr: ErrNoData},
		{name: "comments only", input: "# nothing here\n", wantErr: ErrNoData},
		{name: "too few fields", input: "just-a-timestamp | main\n", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sync.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		path := writeLog(t, "2025-06-15T10:30:00Z | vets-website | main | abc1234 | abc1234def5678\n")
		rr := httptest.NewRecorder()
		Handler(path).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sync-info", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Body.String(), `"commitShort":"abc1234"`)
	})

	t.Run("missing file is a read failure", func(t *testing.T) {
		rr := httptest.NewRecorder()
		Handler(filepath.Join(t.TempDir(), "absent.log")).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sync-info", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to read sync log")
	})

	t.Run("empty log", func(t *testing.T) {
		path := writeLog(t, "# comments only\n")
		rr := httptest.NewRecorder()
		Handler(path).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sync-info", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed log", func(t *testing.T) {
		path := writeLog(t, "garbage without pipes\n")
		rr := httptest.NewRecorder()
		Handler(path).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sync-info", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to read sync log")
	})

	t.Run("post rejected", func(t *testing.T) {
		path := writeLog(t, "")
		rr := httptest.NewRecorder()
		Handler(path).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/sync-info", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestFetch(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"timestamp":"t","source":"s","branch":"main","commitShort":"abc","commitFull":"abcdef"}`))
		}))
		defer srv.Close()

		got := Fetch(context.Background(), srv.Client(), srv.URL)
		require.NotNil(t, got)
		assert.Equal(t, "abc", got.CommitShort)
	})

	t.Run("non-2xx yields nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		assert.Nil(t, Fetch(context.Background(), srv.Client(), srv.URL))
	})

	t.Run("unreachable yields nil", func(t *testing.T) {
		assert.Nil(t, Fetch(context.Background(), nil, "http://127.0.0.1:1/api/sync-info"))
	})

	t.Run("bad json yields nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		assert.Nil(t, Fetch(context.Background(), srv.Client(), srv.URL))
	})
}

func TestParseLineTrimsWhitespace(t *testing.T) {
	got, err := Parse(strings.NewReader("  2025-06-15T10:30:00Z |vets-website|  main  |abc1234| abc1234def5678  \n"))
	require.NoError(t, err)
	assert.Equal(t, "vets-website", got.Source)
	assert.Equal(t, "main", got.Branch)
}
