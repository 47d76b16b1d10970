package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillword/fillwordgame-go/internal/api"
	"github.com/fillword/fillwordgame-go/internal/factory"
	"github.com/fillword/fillwordgame-go/internal/model"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "fwgame-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/fwgame")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	require.NoError(t, app.WordlistService.LoadDefaults())

	// Create router
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		RoundController: app.RoundController,
		HubManager:      app.HubManager,
		Clock:           app.Clock,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type positionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type placementResponse struct {
	Word      string           `json:"word"`
	Start     positionResponse `json:"start"`
	Direction string           `json:"direction"`
}

type roundResponse struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	GridSize int    `json:"grid_size"`
	State    string `json:"state"`
	Grid     struct {
		Cells [][]string `json:"cells"`
	} `json:"grid"`
	TargetWords  []string            `json:"target_words"`
	SkippedWords []string            `json:"skipped_words"`
	FoundWords   []string            `json:"found_words"`
	Placements   []placementResponse `json:"placements"`
	Score        struct {
		CompletionBonus int `json:"completion_bonus"`
		Points          int `json:"points"`
	} `json:"score"`
}

type submissionResponse struct {
	Selection struct {
		Valid bool   `json:"valid"`
		Found bool   `json:"found"`
		Word  string `json:"word"`
	} `json:"selection"`
	AlreadyFound bool          `json:"already_found"`
	Round        roundResponse `json:"round"`
}

type hintResponse struct {
	Word      string           `json:"word"`
	Start     positionResponse `json:"start"`
	Direction string           `json:"direction"`
	Length    int              `json:"length"`
}

type puzzleResponse struct {
	Grid struct {
		Cells [][]string `json:"cells"`
	} `json:"grid"`
	Placements []placementResponse `json:"placements"`
	Skipped    []string            `json:"skipped"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// cellArgs walks a placement from its start cell and renders each cell
// as a row,col CLI argument
func cellArgs(placement placementResponse) []string {
	dr, dc := model.Direction(placement.Direction).Delta()

	args := make([]string, 0, len(placement.Word))
	for i := range []rune(placement.Word) {
		args = append(args, fmt.Sprintf("%d,%d", placement.Start.Row+i*dr, placement.Start.Col+i*dc))
	}
	return args
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_GenerateLocal(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("generate", "--words", "cat,dog", "--size", "5")
	require.NoError(t, err, "output: %s", output)

	var resp puzzleResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))

	assert.Len(t, resp.Placements, 2)
	assert.Empty(t, resp.Skipped)
	require.Len(t, resp.Grid.Cells, 5)
	for _, row := range resp.Grid.Cells {
		require.Len(t, row, 5)
		for _, cell := range row {
			assert.NotEmpty(t, cell)
		}
	}
}

func TestCLI_FullRoundFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create a round with known words
	output, err := cli.run("round", "new", "--words", "cat,dog", "--size", "5")
	require.NoError(t, err, "output: %s", output)

	var created roundResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, "active", created.State)
	assert.ElementsMatch(t, []string{"cat", "dog"}, created.TargetWords)
	require.Len(t, created.Placements, 2)
	t.Logf("Created round: %s", created.ID)

	// Getting the round back hides the answer key
	output, err = cli.run("round", "get", created.ID)
	require.NoError(t, err, "output: %s", output)

	var fetched roundResponse
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Empty(t, fetched.Placements)

	// Find every placed word using the answer key from creation
	var last submissionResponse
	for _, placement := range created.Placements {
		args := append([]string{"round", "select", created.ID}, cellArgs(placement)...)
		output, err = cli.run(args...)
		require.NoError(t, err, "select %s: %s", placement.Word, output)
		require.NoError(t, json.Unmarshal([]byte(output), &last))
		require.True(t, last.Selection.Found, "expected to find %s", placement.Word)
		t.Logf("Found %s", placement.Word)
	}

	// The last find completes the round and doubles the points
	assert.Equal(t, "complete", last.Round.State)
	assert.Equal(t, 6, last.Round.Score.CompletionBonus)
	assert.Equal(t, 12, last.Round.Score.Points)

	// Further selections are rejected
	args := append([]string{"round", "select", created.ID}, cellArgs(created.Placements[0])...)
	output, err = cli.run(args...)
	assert.Error(t, err, "should not select on a complete round")
	assert.Contains(t, strings.ToLower(output), "complete")
}

func TestCLI_HintAndAbandon(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create a round
	output, err := cli.run("round", "new", "--words", "cat,dog", "--size", "5")
	require.NoError(t, err, "output: %s", output)

	var created roundResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	// Ask for a hint
	output, err = cli.run("round", "hint", created.ID)
	require.NoError(t, err, "output: %s", output)

	var hint hintResponse
	require.NoError(t, json.Unmarshal([]byte(output), &hint))
	assert.Contains(t, created.TargetWords, hint.Word)
	assert.Equal(t, 3, hint.Length)
	assert.NotEmpty(t, hint.Direction)

	// Give up
	output, err = cli.run("round", "abandon", created.ID)
	require.NoError(t, err, "output: %s", output)

	var abandoned roundResponse
	require.NoError(t, json.Unmarshal([]byte(output), &abandoned))
	assert.Equal(t, "abandoned", abandoned.State)
	assert.Len(t, abandoned.Placements, 2) // Giving up reveals the answers

	// Abandoning again fails
	output, err = cli.run("round", "abandon", created.ID)
	assert.Error(t, err, "should not abandon twice")
	assert.Contains(t, strings.ToLower(output), "abandoned")
}

func TestCLI_SampledRound(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Without --words the server samples from its pool
	output, err := cli.run("round", "new", "--count", "3", "--size", "7")
	require.NoError(t, err, "output: %s", output)

	var created roundResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, "en", created.Language)
	assert.Equal(t, 7, created.GridSize)
	assert.NotEmpty(t, created.TargetWords)
	assert.LessOrEqual(t, len(created.TargetWords), 3)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Get non-existent round
	output, err := cli.run("round", "get", "NOSUCHROUND1")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Malformed cell argument is rejected before any request
	output, err = cli.run("round", "select", "NOSUCHROUND1", "banana")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "invalid cell")
}
