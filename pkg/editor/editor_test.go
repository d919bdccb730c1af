package editor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chilluba/gemini-cli/pkg/config"
	"github.com/Chilluba/gemini-cli/pkg/prompts"
	"github.com/Chilluba/gemini-cli/pkg/utils"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) GetResponse(ctx context.Context, messages []prompts.Message, cfg *config.Config) (string, error) {
	return s.response, s.err
}

const editResponse = `{
	"language": "go",
	"complexity": 2,
	"suggestions": [
		{"originalLines": ["b", "c"], "suggestedLines": ["X"], "startLine": 2, "endLine": 3, "reasoning": "collapse", "confidence": 90}
	],
	"risks": [],
	"dependencies": []
}`

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.SkipPrompt = true
	return cfg
}

func TestProcessEditDryRunLeavesFileUntouched(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "target.go")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\nd"), 0644))

	cfg := testConfig()
	cfg.DryRun = true

	result, err := ProcessEdit(context.Background(), path, "collapse b and c", nil, cfg, &stubProvider{response: editResponse}, utils.GetLogger(true))
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Len(t, result.Accepted, 1)
	assert.False(t, result.Degraded)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\nd", string(content))
}

func TestProcessEditAppliesAndBacksUp(t *testing.T) {
	t.Chdir(t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "target.go")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\nd"), 0644))

	cfg := testConfig()

	result, err := ProcessEdit(context.Background(), path, "collapse b and c", nil, cfg, &stubProvider{response: editResponse}, utils.GetLogger(true))
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.NotEmpty(t, result.Backup)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nX\nd", string(content))

	// The backup holds the pre-modification content.
	backup, err := os.ReadFile(result.Backup)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\nd", string(backup))
}

func TestProcessEditOracleFailureDegrades(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "target.go")
	require.NoError(t, os.WriteFile(path, []byte("a\nb"), 0644))

	result, err := ProcessEdit(context.Background(), path, "anything", nil, testConfig(), &stubProvider{err: fmt.Errorf("oracle down")}, utils.GetLogger(true))
	require.NoError(t, err, "oracle failure must not surface as a hard error")
	assert.True(t, result.Degraded)
	assert.Empty(t, result.Accepted)
	assert.False(t, result.Applied)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", string(content))
}

func TestProcessEditMissingFileIsFatal(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := ProcessEdit(context.Background(), filepath.Join(t.TempDir(), "missing.go"), "x", nil, testConfig(), &stubProvider{response: editResponse}, utils.GetLogger(true))
	require.Error(t, err)
}

func TestProcessEditFiltersLowConfidence(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "target.go")
	require.NoError(t, os.WriteFile(path, []byte("a\nb"), 0644))

	lowConfidence := strings.Replace(editResponse, `"confidence": 90`, `"confidence": 42`, 1)

	result, err := ProcessEdit(context.Background(), path, "x", nil, testConfig(), &stubProvider{response: lowConfidence}, utils.GetLogger(true))
	require.NoError(t, err)
	assert.Empty(t, result.Accepted)
	assert.False(t, result.Applied)
	assert.Len(t, result.Analysis.Suggestions, 1, "the raw analysis still carries the filtered suggestion")
}
