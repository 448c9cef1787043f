package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngmaloney/alert-banner/internal/stories"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "alertbanner dev\n", out)
}

func TestStories(t *testing.T) {
	out, err := run(t, "stories")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "ID"))
	for _, s := range stories.All() {
		assert.Contains(t, out, s.ID)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
		wantErr  bool
	}{
		{name: "text", args: []string{"render", "default"}, contains: "Information"},
		{name: "html", args: []string{"render", "default", "--format", "html"}, contains: `role="alert"`},
		{name: "tree", args: []string{"render", "default", "--format", "tree", "--width", "400"}, contains: "direction: column"},
		{name: "unknown format", args: []string{"render", "default", "--format", "pdf"}, wantErr: true},
		{name: "unknown story", args: []string{"render", "nope"}, wantErr: true},
		{name: "missing story", args: []string{"render"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestSnapshotRecordAndVerify(t *testing.T) {
	db := filepath.Join(t.TempDir(), "snaps.db")

	out, err := run(t, "snapshot", "verify", "default", "--db", db)
	assert.ErrorIs(t, err, ErrSnapshotMismatch)
	assert.Contains(t, out, "MISSING  default/tree")

	out, err = run(t, "snapshot", "record", "default", "title-only", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "recorded 6 snapshots")

	out, err = run(t, "snapshot", "verify", "default", "title-only", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "ok       default/html")
	assert.NotContains(t, out, "CHANGED")
}

func TestSnapshotUnknownStory(t *testing.T) {
	_, err := run(t, "snapshot", "record", "nope", "--db", filepath.Join(t.TempDir(), "snaps.db"))
	assert.ErrorIs(t, err, stories.ErrUnknownStory)
}

func TestGalleryUnknownStory(t *testing.T) {
	_, err := run(t, "gallery", "nope")
	assert.ErrorIs(t, err, stories.ErrUnknownStory)
}
