// Package render turns a whole story into one of the snapshot formats.
package render

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/ngmaloney/alert-banner/internal/banner"
	"github.com/ngmaloney/alert-banner/internal/database"
	"github.com/ngmaloney/alert-banner/internal/stories"
	"github.com/ngmaloney/alert-banner/internal/ui"
	"github.com/ngmaloney/alert-banner/internal/web"
)

// ErrUnknownFormat is returned for a format name that is not supported
var ErrUnknownFormat = errors.New("unknown format")

// SnapshotWidths are the viewports, in logical px, every snapshot is
// rendered at: one on each side of the breakpoint
var SnapshotWidths = []int{1200, 400}

// ParseFormat validates a format name
func ParseFormat(name string) (database.Format, error) {
	for _, f := range database.Formats() {
		if string(f) == strings.ToLower(strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// treeDoc is the YAML layout of a tree snapshot
type treeDoc struct {
	Story    string      `yaml:"story"`
	Viewport int         `yaml:"viewport"`
	Banners  []treeEntry `yaml:"banners"`
}

type treeEntry struct {
	Section string      `yaml:"section,omitempty"`
	Tree    banner.Node `yaml:"tree"`
}

// Story renders every banner of s at the given viewport width
func Story(ctx context.Context, s stories.Story, format database.Format, viewport int) (string, error) {
	entries := s.Entries(nil)
	banners := make([]*banner.Banner, len(entries))
	for i, e := range entries {
		banners[i] = banner.FromProps(e.Props, banner.WithViewport(viewport))
	}

	switch format {
	case database.FormatTree:
		doc := treeDoc{Story: s.ID, Viewport: viewport}
		for i, e := range entries {
			doc.Banners = append(doc.Banners, treeEntry{Section: e.Section, Tree: banners[i].Tree()})
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return "", errors.Wrapf(err, "marshal %s tree", s.ID)
		}
		return string(out), nil

	case database.FormatHTML:
		items := make([]web.Item, len(entries))
		for i, e := range entries {
			items[i] = web.Item{Section: e.Section, Banner: banners[i], MaxWidth: s.Width(e)}
		}
		var buf bytes.Buffer
		if err := web.StoryPage(s, items, "").Render(ctx, &buf); err != nil {
			return "", errors.Wrapf(err, "render %s html", s.ID)
		}
		return buf.String(), nil

	case database.FormatText:
		var blocks []string
		section := ""
		for i, e := range entries {
			if e.Section != "" && e.Section != section {
				section = e.Section
				blocks = append(blocks, "## "+section)
			}
			width := viewport / ui.CellWidth
			if limit := s.Width(e) / ui.CellWidth; limit > 0 && (width == 0 || limit < width) {
				width = limit
			}
			blocks = append(blocks, ansi.Strip(ui.RenderBanner(banners[i], ui.RenderOptions{Width: width})))
		}
		return strings.Join(blocks, "\n\n") + "\n", nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// Snapshots renders s in every format at every snapshot width. Each body
// holds one section per width, separated by "---".
func Snapshots(ctx context.Context, s stories.Story) ([]database.Snapshot, error) {
	var snaps []database.Snapshot
	for _, format := range database.Formats() {
		var parts []string
		for _, width := range SnapshotWidths {
			body, err := Story(ctx, s, format, width)
			if err != nil {
				return nil, err
			}
			parts = append(parts, body)
		}
		snaps = append(snaps, database.NewSnapshot(s.ID, format, strings.Join(parts, "\n---\n")))
	}
	return snaps, nil
}
