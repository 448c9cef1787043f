package database

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned when no snapshot is recorded for a story and format
var ErrNotFound = errors.New("snapshot not found")

// Format names a snapshot rendering
type Format string

const (
	FormatTree Format = "tree" // YAML dump of the visual trees
	FormatHTML Format = "html"
	FormatText Format = "text" // terminal rendering, ANSI stripped
)

// Formats lists every snapshot format
func Formats() []Format {
	return []Format{FormatTree, FormatHTML, FormatText}
}

// Snapshot is one recorded rendering of a story
type Snapshot struct {
	StoryID   string
	Format    Format
	Digest    string
	Body      string
	UpdatedAt time.Time
}

// NewSnapshot builds a snapshot with its digest filled in
func NewSnapshot(storyID string, format Format, body string) Snapshot {
	return Snapshot{
		StoryID: storyID,
		Format:  format,
		Digest:  Digest(body),
		Body:    body,
	}
}

// Digest returns the hex sha256 of body
func Digest(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

// Diff compares a recorded snapshot with a fresh rendering
type Diff struct {
	StoryID  string
	Format   Format
	Recorded string // digest on record, empty when missing
	Current  string
}

// Missing reports whether nothing was recorded
func (d Diff) Missing() bool {
	return d.Recorded == ""
}

// Changed reports whether the rendering no longer matches the record
func (d Diff) Changed() bool {
	return d.Recorded != d.Current
}

// Save records snap, replacing any earlier snapshot of the same story and
// format
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	if snap.Digest == "" {
		snap.Digest = Digest(snap.Body)
	}
	if snap.UpdatedAt.IsZero() {
		snap.UpdatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (story_id, format, digest, body, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(story_id, format) DO UPDATE SET
		   digest = excluded.digest,
		   body = excluded.body,
		   updated_at = excluded.updated_at`,
		snap.StoryID, string(snap.Format), snap.Digest, snap.Body, snap.UpdatedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "save snapshot %s/%s", snap.StoryID, snap.Format)
	}
	return nil
}

// Get returns the recorded snapshot of a story in a format
func (s *Store) Get(ctx context.Context, storyID string, format Format) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT story_id, format, digest, body, updated_at FROM snapshots
		 WHERE story_id = ? AND format = ?`,
		storyID, string(format),
	)

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, errors.Wrapf(ErrNotFound, "%s/%s", storyID, format)
	}
	if err != nil {
		return Snapshot{}, errors.Wrapf(err, "get snapshot %s/%s", storyID, format)
	}
	return snap, nil
}

// List returns every recorded snapshot ordered by story and format
func (s *Store) List(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT story_id, format, digest, body, updated_at FROM snapshots
		 ORDER BY story_id, format`)
	if err != nil {
		return nil, errors.Wrap(err, "list snapshots")
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan snapshot")
		}
		snaps = append(snaps, snap)
	}
	return snaps, errors.Wrap(rows.Err(), "list snapshots")
}

// Verify compares a fresh rendering with the recorded one. A missing record
// is reported in the Diff, not as an error.
func (s *Store) Verify(ctx context.Context, current Snapshot) (Diff, error) {
	if current.Digest == "" {
		current.Digest = Digest(current.Body)
	}
	d := Diff{StoryID: current.StoryID, Format: current.Format, Current: current.Digest}

	recorded, err := s.Get(ctx, current.StoryID, current.Format)
	if errors.Is(err, ErrNotFound) {
		return d, nil
	}
	if err != nil {
		return d, err
	}
	d.Recorded = recorded.Digest
	return d, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (Snapshot, error) {
	var snap Snapshot
	var format string
	if err := row.Scan(&snap.StoryID, &format, &snap.Digest, &snap.Body, &snap.UpdatedAt); err != nil {
		return Snapshot{}, err
	}
	snap.Format = Format(format)
	return snap, nil
}
