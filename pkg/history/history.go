// Package history persists evaluated answers and derives the analytics snapshot from them.
package history

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nikogura/interview-coach/pkg/evaluator"
	"github.com/nikogura/interview-coach/pkg/profile"
	"github.com/nikogura/interview-coach/pkg/scorer"
)

// Breakdown scales a record can declare.
const (
	ScaleSubscore = "subscore"
	ScaleRaw      = "raw"
)

// RecordSuffix is the file suffix of a stored record.
const RecordSuffix = ".session.json"

// Trend detection.
const (
	TrendWindow     = 3
	TrendThreshold  = 5.0
	RecentScoreSize = 5
)

// Record is one evaluated answer.
type Record struct {
	ID           string           `json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	Scale        string           `json:"scale,omitempty"`
	Role         string           `json:"role"`
	Type         string           `json:"type"`
	Difficulty   string           `json:"difficulty,omitempty"`
	Question     string           `json:"question"`
	Answer       string           `json:"answer"`
	OverallScore int              `json:"overall_score"`
	Breakdown    scorer.Breakdown `json:"breakdown"`
	Feedback     string           `json:"feedback"`
}

// NewRecord builds a record from an evaluation.
func NewRecord(question, answer string, ctx evaluator.Context, result evaluator.Result, now time.Time) (record Record) {
	record = Record{
		ID:           uuid.NewString(),
		CreatedAt:    now.UTC(),
		Scale:        ScaleSubscore,
		Role:         ctx.Role,
		Type:         ctx.Type,
		Difficulty:   ctx.Difficulty,
		Question:     question,
		Answer:       answer,
		OverallScore: result.OverallScore,
		Breakdown:    result.Breakdown,
		Feedback:     result.Feedback,
	}
	return record
}

// Subscores returns the breakdown on the 0-10 scale. Records that declare the raw scale are migrated.
func (r Record) Subscores() (breakdown scorer.Breakdown) {
	breakdown = r.Breakdown
	if r.Scale != ScaleRaw {
		return breakdown
	}

	breakdown = scorer.Breakdown{
		Relevance:  scorer.MigrateSubscore(r.Breakdown.Relevance),
		Clarity:    scorer.MigrateSubscore(r.Breakdown.Clarity),
		Technical:  scorer.MigrateSubscore(r.Breakdown.Technical),
		Confidence: scorer.MigrateSubscore(r.Breakdown.Confidence),
		Structure:  scorer.MigrateSubscore(r.Breakdown.Structure),
	}
	return breakdown
}

// Store keeps records as JSON files in one directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates a store rooted at dir.
func NewStore(dir string, logger *zap.Logger) (store *Store, err error) {
	if dir == "" {
		err = errors.New("history directory is required")
		return store, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	store = &Store{
		dir:    dir,
		logger: logger,
	}

	return store, err
}

// Dir returns the store directory.
func (s *Store) Dir() (dir string) {
	dir = s.dir
	return dir
}

// Save writes a record and returns its path.
func (s *Store) Save(record Record) (path string, err error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	err = os.MkdirAll(s.dir, 0755)
	if err != nil {
		err = errors.Wrapf(err, "failed to create history directory: %s", s.dir)
		return path, err
	}

	var data []byte
	data, err = json.MarshalIndent(record, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal record")
		return path, err
	}

	path = filepath.Join(s.dir, record.ID+RecordSuffix)
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write record: %s", path)
		return path, err
	}

	return path, err
}

// List loads every record in the store, oldest first. Unreadable records are skipped.
// A missing directory is an empty history.
func (s *Store) List(ctx context.Context) (records []Record, err error) {
	records = []Record{}

	_, statErr := os.Stat(s.dir)
	if os.IsNotExist(statErr) {
		return records, err
	}

	walkErr := filepath.Walk(s.dir, func(path string, info os.FileInfo, walkErr error) (walkFuncErr error) {
		if walkErr != nil {
			walkFuncErr = walkErr
			return walkFuncErr
		}

		walkFuncErr = ctx.Err()
		if walkFuncErr != nil {
			return walkFuncErr
		}

		if info.IsDir() || !strings.HasSuffix(info.Name(), RecordSuffix) {
			return walkFuncErr
		}

		record, loadErr := loadRecord(path)
		if loadErr != nil {
			s.logger.Warn("skipping unreadable record", zap.String("path", path), zap.Error(loadErr))
			return walkFuncErr
		}

		records = append(records, record)
		return walkFuncErr
	})
	if walkErr != nil {
		err = errors.Wrap(walkErr, "failed to walk history directory")
		return records, err
	}

	sortRecords(records)

	return records, err
}

func loadRecord(path string) (record Record, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read record: %s", path)
		return record, err
	}

	err = json.Unmarshal(data, &record)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse record: %s", path)
		return record, err
	}

	return record, err
}

func sortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}

// Snapshot derives analytics from records. Communication is the mean of relevance and structure.
// The trend compares the mean of the last three scores with the three before them.
func Snapshot(records []Record) (snapshot profile.AnalyticsSnapshot) {
	ordered := append([]Record(nil), records...)
	sortRecords(ordered)

	snapshot = profile.AnalyticsSnapshot{
		TotalSessions:     len(ordered),
		ScoreTrend:        profile.Stable,
		RecentPerformance: []int{},
	}
	if len(ordered) == 0 {
		return snapshot
	}

	var overall, technical, communication, confidence, clarity float64
	scores := make([]int, 0, len(ordered))
	for _, r := range ordered {
		b := r.Subscores()
		overall += float64(r.OverallScore)
		technical += float64(b.Technical)
		communication += float64(b.Relevance+b.Structure) / 2
		confidence += float64(b.Confidence)
		clarity += float64(b.Clarity)
		scores = append(scores, r.OverallScore)
	}

	n := float64(len(ordered))
	snapshot.AverageScore = overall / n
	snapshot.SkillBreakdown = profile.SkillBreakdown{
		Technical:     technical / n,
		Communication: communication / n,
		Confidence:    confidence / n,
		Clarity:       clarity / n,
	}
	snapshot.ScoreTrend = trend(scores)

	start := len(scores) - RecentScoreSize
	if start < 0 {
		start = 0
	}
	snapshot.RecentPerformance = append(snapshot.RecentPerformance, scores[start:]...)

	return snapshot
}

// trend uses windows of up to three scores, shrinking so both windows fit.
func trend(scores []int) (t profile.Trend) {
	t = profile.Stable

	window := TrendWindow
	if len(scores)/2 < window {
		window = len(scores) / 2
	}
	if window == 0 {
		return t
	}

	recent := mean(scores[len(scores)-window:])
	previous := mean(scores[len(scores)-2*window : len(scores)-window])

	switch diff := recent - previous; {
	case diff >= TrendThreshold:
		t = profile.Improving
	case diff <= -TrendThreshold:
		t = profile.Declining
	}

	return t
}

func mean(values []int) (m float64) {
	if len(values) == 0 {
		return m
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	m = float64(sum) / float64(len(values))
	return m
}
