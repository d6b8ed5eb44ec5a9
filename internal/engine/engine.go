package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/audit"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/cache"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/classifier"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/config"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/logging"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/patch"
)

var ErrNoSource = errors.New("no contract source found")

// Engine is the file-level adapter around the audit core.
type Engine struct {
	cfg        config.Config
	log        *zap.SugaredLogger
	reports    *cache.Reports
	classifier classifier.Classifier
	weight     float64
}

type Option func(*Engine)

func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClassifier overrides the classifier built from config.
func WithClassifier(c classifier.Classifier, weight float64) Option {
	return func(e *Engine) {
		e.classifier = c
		e.weight = weight
	}
}

func New(cfg config.Config, opts ...Option) (*Engine, error) {
	reports, err := cache.New(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("report cache: %w", err)
	}
	e := &Engine{cfg: cfg, log: logging.Nop(), reports: reports}
	if cfg.Classifier.Enabled() {
		e.classifier = classifier.Command{
			Path:    cfg.Classifier.Command,
			Args:    cfg.Classifier.Args,
			Timeout: time.Duration(cfg.Classifier.TimeoutMs) * time.Millisecond,
		}
		e.weight = cfg.Classifier.Weight
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// Audit analyzes every contract under req.Paths.
func (e *Engine) Audit(ctx context.Context, req model.AuditRequest) (*model.AuditResult, error) {
	start := time.Now()
	files := discoverFiles(req.Paths)
	if len(files) == 0 {
		return nil, ErrNoSource
	}
	base, err := loadBaseline(req.BaselinePath)
	if err != nil {
		return nil, fmt.Errorf("load baseline: %w", err)
	}
	e.log.Debugw("audit started", "files", len(files), "baseline", len(base.Fingerprints))
	results := e.auditFiles(ctx, files, base)
	return &model.AuditResult{Files: results, Elapsed: time.Since(start)}, nil
}

// AuditFile reads and audits one file. Read failures are reported in the
// result rather than returned.
func (e *Engine) AuditFile(ctx context.Context, path string, base Baseline) model.FileResult {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		e.log.Warnw("cannot read contract", "file", path, "error", err)
		return model.FileResult{File: filepath.ToSlash(path), Report: audit.Failed(err.Error()), Elapsed: time.Since(start)}
	}
	fr := e.AuditSource(ctx, path, string(data), base)
	fr.Elapsed = time.Since(start)
	return fr
}

// AuditSource runs the core over source, then applies suppressions and the
// optional classifier.
func (e *Engine) AuditSource(ctx context.Context, name, source string, base Baseline) model.FileResult {
	file := filepath.ToSlash(name)
	key := cache.Key(source)
	rep, hit := e.reports.Load(key)
	if !hit {
		rep = audit.Audit(source)
		e.reports.Store(key, rep)
	}
	fr := model.FileResult{File: file, Report: rep, AdjustedScore: rep.VulnerabilityScore}
	if rep.Error != "" {
		e.log.Warnw("audit failed", "file", file, "error", rep.Error)
		return fr
	}

	kept := e.filter(file, source, rep.Findings, base)
	fr.Suppressed = len(rep.Findings) - len(kept)
	fr.Report = audit.Rescore(rep, kept)
	fr.AdjustedScore = fr.Report.VulnerabilityScore
	e.log.Debugw("audited", "file", file, "findings", len(kept), "suppressed", fr.Suppressed, "cached", hit)

	if e.classifier != nil {
		p, err := e.classifier.Predict(ctx, source)
		if err != nil {
			e.log.Warnw("classifier unavailable", "file", file, "error", err)
			return fr
		}
		fr.Classifier = &p
		fr.AdjustedScore = classifier.Blend(fr.Report.VulnerabilityScore, p, e.weight)
	}
	return fr
}

func (e *Engine) filter(file, source string, findings []model.Finding, base Baseline) []model.Finding {
	out := filterBySeverity(findings, e.cfg)
	out = filterByRules(out, e.cfg)
	out = applyIgnores(file, source, out, e.cfg)
	return filterByBaseline(file, out, base)
}

// TestCases reads path and synthesizes test cases. Unreadable files yield none.
func (e *Engine) TestCases(path string) []model.TestCase {
	data, err := os.ReadFile(path)
	if err != nil {
		e.log.Warnw("cannot read contract", "file", path, "error", err)
		return []model.TestCase{}
	}
	return audit.GenerateTestCases(string(data))
}

// Patch reads path and renders remediation text for f.
func (e *Engine) Patch(path string, f model.Finding) (model.Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Patch{}, fmt.Errorf("read contract: %w", err)
	}
	return patch.Generate(string(data), f), nil
}

// LoadBaseline exposes baseline loading to callers outside Audit.
func LoadBaseline(path string) (Baseline, error) { return loadBaseline(path) }

// WriteBaseline records the fingerprints of every finding in result.
func WriteBaseline(path string, result *model.AuditResult) error {
	return writeBaseline(path, result.AllFindings())
}

// discoverFiles expands directories into the .sol files beneath them. Plain
// file arguments are kept whatever their extension.
func discoverFiles(paths []string) []string {
	var out []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			out = append(out, root)
			continue
		}
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if path != root && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.EqualFold(filepath.Ext(d.Name()), ".sol") {
				out = append(out, path)
			}
			return nil
		})
	}
	return out
}
