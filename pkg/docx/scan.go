package docx

import (
	"log/slog"
	"sort"
)

// PartReport is the summary of one scanned part.
type PartReport struct {
	Part    string   `json:"part" yaml:"part"`
	Summary *Summary `json:"summary" yaml:"summary"`
}

// PackageReport is the result of scanning a whole package.
type PackageReport struct {
	Parts []PartReport `json:"parts" yaml:"parts"`
}

// Part returns the report for the named part, or nil.
func (r *PackageReport) Part(name string) *PartReport {
	for i := range r.Parts {
		if r.Parts[i].Part == name {
			return &r.Parts[i]
		}
	}
	return nil
}

// PackageScanner detects a package and summarizes its story parts.
type PackageScanner struct {
	config   *Config
	detector *Detector
	logger   *slog.Logger
}

// NewPackageScanner creates a scanner. A nil config means DefaultConfig and a
// nil logger discards output.
func NewPackageScanner(cfg *Config, logger *slog.Logger) *PackageScanner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &PackageScanner{
		config:   cfg,
		detector: NewDetector(cfg, logger),
		logger:   logger,
	}
}

// Scan summarizes every document part of a, plus headers and footers when
// configured. It fails with ErrNotWordProcessing if detection rejects a.
func (ps *PackageScanner) Scan(a *ZipArchive) (*PackageReport, error) {
	if !ps.detector.IsWordProcessingPackage(a) {
		return nil, NewDocumentError("scan", "", ErrNotWordProcessing)
	}

	parts := ps.parts(a)
	report := &PackageReport{Parts: make([]PartReport, 0, len(parts))}
	for _, part := range parts {
		summary, err := ps.scanPart(a, part)
		if err != nil {
			return nil, err
		}
		ps.logger.Debug("scanned part",
			"part", part,
			"fields", len(summary.Fields),
			"bookmarks", len(summary.Bookmarks),
			"images", len(summary.ImageRefs))
		report.Parts = append(report.Parts, PartReport{Part: part, Summary: summary})
	}
	return report, nil
}

func (ps *PackageScanner) scanPart(a *ZipArchive, part string) (*Summary, error) {
	rc, err := a.Open(part)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	summary, err := Summarize(rc)
	if err != nil {
		return nil, NewDocumentError("scan", part, err)
	}
	return summary, nil
}

func (ps *PackageScanner) parts(a Archive) []string {
	seen := make(map[string]bool)
	var parts []string
	add := func(names []string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				parts = append(parts, n)
			}
		}
	}

	add(a.EntryNames(ps.detector.pattern()))
	sort.Strings(parts)
	if ps.config.IncludeHeadersFooters {
		add(a.EntryNames(HeaderPartPattern))
		add(a.EntryNames(FooterPartPattern))
	}
	return parts
}
