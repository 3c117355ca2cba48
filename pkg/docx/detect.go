package docx

import (
	"log/slog"
)

const (
	// ContentTypesPart is the package content-types manifest.
	ContentTypesPart = "[Content_Types].xml"
	// DocumentPartPattern matches the main document part.
	DocumentPartPattern = "word/document*.xml"
	// HeaderPartPattern and FooterPartPattern match the secondary story parts.
	HeaderPartPattern = "word/header*.xml"
	FooterPartPattern = "word/footer*.xml"
)

// IsWordProcessingPackage reports whether a is a word-processing package: it
// must carry [Content_Types].xml and at least one entry matching
// DocumentPartPattern. The manifest's declared content types are not read;
// use a strict Detector for that.
func IsWordProcessingPackage(a Archive) bool {
	return defaultDetector.IsWordProcessingPackage(a)
}

var defaultDetector = &Detector{DocumentPattern: DocumentPartPattern}

// Detector decides whether an archive is a word-processing package. The zero
// value behaves like IsWordProcessingPackage.
type Detector struct {
	// Strict also requires the manifest to declare a word-processing main
	// content type for one of the matching document parts. The archive must
	// then implement PartReader.
	Strict bool
	// DocumentPattern overrides DocumentPartPattern when non-empty.
	DocumentPattern string
	Logger          *slog.Logger
}

// NewDetector builds a detector from cfg.
func NewDetector(cfg *Config, logger *slog.Logger) *Detector {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Detector{
		Strict:          cfg.Strict,
		DocumentPattern: cfg.DocumentPattern,
		Logger:          logger,
	}
}

// IsWordProcessingPackage reports whether a is a word-processing package.
// It never fails: a malformed or unrelated archive is simply false.
func (d *Detector) IsWordProcessingPackage(a Archive) bool {
	if a == nil {
		return false
	}
	logger := d.logger()

	if !a.HasEntry(ContentTypesPart) {
		logger.Debug("package rejected", "reason", "missing content types manifest")
		return false
	}

	parts := a.EntryNames(d.pattern())
	if len(parts) == 0 {
		logger.Debug("package rejected", "reason", "no document part", "pattern", d.pattern())
		return false
	}

	if !d.Strict {
		return true
	}

	pr, ok := a.(PartReader)
	if !ok {
		logger.Debug("package rejected", "reason", "strict detection needs a readable archive")
		return false
	}
	manifest, err := pr.ReadPart(ContentTypesPart)
	if err != nil {
		logger.Debug("package rejected", "reason", "unreadable content types", "error", err)
		return false
	}
	types, err := ParseContentTypes(manifest)
	if err != nil {
		logger.Debug("package rejected", "reason", "malformed content types", "error", err)
		return false
	}

	for _, part := range parts {
		if IsMainDocumentContentType(types.ContentTypeOf(part)) {
			return true
		}
	}
	logger.Debug("package rejected", "reason", "no part declared as word-processing main", "parts", parts)
	return false
}

func (d *Detector) pattern() string {
	if d.DocumentPattern == "" {
		return DocumentPartPattern
	}
	return d.DocumentPattern
}

func (d *Detector) logger() *slog.Logger {
	if d.Logger == nil {
		return discardLogger()
	}
	return d.Logger
}
