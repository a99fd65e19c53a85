package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/shade/pkg/errors"
	"github.com/arthur-debert/shade/pkg/logging"
	"github.com/arthur-debert/shade/pkg/pipeline"
)

// sourceExtensions are the entry types that get their content rewritten in
// addition to their name.
var sourceExtensions = map[string]struct{}{
	".java":   {},
	".kt":     {},
	".kts":    {},
	".scala":  {},
	".groovy": {},
}

// Stats summarizes one processed archive
type Stats struct {
	Entries          int
	RelocatedPaths   int
	RewrittenSources int
	SkippedConflicts int
}

// Processor rewrites archives through a relocation pipeline
type Processor struct {
	pipeline *pipeline.Pipeline
	logger   zerolog.Logger
}

// NewProcessor creates a processor over the given pipeline
func NewProcessor(p *pipeline.Pipeline) *Processor {
	return &Processor{
		pipeline: p,
		logger:   logging.GetLogger("archive"),
	}
}

// Process reads the archive at inputPath, relocates entry names and source
// content, and writes the result to outputPath. Entries whose relocated
// name collides with one already written are skipped with a warning.
func (p *Processor) Process(inputPath, outputPath string) (*Stats, error) {
	reader, err := zip.OpenReader(inputPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveOpen, "cannot open archive %s", inputPath)
	}
	defer func() { _ = reader.Close() }()

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveWrite, "cannot create archive %s", outputPath)
	}
	defer func() { _ = out.Close() }()

	writer := zip.NewWriter(out)
	stats := &Stats{}
	seen := make(map[string]struct{}, len(reader.File))

	for _, entry := range reader.File {
		if err := p.processEntry(writer, entry, seen, stats); err != nil {
			_ = writer.Close()
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveWrite, "cannot finalize archive %s", outputPath)
	}

	p.logger.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("entries", stats.Entries).
		Int("relocated", stats.RelocatedPaths).
		Int("rewritten", stats.RewrittenSources).
		Msg("archive processed")

	return stats, nil
}

func (p *Processor) processEntry(writer *zip.Writer, entry *zip.File, seen map[string]struct{}, stats *Stats) error {
	stats.Entries++

	name := entry.Name
	isDir := strings.HasSuffix(name, "/")

	relocated, moved := p.pipeline.RelocatePath(strings.TrimSuffix(name, "/"))
	if moved {
		stats.RelocatedPaths++
	}
	if isDir {
		relocated += "/"
	}

	if _, dup := seen[relocated]; dup {
		stats.SkippedConflicts++
		p.logger.Warn().
			Str("entry", name).
			Str("relocated", relocated).
			Msg("relocated name collides with an earlier entry, skipping")
		return nil
	}
	seen[relocated] = struct{}{}

	header := &zip.FileHeader{
		Name:     relocated,
		Method:   entry.Method,
		Modified: entry.Modified,
	}
	header.SetMode(entry.Mode())

	w, err := writer.CreateHeader(header)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveWrite, "cannot write entry %s", relocated)
	}
	if isDir {
		return nil
	}

	rc, err := entry.Open()
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveRead, "cannot read entry %s", name)
	}
	defer func() { _ = rc.Close() }()

	if isSourceEntry(name) {
		content, err := io.ReadAll(rc)
		if err != nil {
			return errors.Wrapf(err, errors.ErrArchiveRead, "cannot read entry %s", name)
		}
		rewritten := p.pipeline.ApplyToSourceContent(string(content))
		if rewritten != string(content) {
			stats.RewrittenSources++
		}
		if _, err := io.WriteString(w, rewritten); err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "cannot write entry %s", relocated)
		}
		return nil
	}

	if _, err := io.Copy(w, rc); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveWrite, "cannot write entry %s", relocated)
	}
	return nil
}

func isSourceEntry(name string) bool {
	_, ok := sourceExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}
