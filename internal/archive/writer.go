// Package archive materializes a collected manifest as a tar.zst archive,
// ready to ship next to the frozen executable.
package archive

import (
	"archive/tar"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/pkgfreeze/pkgfreeze/internal/domain"
	"github.com/pkgfreeze/pkgfreeze/internal/utils"
)

// Writer packs manifests into compressed archives
type Writer struct {
	level    int
	logger   *utils.Logger
	progress bool
}

// WriterOptions contains options for the archive writer
type WriterOptions struct {
	// Level is the zstd compression level (1-19)
	Level  int
	Logger *utils.Logger
	// Progress shows a progress bar while writing
	Progress bool
}

// NewWriter creates a new archive writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Level < 1 || opts.Level > 19 {
		opts.Level = 3
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Writer{
		level:    opts.Level,
		logger:   logger.WithComponent("archive"),
		progress: opts.Progress,
	}
}

// Write streams the manifest's entries into a tar.zst archive at path, in
// manifest order. Directory markers become directory headers.
func (w *Writer) Write(path string, m domain.Manifest) error {
	if err := utils.EnsureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(w.level)))
	if err != nil {
		return err
	}
	tw := tar.NewWriter(zw)

	var bar interface{ Add(int) error }
	if w.progress {
		bar = utils.NewProgressBar(len(m), utils.DescArchiving)
	}

	for _, entry := range m {
		if err := writeEntry(tw, entry); err != nil {
			tw.Close()
			zw.Close()
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if err := tw.Close(); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	w.logger.Info().Str("path", path).Int("entries", len(m)).Msg("archive written")
	return nil
}

func writeEntry(tw *tar.Writer, entry domain.Entry) error {
	info, err := os.Stat(entry.Source)
	if err != nil {
		return err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = entry.Dest
	if entry.Kind == domain.KindDir {
		hdr.Name += "/"
	}

	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	if entry.Kind == domain.KindDir {
		return nil
	}

	src, err := os.Open(entry.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(tw, src)
	return err
}
