// Package archive packs a project directory into a tar.gz and uploads it to the build service.
package archive

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArchiveProducer = (*Producer)(nil)

// Producer implements ports.ArchiveProducer.
type Producer struct {
	uploader ports.ArchiveUploader
	logger   ports.Logger
	ignores  []string
	tempDir  string
}

// NewProducer creates a Producer uploading through uploader.
func NewProducer(uploader ports.ArchiveUploader, logger ports.Logger) *Producer {
	return &Producer{
		uploader: uploader,
		logger:   logger,
		ignores:  DefaultIgnores,
	}
}

// Produce archives projectDir, uploads it and returns the URL of the upload.
// The upload key is the content hash of the archive, so unchanged projects map to the same key.
func (p *Producer) Produce(ctx context.Context, projectDir string) (string, error) {
	path, sum, err := p.Pack(projectDir)
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(path) }()

	key := fmt.Sprintf("%016x.tar.gz", sum)
	p.logger.Info("Uploading project archive " + key)

	archiveURL, err := p.uploader.UploadArchive(ctx, key, path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ""), "project_dir", projectDir)
	}
	return archiveURL, nil
}

// Pack writes the archive of projectDir to a temporary file and returns its path and
// the xxhash of its compressed content. The caller removes the file.
func (p *Producer) Pack(projectDir string) (string, uint64, error) {
	f, err := os.CreateTemp(p.tempDir, "dispatch-*.tar.gz")
	if err != nil {
		return "", 0, zerr.Wrap(domain.ErrArchiveFailed, err.Error())
	}

	sum, err := p.write(f, projectDir)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = zerr.Wrap(domain.ErrArchiveFailed, closeErr.Error())
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return "", 0, zerr.With(err, "project_dir", projectDir)
	}

	return f.Name(), sum, nil
}

func (p *Producer) write(w io.Writer, root string) (uint64, error) {
	digest := xxhash.New()
	gz := gzip.NewWriter(io.MultiWriter(w, digest))
	tw := tar.NewWriter(gz)

	for entry, err := range Walk(root, p.ignores) {
		if err != nil {
			return 0, zerr.With(zerr.Wrap(domain.ErrArchiveFailed, err.Error()), "path", entry.Path)
		}
		if err := writeEntry(tw, entry); err != nil {
			return 0, zerr.With(zerr.Wrap(domain.ErrArchiveFailed, err.Error()), "path", entry.Path)
		}
	}

	if err := tw.Close(); err != nil {
		return 0, zerr.Wrap(domain.ErrArchiveFailed, err.Error())
	}
	if err := gz.Close(); err != nil {
		return 0, zerr.Wrap(domain.ErrArchiveFailed, err.Error())
	}
	return digest.Sum64(), nil
}

// writeEntry writes one entry. Timestamps and ownership are dropped so that
// the archive only depends on content, names and modes.
func writeEntry(tw *tar.Writer, e Entry) error {
	info, err := e.Dir.Info()
	if err != nil {
		return err
	}

	var link string
	if info.Mode()&os.ModeSymlink != 0 {
		if link, err = os.Readlink(e.Path); err != nil {
			return err
		}
	}

	header, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return err
	}
	header.Name = e.RelPath
	if info.IsDir() {
		header.Name += "/"
	}
	header.ModTime = time.Time{}
	header.AccessTime = time.Time{}
	header.ChangeTime = time.Time{}
	header.Uid, header.Gid = 0, 0
	header.Uname, header.Gname = "", ""
	header.Format = tar.FormatPAX

	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	if !info.Mode().IsRegular() {
		return nil
	}

	f, err := os.Open(filepath.Clean(e.Path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = io.Copy(tw, f)
	return err
}
