package helper

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrFileTooLarge = errors.New("file too large")
	ErrNotImage     = errors.New("only image uploads are allowed")
)

// ImageStore keeps uploads on local disk, served back under /uploads.
type ImageStore struct {
	Dir      string
	MaxBytes int64
	// MaxDimension > 0 downscales larger images to fit; 0 stores bytes verbatim.
	MaxDimension int
}

func (s *ImageStore) EnsureDir() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// GenerateUploadFilename: <unix-millis>-<random>.<ext>, never derived from content.
func GenerateUploadFilename(originalFilename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalFilename)))
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.Int64N(1_000_000_000), ext)
}

// Save validates and stores the upload, returning the stored file name.
func (s *ImageStore) Save(fh *multipart.FileHeader) (string, error) {
	if s.MaxBytes > 0 && fh.Size > s.MaxBytes {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("sniff upload: %w", err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", ErrNotImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name := GenerateUploadFilename(fh.Filename, time.Now())
	dst := filepath.Join(s.Dir, name)

	if s.MaxDimension > 0 {
		resized, err := s.saveResized(src, dst)
		if err != nil {
			return "", err
		}
		if resized {
			return name, nil
		}
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return "", fmt.Errorf("rewind upload: %w", err)
		}
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return name, nil
}

// saveResized reports false when the image is already small enough or the
// format cannot be round-tripped by imaging; the caller then stores it verbatim.
func (s *ImageStore) saveResized(src io.Reader, dst string) (bool, error) {
	if _, err := imaging.FormatFromFilename(dst); err != nil {
		return false, nil
	}
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return false, nil
	}
	b := img.Bounds()
	if b.Dx() <= s.MaxDimension && b.Dy() <= s.MaxDimension {
		return false, nil
	}
	fitted := imaging.Fit(img, s.MaxDimension, s.MaxDimension, imaging.Lanczos)
	if err := imaging.Save(fitted, dst); err != nil {
		return false, fmt.Errorf("save resized upload: %w", err)
	}
	return true, nil
}
