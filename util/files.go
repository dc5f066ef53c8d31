package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/spf13/afero"
)

// BackupSession copies files into a per-run directory before they are
// overwritten. The directory is created lazily on the first backup.
type BackupSession struct {
	fs      afero.Fs
	dir     string
	created bool
	saved   map[string]string
}

// NewBackupSession prepares a session under baseDir. An empty baseDir
// disables backups.
func NewBackupSession(fs afero.Fs, baseDir string) *BackupSession {
	s := &BackupSession{fs: fs, saved: make(map[string]string)}
	if baseDir != "" {
		id := uuid.New().String()[:8]
		s.dir = filepath.Join(baseDir, fmt.Sprintf("session_%s_%s", time.Now().Format("20060102_150405"), id))
	}
	return s
}

// Dir returns the session directory, empty when backups are disabled
func (s *BackupSession) Dir() string {
	return s.dir
}

// Used reports whether at least one file was backed up
func (s *BackupSession) Used() bool {
	return len(s.saved) > 0
}

// Backup copies path into the session once; later calls for the same path
// keep the first copy, which holds the pre-run content.
func (s *BackupSession) Backup(path string) (string, error) {
	if s == nil || s.dir == "" {
		return "", nil
	}
	if dst, ok := s.saved[path]; ok {
		return dst, nil
	}
	if !s.created {
		if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
			return "", errors.ErrBackupFailed.WithArgs(path).Wrap(err)
		}
		s.created = true
	}

	dst := filepath.Join(s.dir, backupName(path))
	if err := s.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", errors.ErrBackupFailed.WithArgs(path).Wrap(err)
	}
	if err := copyFile(s.fs, path, dst); err != nil {
		return "", errors.ErrBackupFailed.WithArgs(path).Wrap(err)
	}
	s.saved[path] = dst
	return dst, nil
}

// backupName mirrors path below the session directory
func backupName(path string) string {
	clean := filepath.ToSlash(filepath.Clean(path))
	clean = strings.TrimPrefix(clean, filepath.ToSlash(filepath.VolumeName(clean)))
	parts := strings.Split(strings.TrimLeft(clean, "/"), "/")
	for i, p := range parts {
		if p == ".." {
			parts[i] = "_up_"
		}
	}
	return filepath.Join(parts...)
}

// WriteFileAtomic writes data to a temp file next to filename and renames it
// into place, falling back to a copy when rename fails.
func WriteFileAtomic(fs afero.Fs, filename string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := fs.Stat(filename); err == nil {
		perm = info.Mode().Perm()
	}

	tempFile, err := afero.TempFile(fs, filepath.Dir(filename), ".ngx-i18n-scan-*.tmp")
	if err != nil {
		return errors.ErrWriteFile.WithArgs(filename).Wrap(err)
	}
	tempPath := tempFile.Name()
	defer fs.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return errors.ErrWriteFile.WithArgs(filename).Wrap(err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return errors.ErrWriteFile.WithArgs(filename).Wrap(err)
	}
	if err := tempFile.Close(); err != nil {
		return errors.ErrWriteFile.WithArgs(filename).Wrap(err)
	}
	_ = fs.Chmod(tempPath, perm)

	if err := fs.Rename(tempPath, filename); err != nil {
		if err := copyFile(fs, tempPath, filename); err != nil {
			return errors.ErrWriteFile.WithArgs(filename).Wrap(err)
		}
	}
	return nil
}

func copyFile(fs afero.Fs, src, dst string) error {
	sourceFile, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := fs.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}

// Exists reports whether path exists on fs
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory on fs
func IsDir(fs afero.Fs, path string) bool {
	ok, err := afero.IsDir(fs, path)
	return err == nil && ok
}
