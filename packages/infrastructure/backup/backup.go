package backup

import (
	"classroom/packages/common/logger"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/otiai10/copy"
)

var backupLogger = logger.NewSource("BACKUP", logger.Default)

var ErrSourceNotFound = errors.New("diretório de origem não existe")
var ErrSourceNotDirectory = errors.New("origem não é um diretório")

type Report struct {
	Source      string
	Destination string
	// Names of copied files, sorted.
	Copied []string
}

// Copies regular files from the top level of src into dst.
// Subdirectories are skipped, dst is created if it doesn't exist.
// File modes are preserved.
func Run(src string, dst string) (*Report, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSourceNotFound
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrSourceNotDirectory
	}

	backupLogger.Info("Copying "+src+" -> "+dst+"...", nil)

	report := &Report{Source: src, Destination: dst, Copied: []string{}}
	root := filepath.Clean(src)

	err = copy.Copy(src, dst, copy.Options{
		Skip: func(info os.FileInfo, path string, _ string) (bool, error) {
			if filepath.Clean(path) == root {
				return false, nil
			}
			if !info.Mode().IsRegular() {
				return true, nil
			}
			report.Copied = append(report.Copied, info.Name())
			return false, nil
		},
		PermissionControl: copy.PerservePermission,
	})
	if err != nil {
		backupLogger.Error("Failed to copy "+src, err.Error(), nil)
		return nil, fmt.Errorf("copy %s -> %s: %w", src, dst, err)
	}

	slices.Sort(report.Copied)

	backupLogger.Info("Copying "+src+" -> "+dst+": OK", logger.Meta{"copied": strconv.Itoa(len(report.Copied))})

	return report, nil
}
