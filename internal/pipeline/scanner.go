package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

// Scanner polls one inbox directory per market for new asset files.
type Scanner struct {
	log           *slog.Logger
	watchDir      string
	markets       []string
	scanInterval  time.Duration
	files         chan<- *domain.Attachment
	filesProvider FilesProvider
	fileUpdater   FileUpdater
}

func NewScanner(
	log *slog.Logger,
	watchDir string,
	markets []string,
	scanInterval time.Duration,
	files chan<- *domain.Attachment,
	filesProvider FilesProvider,
	fileUpdater FileUpdater,
) *Scanner {
	return &Scanner{
		log:           log,
		watchDir:      watchDir,
		markets:       markets,
		scanInterval:  scanInterval,
		files:         files,
		filesProvider: filesProvider,
		fileUpdater:   fileUpdater,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	filesMap, err := s.extractFilesFromDB(ctx)
	if err != nil {
		return err
	}

	for _, market := range s.markets {
		dir := filepath.Join(s.watchDir, market)

		entries, err := os.ReadDir(dir)
		if errors.Is(err, os.ErrNotExist) {
			s.log.DebugContext(ctx, "market directory does not exist", slog.String("dir", dir))
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to read directory %q: %w", dir, err)
		}

		for _, entry := range entries {
			err := s.processEntry(ctx, market, entry, filesMap)
			if errors.Is(err, context.Canceled) {
				return err
			}

			if err != nil {
				s.log.ErrorContext(ctx, "failed process entry, skipping file",
					slog.String("market", market),
					slog.String("filename", entry.Name()),
					slog.String("err", err.Error()),
				)
				continue
			}
		}
	}

	return nil
}

func (s *Scanner) extractFilesFromDB(ctx context.Context) (map[string]domain.Status, error) {
	files, err := s.filesProvider.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}

	filesMap := make(map[string]domain.Status, len(files))
	for _, file := range files {
		filesMap[file.Name] = file.Status
	}

	return filesMap, nil
}

func (s *Scanner) processEntry(
	ctx context.Context,
	market string,
	entry os.DirEntry,
	filesMap map[string]domain.Status,
) error {
	if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
		return nil
	}

	name := path.Join(market, entry.Name())

	status, ok := filesMap[name]
	if ok && status != domain.StatusPending {
		return nil
	}

	err := s.fileUpdater.UpdateOrCreateFile(ctx, &domain.File{
		Name:   name,
		Market: market,
		Status: domain.StatusProcessing,
	})
	if err != nil {
		return fmt.Errorf("failed to update file status: %w", err)
	}

	s.log.DebugContext(ctx, "updated file status to processing", slog.String("filename", name))

	attachment := &domain.Attachment{
		Name:   name,
		Market: market,
		Path:   filepath.Join(s.watchDir, market, entry.Name()),
	}

	select {
	case s.files <- attachment:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
