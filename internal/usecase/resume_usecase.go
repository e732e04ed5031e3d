package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"careergps/internal/logger"
	"careergps/internal/metrics"
	"careergps/internal/resume"
)

const (
	resumeCacheTTL    = 24 * time.Hour
	resumeCachePrefix = "resume:skills:"
)

var (
	ErrFileTooLarge     = errors.New("file too large")
	ErrUnsupportedFile  = errors.New("unsupported file type")
	ErrUnreadableFile   = errors.New("file could not be read")
	ErrEmptyFile        = errors.New("empty file")
	ErrCareerIsRequired = errors.New("career is required")
)

type ResumeFile struct {
	Name string
	MIME string
	Data []byte
}

type ResumeArchiver interface {
	Put(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type ResumeReport struct {
	FileName   string
	ArchiveKey string
	Extraction resume.Extraction
	Match      MatchReport
}

type ResumeUsecase struct {
	skills   *SkillsUsecase
	archive  ResumeArchiver
	cache    JSONCache
	maxBytes int64
	log      logger.Logger
}

// NewResumeUsecase accepts a nil archive or cache; the step is then skipped.
func NewResumeUsecase(skills *SkillsUsecase, archive ResumeArchiver, cache JSONCache, maxBytes int64, log logger.Logger) *ResumeUsecase {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &ResumeUsecase{skills: skills, archive: archive, cache: cache, maxBytes: maxBytes, log: log}
}

func (u *ResumeUsecase) Analyze(ctx context.Context, f ResumeFile, career string) (ResumeReport, error) {
	if strings.TrimSpace(career) == "" {
		return ResumeReport{}, ErrCareerIsRequired
	}
	if len(f.Data) == 0 {
		return ResumeReport{}, ErrEmptyFile
	}
	if u.maxBytes > 0 && int64(len(f.Data)) > u.maxBytes {
		return ResumeReport{}, fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, len(f.Data), u.maxBytes)
	}

	mime := resume.DetectMIME(f.MIME, f.Name)
	extraction, err := u.extract(ctx, mime, f.Data)
	if err != nil {
		metrics.ResumesProcessed.WithLabelValues(mime, "rejected").Inc()
		return ResumeReport{}, err
	}

	match, err := u.skills.Match(ctx, extraction.Skills, career)
	if err != nil {
		return ResumeReport{}, err
	}
	report := ResumeReport{FileName: f.Name, Extraction: extraction, Match: match}
	if !match.Result.Found() {
		// unknown careers are not archived
		metrics.ResumesProcessed.WithLabelValues(mime, "unknown_career").Inc()
		return report, nil
	}

	if u.archive != nil {
		key, err := u.archive.Put(ctx, f.Name, mime, f.Data)
		if err != nil {
			u.log.Warn("resume archive failed", map[string]interface{}{"file": f.Name, "error": err})
		} else {
			report.ArchiveKey = key
		}
	}

	metrics.ResumesProcessed.WithLabelValues(mime, "ok").Inc()
	return report, nil
}

// extract parses the file, using the cache keyed by content hash when one
// is configured.
func (u *ResumeUsecase) extract(ctx context.Context, mime string, data []byte) (resume.Extraction, error) {
	sum := sha256.Sum256(data)
	key := resumeCachePrefix + hex.EncodeToString(sum[:])

	if u.cache != nil {
		var cached resume.Extraction
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	text, err := resume.ExtractText(mime, data)
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedType) {
			return resume.Extraction{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, mime)
		}
		u.log.Warn("resume text extraction failed", map[string]interface{}{"mime": mime, "error": err})
		return resume.Extraction{}, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	extraction := resume.ExtractSkills(text)
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, extraction, resumeCacheTTL); err != nil {
			u.log.Debug("resume cache write failed", map[string]interface{}{"error": err})
		}
	}
	return extraction, nil
}
