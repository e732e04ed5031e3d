package bootstrap

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"careergps/internal/domain/recommendation"
	"careergps/internal/logger"
)

const progressEvery = 10000

var ErrInvalidSampleSize = errors.New("sample size must be positive")

// Sample is one JSONL row: the profile fields plus the engine's top career.
type Sample struct {
	recommendation.Profile
	Label recommendation.Career `json:"label"`
}

type Generator struct {
	engine *recommendation.Engine
	log    logger.Logger
}

func NewGenerator(engine *recommendation.Engine, log logger.Logger) *Generator {
	if engine == nil {
		engine = recommendation.DefaultEngine()
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Generator{engine: engine, log: log}
}

// Generate writes n labelled samples to w, one JSON object per line.
func (g *Generator) Generate(ctx context.Context, w io.Writer, sampler *Sampler, n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidSampleSize
	}

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	written := 0
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			_ = bw.Flush()
			return written, err
		}

		p := sampler.Profile()
		top := g.engine.Recommend(p, 1)
		if err := enc.Encode(Sample{Profile: p, Label: top[0]}); err != nil {
			return written, fmt.Errorf("encode sample %d: %w", i, err)
		}
		written++

		if written%progressEvery == 0 {
			g.log.Debug("bootstrap progress", map[string]interface{}{"written": written, "total": n})
		}
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("flush: %w", err)
	}
	return written, nil
}
