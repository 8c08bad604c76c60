package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jask/phonebook/internal/config"
	"github.com/jask/phonebook/internal/contacts"
)

// SeedService preloads the registry with contacts from configuration.
type SeedService struct {
	Registry *contacts.Registry
	Logger   *zap.Logger
}

type SeedResult struct {
	Added   int
	Skipped int
	Errors  []error
}

// Seed adds each entry in order. Names already present are skipped; entries
// with a blank name or number are reported in Errors. It stops early,
// returning ctx.Err(), if ctx is cancelled.
func (s *SeedService) Seed(ctx context.Context, entries []config.SeedContact) (SeedResult, error) {
	res := SeedResult{}
	if s.Registry == nil {
		return res, fmt.Errorf("seed: registry not configured")
	}
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}

	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		name, number := strings.TrimSpace(e.Name), strings.TrimSpace(e.Number)
		c, err := s.Registry.Add(name, number)
		switch {
		case err == nil:
			res.Added++
			log.Debug("seeded contact", zap.String("id", c.ID), zap.String("name", c.Name))
		case errors.Is(err, contacts.ErrDuplicateName):
			res.Skipped++
			log.Debug("seed skipped duplicate", zap.String("name", name))
		default:
			res.Errors = append(res.Errors, fmt.Errorf("seed entry %d: %w", i+1, err))
		}
	}
	if res.Added > 0 || res.Skipped > 0 || len(res.Errors) > 0 {
		log.Info("seed complete",
			zap.Int("added", res.Added),
			zap.Int("skipped", res.Skipped),
			zap.Int("errors", len(res.Errors)))
	}
	return res, nil
}
