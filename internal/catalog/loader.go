// Package catalog loads and validates the authored challenge catalog.
// The catalog is the immutable template every fresh completion log is
// stamped from.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/kiwiorbit/speechive-7.1/internal/domain"
)

// Sentinel errors for catalog loading
var (
	ErrInvalidConfig      = errors.New("invalid catalog configuration")
	ErrDuplicateDay       = errors.New("duplicate day number")
	ErrDuplicateActivity  = errors.New("duplicate activity id")
	ErrDuplicateChallenge = errors.New("duplicate challenge category")
	ErrMissingCategory    = errors.New("missing challenge category")
)

// Config is the parsed challenges.json file.
type Config struct {
	Version     string         `json:"version" validate:"required"`
	Description string         `json:"description"`
	Challenges  []ChallengeDef `json:"challenges" validate:"required,dive"`
}

// ChallengeDef is one category's authored 30-day program.
type ChallengeDef struct {
	Type        domain.Category `json:"type" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Days        []DayDef        `json:"days" validate:"dive"`
}

// DayDef is one authored day within a challenge.
type DayDef struct {
	Day        int           `json:"day" validate:"required,gte=1,lte=30"`
	Activities []ActivityDef `json:"activities" validate:"dive"`
}

// ActivityDef is one authored activity.
type ActivityDef struct {
	ID              string   `json:"id" validate:"required"`
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	RecommendedTime int      `json:"recommended_time" validate:"gte=0"`
	Skills          []string `json:"skills"`
}

// Loader handles loading and validating the challenge catalog.
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance.
func NewLoader() Loader {
	return &catalogLoader{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads, parses, and validates a challenges JSON file.
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	if err := l.Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks structural rules the struct tags cannot express:
// the full category set present exactly once, day numbers unique within a
// challenge, activity ids unique within a day.
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := l.validate.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[domain.Category]bool, len(config.Challenges))
	for i := range config.Challenges {
		ch := &config.Challenges[i]
		if !ch.Type.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidConfig, ch.Type)
		}
		if seen[ch.Type] {
			return fmt.Errorf("%w: %q", ErrDuplicateChallenge, ch.Type)
		}
		seen[ch.Type] = true

		if err := validateDays(ch); err != nil {
			return err
		}
	}

	for _, c := range domain.Categories() {
		if !seen[c] {
			return fmt.Errorf("%w: %q", ErrMissingCategory, c)
		}
	}
	return nil
}

func validateDays(ch *ChallengeDef) error {
	days := make(map[int]bool, len(ch.Days))
	for i := range ch.Days {
		d := &ch.Days[i]
		if days[d.Day] {
			return fmt.Errorf("%w: %q day %d", ErrDuplicateDay, ch.Type, d.Day)
		}
		days[d.Day] = true

		ids := make(map[string]bool, len(d.Activities))
		for j := range d.Activities {
			id := d.Activities[j].ID
			if ids[id] {
				return fmt.Errorf("%w: %q day %d id %q", ErrDuplicateActivity, ch.Type, d.Day, id)
			}
			ids[id] = true
		}
	}
	return nil
}

// Template builds the pristine completion log the config authors: every
// activity unstarted, zero duration, no completion date.
func (c *Config) Template() domain.CompletionLog {
	log := make(domain.CompletionLog, 0, len(c.Challenges))
	for _, ch := range c.Challenges {
		challenge := domain.StrategyChallenge{
			Type:        ch.Type,
			Title:       ch.Title,
			Description: ch.Description,
			Days:        make([]domain.ChallengeDay, 0, len(ch.Days)),
		}
		for _, d := range ch.Days {
			day := domain.ChallengeDay{
				Day:        d.Day,
				Activities: make([]domain.Activity, 0, len(d.Activities)),
			}
			for _, a := range d.Activities {
				skills := make([]string, len(a.Skills))
				copy(skills, a.Skills)
				day.Activities = append(day.Activities, domain.Activity{
					ID:              a.ID,
					Title:           a.Title,
					Description:     a.Description,
					RecommendedTime: a.RecommendedTime,
					Skills:          skills,
				})
			}
			challenge.Days = append(challenge.Days, day)
		}
		log = append(log, challenge)
	}
	return log
}
