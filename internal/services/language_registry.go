package services

import (
	"context"
	"fmt"

	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
)

// LanguageRegistry is the fixed set of supported languages, loaded once after
// seeding. Codes and ids never change at runtime.
type LanguageRegistry struct {
	languages []models.Language
	byCode    map[string]models.Language
	byID      map[uint]models.Language
	source    string
}

func NewLanguageRegistry(ctx context.Context, repo repository.LanguageRepository) (*LanguageRegistry, error) {
	languages, err := repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load languages: %w", err)
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("no languages seeded")
	}

	reg := &LanguageRegistry{
		languages: languages,
		byCode:    make(map[string]models.Language, len(languages)),
		byID:      make(map[uint]models.Language, len(languages)),
		source:    models.SourceLanguageCode,
	}
	for _, lang := range languages {
		reg.byCode[lang.Code] = lang
		reg.byID[lang.ID] = lang
	}

	if _, ok := reg.byCode[reg.source]; !ok {
		return nil, fmt.Errorf("source language %q is not seeded", reg.source)
	}

	return reg, nil
}

// All returns every registered language in seed order.
func (r *LanguageRegistry) All() []models.Language {
	return r.languages
}

func (r *LanguageRegistry) ByCode(code string) (models.Language, bool) {
	lang, ok := r.byCode[code]
	return lang, ok
}

// CodeForID resolves a language id back to its code. Unknown ids return "".
func (r *LanguageRegistry) CodeForID(id uint) string {
	return r.byID[id].Code
}

func (r *LanguageRegistry) SourceCode() string {
	return r.source
}

func (r *LanguageRegistry) Source() models.Language {
	return r.byCode[r.source]
}

// TargetCodes returns every registered code except the source language.
func (r *LanguageRegistry) TargetCodes() []string {
	targets := make([]string, 0, len(r.languages)-1)
	for _, lang := range r.languages {
		if lang.Code != r.source {
			targets = append(targets, lang.Code)
		}
	}
	return targets
}
