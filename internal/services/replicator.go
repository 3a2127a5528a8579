package services

import (
	"context"
	"fmt"

	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/translate"

	"github.com/sirupsen/logrus"
)

// Localized is the admin all-languages shape: one object per logical item with
// its rows keyed by language code. Shared fields can be read from any entry.
type Localized[T models.Translated] struct {
	Key          string       `json:"key"`
	Translations map[string]T `json:"translations"`
}

// Replicator implements the create/update/delete fan-out every replicated
// content type shares. Content is authored in the source language; the
// translation gateway produces the other variants, falling back to the source
// text for languages that fail. Writes are issued sequentially so a burst of
// per-language rows cannot exhaust the connection pool.
type Replicator[T models.Translated] struct {
	repo       repository.ReplicatedRepository[T]
	registry   *LanguageRegistry
	translator translate.Translator
	logger     *logrus.Logger
	resource   string
}

func NewReplicator[T models.Translated](
	repo repository.ReplicatedRepository[T],
	registry *LanguageRegistry,
	translator translate.Translator,
	logger *logrus.Logger,
	resource string,
) *Replicator[T] {
	return &Replicator[T]{
		repo:       repo,
		registry:   registry,
		translator: translator,
		logger:     logger,
		resource:   resource,
	}
}

// contentFor picks the content record for a language: source text for the source
// language, the translated record when available, source text otherwise.
func (r *Replicator[T]) contentFor(code string, source translate.Content, translations map[string]translate.Content) translate.Content {
	if code == r.registry.SourceCode() {
		return source
	}
	if c, ok := translations[code]; ok {
		return c
	}
	return source.Clone()
}

// Create fans a new logical item out to one row per registered language. build
// constructs the row for a language from its content record. Per-language
// persistence failures are tolerated; the operation fails only when the
// source-language row cannot be created.
func (r *Replicator[T]) Create(ctx context.Context, key string, source translate.Content, build func(lang models.Language, content translate.Content) T) ([]T, error) {
	translations, err := r.translator.Translate(ctx, source, r.registry.TargetCodes())
	if err != nil {
		r.logger.WithError(err).WithField("resource", r.resource).Warn("Translation fan-out failed, using source text for all languages")
	}

	created := make([]T, 0, len(r.registry.All()))
	for _, lang := range r.registry.All() {
		row := build(lang, r.contentFor(lang.Code, source, translations))
		if err := r.repo.CreateRow(ctx, &row); err != nil {
			if lang.Code == r.registry.SourceCode() {
				return nil, fmt.Errorf("failed to create %s %q: %w", r.resource, key, err)
			}
			r.logger.WithError(err).WithFields(logrus.Fields{
				"resource": r.resource,
				"key":      key,
				"language": lang.Code,
			}).Warn("Failed to create language row, continuing with remaining languages")
			continue
		}
		created = append(created, row)
	}

	return created, nil
}

// Update applies changes to every row of the logical key. source carries the
// changed translatable fields (empty means shared-only update); apply merges the
// per-language content and any shared changes into one row. Rows are updated
// sequentially.
func (r *Replicator[T]) Update(ctx context.Context, key string, source translate.Content, apply func(row *T, content translate.Content)) ([]T, error) {
	rows, err := r.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %q: %w", r.resource, key, ErrNotFound)
	}

	var translations map[string]translate.Content
	if len(source) > 0 {
		translations, err = r.translator.Translate(ctx, source, r.registry.TargetCodes())
		if err != nil {
			r.logger.WithError(err).WithField("resource", r.resource).Warn("Translation fan-out failed, using source text for all languages")
		}
	}

	for i := range rows {
		var content translate.Content
		if len(source) > 0 {
			content = r.contentFor(r.registry.CodeForID(rows[i].LangID()), source, translations)
		}
		apply(&rows[i], content)

		if err := r.repo.UpdateRow(ctx, &rows[i]); err != nil {
			if r.registry.CodeForID(rows[i].LangID()) == r.registry.SourceCode() {
				return nil, fmt.Errorf("failed to update %s %q: %w", r.resource, key, err)
			}
			r.logger.WithError(err).WithFields(logrus.Fields{
				"resource": r.resource,
				"key":      key,
				"language": r.registry.CodeForID(rows[i].LangID()),
			}).Warn("Failed to update language row, continuing with remaining languages")
		}
	}

	return rows, nil
}

// Delete removes every row of the logical key.
func (r *Replicator[T]) Delete(ctx context.Context, key string) error {
	deleted, err := r.repo.DeleteByKey(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to delete %s %q: %w", r.resource, key, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%s %q: %w", r.resource, key, ErrNotFound)
	}
	return nil
}

// Rows returns every language row of the logical key.
func (r *Replicator[T]) Rows(ctx context.Context, key string) ([]T, error) {
	return r.repo.FindByKey(ctx, key)
}

// Get returns the row of key in the given language.
func (r *Replicator[T]) Get(ctx context.Context, key, langCode string) (*T, error) {
	lang, ok := r.registry.ByCode(langCode)
	if !ok {
		return nil, fmt.Errorf("language %q: %w", langCode, ErrNotFound)
	}

	row, err := r.repo.FindOne(ctx, key, lang.ID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%s %q: %w", r.resource, key, ErrNotFound)
	}
	return row, nil
}

// List returns rows of one language, filtered and ordered per opts. The
// language filter is added to opts.Filters.
func (r *Replicator[T]) List(ctx context.Context, langCode string, opts repository.ListOptions) ([]T, int64, error) {
	lang, ok := r.registry.ByCode(langCode)
	if !ok {
		return nil, 0, fmt.Errorf("language %q: %w", langCode, ErrNotFound)
	}

	filters := map[string]any{"language_id": lang.ID}
	for k, v := range opts.Filters {
		filters[k] = v
	}
	opts.Filters = filters

	return r.repo.FindAll(ctx, opts)
}

// AllGrouped returns every logical item with its rows reshaped into a
// translations map keyed by language code, preserving query order of keys. Used
// by admin editing UIs; includes inactive items unless opts filters them.
func (r *Replicator[T]) AllGrouped(ctx context.Context, opts repository.ListOptions) ([]Localized[T], error) {
	rows, _, err := r.repo.FindAll(ctx, opts)
	if err != nil {
		return nil, err
	}

	grouped := make([]Localized[T], 0)
	index := make(map[string]int)
	for _, row := range rows {
		key := row.LogicalKey()
		i, ok := index[key]
		if !ok {
			i = len(grouped)
			index[key] = i
			grouped = append(grouped, Localized[T]{
				Key:          key,
				Translations: make(map[string]T, len(r.registry.All())),
			})
		}
		grouped[i].Translations[r.registry.CodeForID(row.LangID())] = row
	}

	return grouped, nil
}

// Reorder sets the shared sort position on every row of the logical key. The
// lookup is strictly by key so items that happen to share an order value are
// never touched.
func (r *Replicator[T]) Reorder(ctx context.Context, key string, position int) error {
	return r.SetShared(ctx, key, map[string]any{"sort_order": position})
}

// SetShared applies identical column changes across all rows of the key.
func (r *Replicator[T]) SetShared(ctx context.Context, key string, changes map[string]any) error {
	affected, err := r.repo.UpdateShared(ctx, key, changes)
	if err != nil {
		return fmt.Errorf("failed to update %s %q: %w", r.resource, key, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %q: %w", r.resource, key, ErrNotFound)
	}
	return nil
}
