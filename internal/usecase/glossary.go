package usecase

import (
	"strings"

	"go.uber.org/zap"

	"github.com/choplin/acronym/internal/glossary"
	"github.com/choplin/acronym/internal/prompt"
)

// Store loads and saves the whole glossary.
type Store interface {
	Load() (glossary.Glossary, error)
	Save(g glossary.Glossary) error
}

// Status is the outcome of a mutating operation.
type Status string

const (
	StatusAdded     Status = "added"
	StatusReplaced  Status = "replaced"
	StatusDeleted   Status = "deleted"
	StatusCancelled Status = "cancelled"
	StatusNotFound  Status = "not_found"
)

// Item is a single glossary row.
type Item struct {
	Key   string
	Entry glossary.Entry
}

type Glossary struct {
	store    Store
	prompter prompt.Prompter
	logger   *zap.Logger
}

func NewGlossary(store Store, prompter prompt.Prompter, logger *zap.Logger) *Glossary {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Glossary{
		store:    store,
		prompter: prompter,
		logger:   logger.Named("usecase"),
	}
}

type AddInput struct {
	Acronym     string
	FullName    string
	Description string
}

type AddResult struct {
	Key    string
	Status Status
}

// Add stores a definition, asking for missing fields and for confirmation
// before replacing an existing key.
func (u *Glossary) Add(input AddInput) (AddResult, error) {
	key := glossary.NormalizeKey(input.Acronym)
	if key == "" {
		return AddResult{}, glossary.NewUsageError("acronym must not be empty")
	}

	entry, err := u.completeEntry(input)
	if err != nil {
		return AddResult{}, err
	}

	g, err := u.store.Load()
	if err != nil {
		return AddResult{}, err
	}

	status := StatusAdded
	if g.Has(key) {
		ok, err := u.prompter.Confirm(key + " exists. Overwrite?")
		if err != nil {
			return AddResult{}, err
		}
		if !ok {
			u.logger.Debug("add cancelled", zap.String("key", key))
			return AddResult{Key: key, Status: StatusCancelled}, nil
		}
		status = StatusReplaced
	}

	g.Put(key, entry)
	if err := u.store.Save(g); err != nil {
		return AddResult{}, err
	}

	u.logger.Debug("entry stored", zap.String("key", key), zap.String("status", string(status)))
	return AddResult{Key: key, Status: status}, nil
}

func (u *Glossary) completeEntry(input AddInput) (glossary.Entry, error) {
	entry := glossary.Entry{
		FullName:    strings.TrimSpace(input.FullName),
		Description: strings.TrimSpace(input.Description),
	}

	var err error
	if entry.FullName == "" {
		if entry.FullName, err = u.prompter.Ask("Full name"); err != nil {
			return glossary.Entry{}, err
		}
	}
	if entry.Description == "" {
		if entry.Description, err = u.prompter.Ask("Description"); err != nil {
			return glossary.Entry{}, err
		}
	}
	return entry, nil
}

type DeleteResult struct {
	Key    string
	Status Status
}

// Delete removes a definition after confirmation. A missing key is reported
// as StatusNotFound without prompting.
func (u *Glossary) Delete(acronym string) (DeleteResult, error) {
	key := glossary.NormalizeKey(acronym)
	if key == "" {
		return DeleteResult{}, glossary.NewUsageError("acronym must not be empty")
	}

	g, err := u.store.Load()
	if err != nil {
		return DeleteResult{}, err
	}

	if !g.Has(key) {
		return DeleteResult{Key: key, Status: StatusNotFound}, nil
	}

	ok, err := u.prompter.Confirm("Are you sure you want to delete " + key + "?")
	if err != nil {
		return DeleteResult{}, err
	}
	if !ok {
		u.logger.Debug("delete cancelled", zap.String("key", key))
		return DeleteResult{Key: key, Status: StatusCancelled}, nil
	}

	g.Remove(key)
	if err := u.store.Save(g); err != nil {
		return DeleteResult{}, err
	}

	u.logger.Debug("entry deleted", zap.String("key", key))
	return DeleteResult{Key: key, Status: StatusDeleted}, nil
}

// List returns every definition ordered by key.
func (u *Glossary) List() ([]Item, error) {
	g, err := u.store.Load()
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(g))
	for _, key := range g.Keys() {
		items = append(items, Item{Key: key, Entry: g[key]})
	}
	return items, nil
}

// Lookup returns the definition stored for token, if any.
func (u *Glossary) Lookup(token string) (Item, bool, error) {
	key := glossary.NormalizeKey(token)

	g, err := u.store.Load()
	if err != nil {
		return Item{}, false, err
	}

	entry, ok := g.Get(key)
	if !ok {
		return Item{Key: key}, false, nil
	}
	return Item{Key: key, Entry: entry}, true, nil
}
