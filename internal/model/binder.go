package model

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/abookhq/abook/internal/account"
	"github.com/abookhq/abook/internal/book"
	"github.com/abookhq/abook/internal/logging"
	"github.com/abookhq/abook/internal/prefs"
	"github.com/abookhq/abook/internal/storage"
)

// Binder loads a user's per-user files on login and installs a fresh Model
// on the host through the install hook. It satisfies account.Binder.
//
// File layout under the data directory:
//
//	<dataDir>/<userID>.addressbook.json
//	<dataDir>/<userID>.prefs.json
type Binder struct {
	dataDir string
	storage Storage
	install func(*Model)
	log     logging.Logger
}

// NewBinder wires a binder to the host. install receives the freshly built
// model on bind and nil on unbind.
func NewBinder(dataDir string, st Storage, install func(*Model), log logging.Logger) *Binder {
	return &Binder{dataDir: dataDir, storage: st, install: install, log: log}
}

// Bind loads a's preferences and address book, degrading per file:
// a missing book is replaced by the sample book (and noted in prefs), a
// corrupt book by an empty one; corrupt or missing prefs fall back to
// defaults. Preferences are re-persisted to normalize the on-disk schema;
// a failed preference write is logged and the bind proceeds with the
// loaded model — prefs are advisory and will be rewritten on the next
// login or save. Only an unreadable filesystem makes Bind fail, in which
// case nothing is installed.
func (b *Binder) Bind(ctx context.Context, a account.Account) error {
	bookPath := filepath.Join(b.dataDir, a.UserID+".addressbook.json")
	prefsPath := filepath.Join(b.dataDir, a.UserID+".prefs.json")

	p, err := b.loadPrefs(ctx, prefsPath)
	if err != nil {
		return err
	}

	bk, err := b.loadBook(ctx, bookPath, p)
	if err != nil {
		return err
	}

	// Rewrite prefs so a missing file appears and stale schemas are upgraded.
	if err := b.storage.WritePrefs(prefsPath, p); err != nil {
		b.log.Warn(ctx, "failed to save preference file", "path", prefsPath, "error", err)
	}

	m := &Model{
		UserID:    a.UserID,
		Book:      bk,
		Prefs:     p,
		bookPath:  bookPath,
		prefsPath: prefsPath,
		storage:   b.storage,
	}
	b.install(m)
	b.log.Info(ctx, "bound user data", "user_id", a.UserID, "path", bookPath)
	return nil
}

// Unbind releases the installed model.
func (b *Binder) Unbind(ctx context.Context) {
	b.install(nil)
	b.log.Debug(ctx, "unbound user data")
}

func (b *Binder) loadPrefs(ctx context.Context, path string) (*prefs.Prefs, error) {
	p, err := b.storage.ReadPrefs(path)
	if err != nil {
		var corrupt *storage.CorruptDataError
		if !errors.As(err, &corrupt) {
			return nil, fmt.Errorf("read prefs: %w", err)
		}
		b.log.Warn(ctx, "preference file could not be loaded, using defaults", "path", path, "error", err)
		return prefs.Default(), nil
	}
	if p == nil {
		b.log.Info(ctx, "creating new preference file", "path", path)
		return prefs.Default(), nil
	}
	return p, nil
}

func (b *Binder) loadBook(ctx context.Context, path string, p *prefs.Prefs) (*book.AddressBook, error) {
	bk, err := b.storage.ReadAddressBook(path)
	if err != nil {
		var corrupt *storage.CorruptDataError
		if !errors.As(err, &corrupt) {
			return nil, fmt.Errorf("read address book: %w", err)
		}
		b.log.Warn(ctx, "address book could not be loaded, starting empty", "path", path, "error", err)
		return book.New(), nil
	}
	if bk == nil {
		b.log.Info(ctx, "no saved address book, seeding sample data", "path", path)
		p.IsSample = true
		return book.Sample(), nil
	}
	p.BookFilePath = path
	return bk, nil
}
