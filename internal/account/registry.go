package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/abookhq/abook/internal/common"
	"github.com/abookhq/abook/internal/logging"
)

// Registry is the in-memory authoritative map of accounts, written through
// to a Store. After every successful mutation the map and the file agree.
//
// The registry is single-threaded by contract: all calls come from the
// application's command-dispatch goroutine.
type Registry struct {
	store Store
	log   logging.Logger

	byName map[string]Account
	order  []string // usernames in insertion order
}

func NewRegistry(store Store, log logging.Logger) *Registry {
	return &Registry{
		store:  store,
		log:    log,
		byName: make(map[string]Account),
	}
}

// Load hydrates the registry from the store, replacing any prior state.
// Corrupt lines are logged and skipped; on duplicate usernames the first
// record wins and the rest are dropped. If anything was skipped the file is
// rewritten so disk matches memory again.
func (r *Registry) Load(ctx context.Context) error {
	lines, err := r.store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	r.byName = make(map[string]Account, len(lines))
	r.order = r.order[:0]

	dirty := false
	for _, line := range lines {
		a, err := DecodeAccount(line)
		if err != nil {
			var corrupt *CorruptRecordError
			if errors.As(err, &corrupt) {
				r.log.Warn(ctx, "skipping corrupt account record", "reason", corrupt.Reason)
				dirty = true
				continue
			}
			return fmt.Errorf("load accounts: %w", err)
		}
		if _, exists := r.byName[a.Username]; exists {
			r.log.Warn(ctx, "dropping duplicate account record", "username", a.Username)
			dirty = true
			continue
		}
		r.byName[a.Username] = a
		r.order = append(r.order, a.Username)
	}

	if dirty {
		if err := r.persist(ctx); err != nil {
			return fmt.Errorf("rewrite accounts after cleanup: %w", err)
		}
	}
	return nil
}

// Add inserts a new account and persists the whole directory. Usernames are
// validated here so no record can be written that a later Load would drop.
// On a duplicate username it returns common.ErrDuplicateUsername and changes
// nothing. If the write fails the in-memory insertion is rolled back and the
// error is propagated, so memory never claims more than disk holds.
func (r *Registry) Add(ctx context.Context, a Account) error {
	if err := ValidateUsername(a.Username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if _, exists := r.byName[a.Username]; exists {
		return common.ErrDuplicateUsername
	}

	r.byName[a.Username] = a
	r.order = append(r.order, a.Username)

	if err := r.persist(ctx); err != nil {
		delete(r.byName, a.Username)
		r.order = r.order[:len(r.order)-1]
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}

// Authenticate looks up username and compares hashes in constant time.
// It returns common.ErrNotFound for an unknown username and
// common.ErrBadCredentials for a hash mismatch. The two are distinguished
// for logging only; user-facing code should collapse them.
func (r *Registry) Authenticate(ctx context.Context, username string, hash PasswordHash) (Account, error) {
	a, ok := r.byName[username]
	if !ok {
		return Account{}, common.ErrNotFound
	}
	if !a.Hash.Equal(hash) {
		return Account{}, common.ErrBadCredentials
	}
	return a, nil
}

// Snapshot returns all accounts in insertion order.
func (r *Registry) Snapshot() []Account {
	out := make([]Account, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

func (r *Registry) persist(ctx context.Context) error {
	lines := make([]string, 0, len(r.order))
	for _, a := range r.Snapshot() {
		lines = append(lines, EncodeAccount(a))
	}
	return r.store.WriteAll(ctx, lines)
}
