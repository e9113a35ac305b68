// Package admin owns the single admin identity of each rule table.
//
// Every rule table has exactly one admin per deployment. The admin is held in
// a Store and consulted through an Authority, so tests and multi-tenant
// deployments can inject their own instead of relying on process globals.
// Authority methods are meant to run inside the owning service's transaction
// so that the admin check and the guarded write form one atomic unit.
package admin

import (
	"context"
	"errors"
	"fmt"

	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	"benefitd/pkg/platform/sentinel"
)

// Scope names the rule table an admin governs.
type Scope string

const (
	ScopeSubsidy   Scope = "subsidy"
	ScopeRecipient Scope = "recipient"
	ScopeUsage     Scope = "usage"
)

// Scopes lists every known scope.
var Scopes = []Scope{ScopeSubsidy, ScopeRecipient, ScopeUsage}

// ParseScope validates a scope name.
func ParseScope(s string) (Scope, error) {
	for _, scope := range Scopes {
		if string(scope) == s {
			return scope, nil
		}
	}
	return "", dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("unknown admin scope %q", s))
}

// Store persists the admin of each scope.
type Store interface {
	// Find returns sentinel.ErrNotFound when the scope has no admin yet.
	Find(ctx context.Context, scope Scope) (domain.Principal, error)
	Save(ctx context.Context, scope Scope, admin domain.Principal) error
	// Seed stores admin only if the scope has none, so a restart never
	// undoes a transfer.
	Seed(ctx context.Context, scope Scope, admin domain.Principal) error
}

// Authority guards one scope.
type Authority struct {
	scope Scope
	store Store
}

func NewAuthority(scope Scope, store Store) (*Authority, error) {
	if store == nil {
		return nil, errors.New("admin store is required")
	}
	if _, err := ParseScope(string(scope)); err != nil {
		return nil, err
	}
	return &Authority{scope: scope, store: store}, nil
}

// Bootstrap seeds the initial admin for the scope.
func (a *Authority) Bootstrap(ctx context.Context, initial domain.Principal) error {
	if initial.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "initial admin is required")
	}
	if err := a.store.Seed(ctx, a.scope, initial); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed admin")
	}
	return nil
}

func (a *Authority) Scope() Scope {
	return a.scope
}

// Current returns the admin of the scope.
func (a *Authority) Current(ctx context.Context) (domain.Principal, error) {
	current, err := a.store.Find(ctx, a.scope)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeInternal, "admin not configured")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load admin")
	}
	return current, nil
}

// Require fails with CodeForbidden unless caller is the current admin.
func (a *Authority) Require(ctx context.Context, caller domain.Principal) error {
	current, err := a.Current(ctx)
	if err != nil {
		return err
	}
	if caller.IsNil() || caller != current {
		return dErrors.New(dErrors.CodeForbidden, "caller is not the admin")
	}
	return nil
}

// Transfer hands the scope to next. Only the current admin may call it.
func (a *Authority) Transfer(ctx context.Context, caller, next domain.Principal) error {
	if err := a.Require(ctx, caller); err != nil {
		return err
	}
	if next.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "new admin is required")
	}
	if err := a.store.Save(ctx, a.scope, next); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save admin")
	}
	return nil
}
