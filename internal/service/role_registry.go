package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Kravtmk/whoami-app/internal/apperror"
	"github.com/Kravtmk/whoami-app/internal/model"
	"github.com/Kravtmk/whoami-app/internal/repository"
)

// RoleRegistry owns the in-memory role list. It is loaded once and every
// mutation is persisted before the new list becomes visible.
type RoleRegistry struct {
	mu    sync.RWMutex
	store repository.RoleStore
	roles []model.Role
}

// NewRoleRegistry loads the registry from store, falling back to seed when
// nothing was persisted yet.
func NewRoleRegistry(ctx context.Context, store repository.RoleStore, seed []model.Role) (*RoleRegistry, error) {
	roles, found, err := store.LoadRoles(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		roles = slices.Clone(seed)
		slog.Default().Info("role registry not persisted yet, using seed", "roles", len(roles))
	}
	if roles == nil {
		roles = []model.Role{}
	}
	return &RoleRegistry{store: store, roles: roles}, nil
}

func (r *RoleRegistry) List(ctx context.Context) []model.Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.roles)
}

func (r *RoleRegistry) Add(ctx context.Context, role model.Role) (model.Role, error) {
	if err := validateStruct(role); err != nil {
		return model.Role{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(role.ID) >= 0 {
		return model.Role{}, fmt.Errorf("%w: id %d", apperror.ErrRoleConflict, role.ID)
	}
	next := append(slices.Clone(r.roles), role)
	if err := r.store.SaveRoles(ctx, next); err != nil {
		slog.Default().Error("failed to persist role registry", "op", "add", "id", role.ID, "err", err)
		return model.Role{}, err
	}
	r.roles = next
	return role, nil
}

func (r *RoleRegistry) Remove(ctx context.Context, id int) (model.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return model.Role{}, fmt.Errorf("%w: id %d", apperror.ErrRoleNotFound, id)
	}
	removed := r.roles[idx]
	next := slices.Delete(slices.Clone(r.roles), idx, idx+1)
	if err := r.store.SaveRoles(ctx, next); err != nil {
		slog.Default().Error("failed to persist role registry", "op", "remove", "id", id, "err", err)
		return model.Role{}, err
	}
	r.roles = next
	return removed, nil
}

func (r *RoleRegistry) indexOf(id int) int {
	return slices.IndexFunc(r.roles, func(role model.Role) bool { return role.ID == id })
}
