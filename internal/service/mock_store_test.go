package service

import (
	"context"
	"errors"

	"github.com/Kravtmk/whoami-app/internal/model"
)

var (
	ctx          = context.Background()
	errStoreDown = errors.New("store is down")
)

type MockRoleStore struct {
	roles     []model.Role
	found     bool
	saves     int
	loadRoles func(ctx context.Context) ([]model.Role, bool, error)
	saveRoles func(ctx context.Context, roles []model.Role) error
}

func (m *MockRoleStore) LoadRoles(ctx context.Context) ([]model.Role, bool, error) {
	if m.loadRoles != nil {
		return m.loadRoles(ctx)
	}
	return m.roles, m.found, nil
}

func (m *MockRoleStore) SaveRoles(ctx context.Context, roles []model.Role) error {
	if m.saveRoles != nil {
		if err := m.saveRoles(ctx, roles); err != nil {
			return err
		}
	}
	m.saves++
	m.roles = append([]model.Role(nil), roles...)
	m.found = true
	return nil
}

type MockDayLogStore struct {
	logs       map[string]*model.DayLog
	saves      int
	saveDayLog func(ctx context.Context, log *model.DayLog) error
}

func NewMockDayLogStore() *MockDayLogStore {
	return &MockDayLogStore{logs: make(map[string]*model.DayLog)}
}

func (m *MockDayLogStore) GetDayLog(ctx context.Context, userID, day string) (*model.DayLog, bool, error) {
	log, ok := m.logs[model.DayKey(userID, day)]
	if !ok {
		return nil, false, nil
	}
	return log.Clone(), true, nil
}

func (m *MockDayLogStore) SaveDayLog(ctx context.Context, log *model.DayLog) error {
	if m.saveDayLog != nil {
		if err := m.saveDayLog(ctx, log); err != nil {
			return err
		}
	}
	m.saves++
	m.logs[log.Key()] = log.Clone()
	return nil
}
