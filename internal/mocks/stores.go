// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/noticeboard-server/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func NewUserStore(t testingT) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

// NoticeStore is a mock of model.NoticeStore.
type NoticeStore struct {
	mock.Mock
}

func NewNoticeStore(t testingT) *NoticeStore {
	m := &NoticeStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NoticeStore) Create(ctx context.Context, notice model.Notice) (model.Notice, error) {
	args := m.Called(ctx, notice)
	return args.Get(0).(model.Notice), args.Error(1)
}

func (m *NoticeStore) List(ctx context.Context, category string) ([]model.NoticeWithOwner, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NoticeWithOwner), args.Error(1)
}

func (m *NoticeStore) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, params model.UpdateNoticeParams) error {
	args := m.Called(ctx, id, ownerID, params)
	return args.Error(0)
}

func (m *NoticeStore) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
