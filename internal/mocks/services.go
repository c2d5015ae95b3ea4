package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/noticeboard-server/internal/model"
)

// AuthService is a mock of the auth handler's service dependency.
type AuthService struct {
	mock.Mock
}

func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthService) Register(ctx context.Context, params model.RegisterParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

// NoticeService is a mock of the notice handler's service dependency.
type NoticeService struct {
	mock.Mock
}

func NewNoticeService(t testingT) *NoticeService {
	m := &NoticeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NoticeService) CreateNotice(ctx context.Context, params model.CreateNoticeParams) (model.Notice, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Notice), args.Error(1)
}

func (m *NoticeService) GetNotices(ctx context.Context, category string) ([]model.NoticeWithOwner, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NoticeWithOwner), args.Error(1)
}

func (m *NoticeService) UpdateNotice(ctx context.Context, userID, noticeID uuid.UUID, params model.UpdateNoticeParams) error {
	args := m.Called(ctx, userID, noticeID, params)
	return args.Error(0)
}

func (m *NoticeService) DeleteNotice(ctx context.Context, userID, noticeID uuid.UUID) error {
	args := m.Called(ctx, userID, noticeID)
	return args.Error(0)
}
