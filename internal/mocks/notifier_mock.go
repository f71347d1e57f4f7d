package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"superteam-bot/internal/service"
)

// MockApprovalNotifier is a mock type for the ApprovalNotifier type
type MockApprovalNotifier struct {
	mock.Mock
}

// SendApprovalRequest provides a mock function with given fields: ctx, id, content
func (_m *MockApprovalNotifier) SendApprovalRequest(ctx context.Context, id, content string) error {
	ret := _m.Called(ctx, id, content)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, id, content)
	} else {
		err := ret.Error(0)
		if err != nil {
			r0 = err
		}
	}

	return r0
}

// NewMockApprovalNotifier creates a new instance of MockApprovalNotifier. It also registers a testing interface on the mock.
func NewMockApprovalNotifier(t interface {
	mock.TestingT
	Helper()
}) *MockApprovalNotifier {
	m := &MockApprovalNotifier{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.ApprovalNotifier = (*MockApprovalNotifier)(nil)
