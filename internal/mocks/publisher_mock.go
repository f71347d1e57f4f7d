package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"superteam-bot/internal/service"
)

// MockPublisher is a mock type for the Publisher type
type MockPublisher struct {
	mock.Mock
}

// Publish provides a mock function with given fields: ctx, content
func (_m *MockPublisher) Publish(ctx context.Context, content string) (string, error) {
	ret := _m.Called(ctx, content)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, content)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, content)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// NewMockPublisher creates a new instance of MockPublisher. It also registers a testing interface on the mock.
func NewMockPublisher(t interface {
	mock.TestingT
	Helper()
}) *MockPublisher {
	m := &MockPublisher{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.Publisher = (*MockPublisher)(nil)
