package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"superteam-bot/internal/service"
)

// MockFollowerSource is a mock type for the FollowerSource type
type MockFollowerSource struct {
	mock.Mock
}

// Followers provides a mock function with given fields: ctx, limit
func (_m *MockFollowerSource) Followers(ctx context.Context, limit int) ([]string, error) {
	ret := _m.Called(ctx, limit)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, int) []string); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// NewMockFollowerSource creates a new instance of MockFollowerSource. It also registers a testing interface on the mock.
func NewMockFollowerSource(t interface {
	mock.TestingT
	Helper()
}) *MockFollowerSource {
	m := &MockFollowerSource{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.FollowerSource = (*MockFollowerSource)(nil)
