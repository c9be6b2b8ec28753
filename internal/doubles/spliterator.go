// Package doubles holds test doubles.
//
// MockSpliterator is hand-written in the layout of mockgen output.
package doubles

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	spliterkit "go.llib.dev/streamkit/pkg/spliterkit"
)

// MockSpliterator is a mock of Spliterator interface.
type MockSpliterator[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockSpliteratorMockRecorder[T]
}

// MockSpliteratorMockRecorder is the mock recorder for MockSpliterator.
type MockSpliteratorMockRecorder[T any] struct {
	mock *MockSpliterator[T]
}

// NewMockSpliterator creates a new mock instance.
func NewMockSpliterator[T any](ctrl *gomock.Controller) *MockSpliterator[T] {
	mock := &MockSpliterator[T]{ctrl: ctrl}
	mock.recorder = &MockSpliteratorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSpliterator[T]) EXPECT() *MockSpliteratorMockRecorder[T] {
	return m.recorder
}

// Characteristics mocks base method.
func (m *MockSpliterator[T]) Characteristics() spliterkit.Characteristics {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Characteristics")
	ret0, _ := ret[0].(spliterkit.Characteristics)
	return ret0
}

// Characteristics indicates an expected call of Characteristics.
func (mr *MockSpliteratorMockRecorder[T]) Characteristics() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Characteristics", reflect.TypeOf((*MockSpliterator[T])(nil).Characteristics))
}

// ExactSize mocks base method.
func (m *MockSpliterator[T]) ExactSize() (int, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExactSize")
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// ExactSize indicates an expected call of ExactSize.
func (mr *MockSpliteratorMockRecorder[T]) ExactSize() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExactSize", reflect.TypeOf((*MockSpliterator[T])(nil).ExactSize))
}

// TryAdvance mocks base method.
func (m *MockSpliterator[T]) TryAdvance(arg0 func(T)) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TryAdvance", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// TryAdvance indicates an expected call of TryAdvance.
func (mr *MockSpliteratorMockRecorder[T]) TryAdvance(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TryAdvance", reflect.TypeOf((*MockSpliterator[T])(nil).TryAdvance), arg0)
}

// TrySplit mocks base method.
func (m *MockSpliterator[T]) TrySplit() (spliterkit.Spliterator[T], bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TrySplit")
	ret0, _ := ret[0].(spliterkit.Spliterator[T])
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// TrySplit indicates an expected call of TrySplit.
func (mr *MockSpliteratorMockRecorder[T]) TrySplit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TrySplit", reflect.TypeOf((*MockSpliterator[T])(nil).TrySplit))
}
