// Copyright Cartesi and individual authors (see AUTHORS)
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Code in the shape mockgen would produce for the Hasher interface in
// hasher.go.
// Hand-maintained here since there is no go:generate step wired into this
// module; kept in its own file so it is easy to regenerate later.

package hashers

import (
	"reflect"

	"github.com/golang/mock/gomock"
)

// MockHasher is a mock of the Hasher interface, used to assert the exact
// Reset/Write/Sum call sequence callers are expected to follow.
type MockHasher struct {
	ctrl     *gomock.Controller
	recorder *MockHasherMockRecorder
}

// MockHasherMockRecorder is the recorder for MockHasher.
type MockHasherMockRecorder struct {
	mock *MockHasher
}

// NewMockHasher creates a new mock instance.
func NewMockHasher(ctrl *gomock.Controller) *MockHasher {
	mock := &MockHasher{ctrl: ctrl}
	mock.recorder = &MockHasherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHasher) EXPECT() *MockHasherMockRecorder {
	return m.recorder
}

// Reset mocks base method.
func (m *MockHasher) Reset() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Reset")
}

// Reset indicates an expected call of Reset.
func (mr *MockHasherMockRecorder) Reset() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reset", reflect.TypeOf((*MockHasher)(nil).Reset))
}

// Write mocks base method.
func (m *MockHasher) Write(data []byte) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Write", data)
}

// Write indicates an expected call of Write.
func (mr *MockHasherMockRecorder) Write(data interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Write", reflect.TypeOf((*MockHasher)(nil).Write), data)
}

// Sum mocks base method.
func (m *MockHasher) Sum() Hash {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sum")
	ret0, _ := ret[0].(Hash)
	return ret0
}

// Sum indicates an expected call of Sum.
func (mr *MockHasherMockRecorder) Sum() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sum", reflect.TypeOf((*MockHasher)(nil).Sum))
}
