// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xlistener

import (
	"net"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockAddr struct {
	mock.Mock
}

func (m *mockAddr) Network() string {
	return m.Called().String(0)
}

func (m *mockAddr) String() string {
	return m.Called().String(0)
}

type mockConn struct {
	mock.Mock
}

func (m *mockConn) Read(b []byte) (int, error) {
	arguments := m.Called(b)
	return arguments.Int(0), arguments.Error(1)
}

func (m *mockConn) Write(b []byte) (int, error) {
	arguments := m.Called(b)
	return arguments.Int(0), arguments.Error(1)
}

func (m *mockConn) Close() error {
	return m.Called().Error(0)
}

func (m *mockConn) LocalAddr() net.Addr {
	return m.Called().Get(0).(net.Addr)
}

func (m *mockConn) RemoteAddr() net.Addr {
	return m.Called().Get(0).(net.Addr)
}

func (m *mockConn) SetDeadline(t time.Time) error {
	return m.Called(t).Error(0)
}

func (m *mockConn) SetReadDeadline(t time.Time) error {
	return m.Called(t).Error(0)
}

func (m *mockConn) SetWriteDeadline(t time.Time) error {
	return m.Called(t).Error(0)
}

type mockListener struct {
	mock.Mock
}

func (m *mockListener) Accept() (net.Conn, error) {
	arguments := m.Called()
	first, _ := arguments.Get(0).(net.Conn)
	return first, arguments.Error(1)
}

func (m *mockListener) Close() error {
	return m.Called().Error(0)
}

func (m *mockListener) Addr() net.Addr {
	return m.Called().Get(0).(net.Addr)
}
