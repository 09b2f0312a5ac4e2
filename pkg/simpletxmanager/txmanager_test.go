package simpletxmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubState управляет поведением stub-драйвера: первые failCommits
// коммитов завершаются serialization failure
type stubState struct {
	commits     int
	failCommits int
	failCode    pq.ErrorCode
}

type stubDriver struct {
	state *stubState
}

func (d stubDriver) Open(string) (driver.Conn, error) {
	return &stubConn{state: d.state}, nil
}

type stubConn struct {
	state *stubState
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (c *stubConn) Close() error                        { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return &stubTx{state: c.state}, nil
}

func (c *stubConn) BeginTx(_ context.Context, _ driver.TxOptions) (driver.Tx, error) {
	return &stubTx{state: c.state}, nil
}

type stubTx struct {
	state *stubState
}

func (t *stubTx) Commit() error {
	t.state.commits++
	if t.state.commits <= t.state.failCommits {
		return &pq.Error{Code: t.state.failCode}
	}
	return nil
}

func (t *stubTx) Rollback() error { return nil }

var stubSeq int

func newStubDB(t *testing.T, state *stubState) *sql.DB {
	t.Helper()

	stubSeq++
	name := fmt.Sprintf("simpletxmanager-stub-%d", stubSeq)
	sql.Register(name, stubDriver{state: state})

	db, err := sql.Open(name, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	state := &stubState{failCommits: 2, failCode: "40001"}
	m := NewTransactionManager(newStubDB(t, state))

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	// Два serialization failure на коммите, третья попытка проходит
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, state.commits)
}

func TestDoSerializable_RetriesDeadlock(t *testing.T) {
	state := &stubState{failCommits: 1, failCode: "40P01"}
	m := NewTransactionManager(newStubDB(t, state))

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDoSerializable_GivesUpAfterRetries(t *testing.T) {
	state := &stubState{failCommits: 10, failCode: "40001"}
	m := NewTransactionManager(newStubDB(t, state))

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, serializableRetries, calls)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestDoSerializable_BusinessErrorNotRetried(t *testing.T) {
	state := &stubState{}
	m := NewTransactionManager(newStubDB(t, state))

	sentinel := errors.New("slot already taken")

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return sentinel
	})

	// Ошибка бизнес-логики откатывает транзакцию без повторов
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, state.commits)
}
