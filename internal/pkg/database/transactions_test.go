package database

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markerError struct{}

func (markerError) Error() string { return "marker" }

func TestDelegateTxManager_WithinTransaction(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		isoLevel pgx.TxIsoLevel
		txFn     TxFunc

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
		wantErr     bool
	}

	tests := []testCase{
		{
			name: "commit on success",
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				_, err := executor.Exec(ctx, "UPDATE orders SET status = $1", "confirmed")
				return err
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec("UPDATE orders").WithArgs("confirmed").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
		},
		{
			name: "rollback when function fails",
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				return markerError{}
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectRollback()
			},
			expectedErr: markerError{},
			wantErr:     true,
		},
		{
			name:     "serializable when requested",
			isoLevel: pgx.Serializable,
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				return nil
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
		},
		{
			name: "rollback failure is only logged",
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				return markerError{}
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectRollback().WillReturnError(assert.AnError)
			},
			expectedErr: markerError{},
			wantErr:     true,
		},
		{
			name: "begin fails",
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				return nil
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
			wantErr:     true,
		},
		{
			name: "commit fails",
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				return nil
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectCommit().WillReturnError(assert.AnError)
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedErr: assert.AnError,
			wantErr:     true,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			manager := NewDelegateTxManager(mock, slog.New(slog.NewTextHandler(io.Discard, nil)))
			if tt.isoLevel != "" {
				manager.WithIsoLevel(tt.isoLevel)
			}
			err = manager.WithinTransaction(t.Context(), tt.txFn)

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
