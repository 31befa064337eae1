package postgres

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/database"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ledgerCreatedAt = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	ledgerOrder = domain.Order{
		ID:      "5e0c7d1a-6c1f-4a53-9a38-2f7f1c1d0b01",
		UserID:  "0b9c5f8e-2f5e-4c55-8f0e-3b7f1f0b6a11",
		Freight: 2050,
		Total:   17020,
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: 5990},
			{ProductID: 2, Quantity: 1, UnitPrice: 2990},
		},
		PaymentMethod:      domain.PaymentMethodCreditCard,
		ChargeID:           "ch_1",
		Status:             domain.OrderStatusConfirmed,
		IdempotencyKey:     "key-1",
		RequestFingerprint: "fp",
		CreatedAt:          ledgerCreatedAt,
	}

	orderColumnNames = []string{"id", "user_id", "freight_cents", "total_cents", "payment_method", "charge_id",
		"status", "idempotency_key", "request_fingerprint", "created_at"}
)

func newTestLedger(mock pgxmock.PgxConnIface) *OrderLedger {
	return NewOrderLedger(mock, database.NewDelegateTxManager(mock, slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func expectInsertOrder(mock pgxmock.PgxConnIface) *pgxmock.ExpectedExec {
	o := ledgerOrder
	return mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID, o.UserID, int64(o.Freight), int64(o.Total), string(o.PaymentMethod), o.ChargeID,
			string(o.Status), o.IdempotencyKey, o.RequestFingerprint, o.CreatedAt)
}

var orderIDCollision = &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "orders_pkey"}

func TestOrderLedger_CommitOrder(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name: "order and items committed",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectInsertOrder(mock).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT INTO order_items").
					WithArgs(ledgerOrder.ID, int64(1), int64(2), int64(5990)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT INTO order_items").
					WithArgs(ledgerOrder.ID, int64(2), int64(1), int64(2990)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
		},
		{
			name: "duplicate idempotency key",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectInsertOrder(mock).WillReturnError(&pgconn.PgError{
					Code:           pgerrcode.UniqueViolation,
					ConstraintName: idempotencyConstraint,
				})
				mock.ExpectRollback()
			},
			expectedErr: &domain.DuplicateOrderError{},
		},
		{
			name: "primary key collision is not a replay",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectInsertOrder(mock).WillReturnError(orderIDCollision)
				mock.ExpectRollback()
			},
			expectedErr: orderIDCollision,
		},
		{
			name: "item insert fails rolls back",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectInsertOrder(mock).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT INTO order_items").
					WithArgs(ledgerOrder.ID, int64(1), int64(2), int64(5990)).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
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

			err = newTestLedger(mock).CommitOrder(t.Context(), ledgerOrder)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				if tt.expectedErr == orderIDCollision {
					assert.NotErrorIs(t, err, &domain.DuplicateOrderError{})
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderLedger_FindByIdempotencyKey(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedOrder domain.Order
		expectedFound bool
		expectedErr   error
	}

	o := ledgerOrder

	tests := []testCase{
		{
			name: "order found with items",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(o.UserID, "key-1").
					WillReturnRows(pgxmock.NewRows(orderColumnNames).AddRow(
						o.ID, o.UserID, int64(2050), int64(17020), "credit_card", "ch_1", "confirmed",
						"key-1", "fp", ledgerCreatedAt))
				mock.ExpectQuery("SELECT product_id, quantity, unit_price_cents FROM order_items").
					WithArgs(o.ID).
					WillReturnRows(pgxmock.NewRows([]string{"product_id", "quantity", "unit_price_cents"}).
						AddRow(int64(1), int64(2), int64(5990)).
						AddRow(int64(2), int64(1), int64(2990)))
			},
			expectedOrder: ledgerOrder,
			expectedFound: true,
		},
		{
			name: "no order under key",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(o.UserID, "key-1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(o.UserID, "key-1").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
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

			order, found, err := newTestLedger(mock).FindByIdempotencyKey(t.Context(), o.UserID, "key-1")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedFound, found)
				assert.Equal(t, tt.expectedOrder, order)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderLedger_FindOrder(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery("SELECT").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT").
		WithArgs(ledgerOrder.ID).
		WillReturnRows(pgxmock.NewRows(orderColumnNames).AddRow(
			ledgerOrder.ID, ledgerOrder.UserID, int64(0), int64(5990), "pix", "ch_2", "confirmed",
			"", "fp", ledgerCreatedAt))
	mock.ExpectQuery("SELECT product_id").
		WithArgs(ledgerOrder.ID).
		WillReturnError(assert.AnError)

	ledger := newTestLedger(mock)

	_, found, err := ledger.FindOrder(t.Context(), "missing")
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = ledger.FindOrder(t.Context(), ledgerOrder.ID)
	assert.ErrorIs(t, err, assert.AnError)

	assert.NoError(t, mock.ExpectationsWereMet())
}
