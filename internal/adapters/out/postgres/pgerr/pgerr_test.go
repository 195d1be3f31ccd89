package pgerr

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"cafedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate_Nil_ReturnsNil(t *testing.T) {
	assert.NoError(t, Translate("save cart", nil))
}

func TestTranslate_SerializationFailure_BecomesConflict(t *testing.T) {
	err := Translate("update order", errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"))
	assert.ErrorIs(t, err, errs.ErrTransactionConflict)
}

func TestTranslate_UniqueViolation_BecomesConflict(t *testing.T) {
	err := Translate("add order", errors.New(`ERROR: duplicate key value violates unique constraint "orders_pkey" (SQLSTATE 23505)`))
	assert.ErrorIs(t, err, errs.ErrTransactionConflict)
}

func TestTranslate_DuplicatedKeySentinel_BecomesConflict(t *testing.T) {
	err := Translate("add courier", gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, err, errs.ErrTransactionConflict)
}

func TestTranslate_ConnectivityFailures_BecomeRemoteUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"deadline exceeded", context.DeadlineExceeded},
		{"connection done", sql.ErrConnDone},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")},
		{"pool closed", errors.New("sql: database is closed")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Translate("get cart", tt.err), errs.ErrRemoteUnavailable)
		})
	}
}

func TestTranslate_UnknownError_PassesThrough(t *testing.T) {
	cause := errors.New("syntax error at or near")
	assert.ErrorIs(t, Translate("get cart", cause), cause)
}
