package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("Duplicate key detection", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)

		assert.True(t, classifier.IsDuplicateKeyError(err))
		assert.True(t, classifier.IsDuplicateKeyOn(err, "email"))
		assert.False(t, classifier.IsDuplicateKeyOn(err, "username"))
		assert.True(t, classifier.IsConstraintError(err))
	})

	t.Run("Transient errors", func(t *testing.T) {
		for _, message := range []string{
			"read tcp 10.0.0.1:52312: connection reset by peer",
			"dial tcp 127.0.0.1:5432: i/o timeout",
			"unexpected EOF",
			"write: broken pipe",
		} {
			assert.True(t, classifier.IsTransientError(errors.New(message)), message)
		}

		assert.False(t, classifier.IsTransientError(errors.New("syntax error at or near")))
	})

	t.Run("Connection errors include transient ones", func(t *testing.T) {
		assert.True(t, classifier.IsConnectionError(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")))
		assert.True(t, classifier.IsConnectionError(errors.New("unexpected EOF")))

		// A rejected login or an aborted transaction is not a reason to retry
		assert.False(t, classifier.IsConnectionError(errors.New(`password authentication failed for user "ledger"`)))
		assert.False(t, classifier.IsConnectionError(errors.New("current transaction is aborted, commands ignored until end of transaction block (SQLSTATE 25P02)")))
	})

	t.Run("Constraint errors", func(t *testing.T) {
		assert.True(t, classifier.IsConstraintError(errors.New(`insert violates foreign key constraint "fk_family_members_family"`)))
		assert.False(t, classifier.IsConstraintError(errors.New("unexpected EOF")))
	})

	t.Run("Nil error matches nothing", func(t *testing.T) {
		assert.False(t, classifier.IsDuplicateKeyError(nil))
		assert.False(t, classifier.IsTransientError(nil))
		assert.False(t, classifier.IsConnectionError(nil))
		assert.False(t, classifier.IsConstraintError(nil))
	})
}
