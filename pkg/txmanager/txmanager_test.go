package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	pqSerialization := &pq.Error{Code: pq.ErrorCode(pgSerializationFailure)}

	t.Run("live pq error 40001", func(t *testing.T) {
		assert.True(t, IsSerializationFailure(pqSerialization))
	})

	t.Run("pq error wrapped with %w", func(t *testing.T) {
		err := fmt.Errorf("txmanager: commit transaction: %w", pqSerialization)
		assert.True(t, IsSerializationFailure(err))
	})

	t.Run("sentinel survives the repository wrap even when the pq error is stringified", func(t *testing.T) {
		err := fmt.Errorf("%w: Create - execute insert: %v", ErrSerializationFailure, pqSerialization)
		assert.True(t, IsSerializationFailure(err))
	})

	t.Run("stringified pq error without the sentinel is not retryable", func(t *testing.T) {
		storageErr := errors.New("storage.reservation: failed to execute query")
		err := fmt.Errorf("%w: Create - execute insert: %v", storageErr, pqSerialization)
		assert.False(t, IsSerializationFailure(err))
	})

	t.Run("other pq error codes", func(t *testing.T) {
		err := &pq.Error{Code: pq.ErrorCode("23P01")}
		assert.False(t, IsSerializationFailure(err))
	})

	t.Run("nil and plain errors", func(t *testing.T) {
		assert.False(t, IsSerializationFailure(nil))
		assert.False(t, IsSerializationFailure(errors.New("boom")))
	})
}
