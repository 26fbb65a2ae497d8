//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"commerce-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC)
	id := uuid.New()

	ks, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.Equal(t, at, ks.CreatedAt)
	assert.Equal(t, id, ks.ID)

	for _, bad := range []string{
		"",
		"%%%",
		base64.URLEncoding.EncodeToString([]byte("v0:1-" + id.String())),
		base64.URLEncoding.EncodeToString([]byte("v1:abc-" + id.String())),
		base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid")),
	} {
		_, err := queries.DecodeAfterCursor(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
