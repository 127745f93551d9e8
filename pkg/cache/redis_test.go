package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

func TestNilStoreIsAlwaysMiss(t *testing.T) {
	store := NewStore(nil, "hr:offenses:")
	var dest map[string]string
	err := store.Get(context.Background(), "all", &dest)
	require.ErrorIs(t, err, appErrors.ErrCacheMiss)
	require.NoError(t, store.Set(context.Background(), "all", map[string]string{"a": "b"}, time.Minute))
	require.NoError(t, store.DeleteByPattern(context.Background(), "*"))
}

func TestStoreKeyNamespacing(t *testing.T) {
	require.Equal(t, "hr:offenses:all", NewStore(nil, "hr:offenses:").key("all"))
	require.Equal(t, "all", NewStore(nil, "").key("all"))
}
