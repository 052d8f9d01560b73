package pagination_test

import (
	"testing"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 1, 10, 14, 22, 31, 123456789, time.UTC)

	token := pagination.EncodeToken(date, createdAt)
	gotDate, gotCreatedAt, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, date.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreatedAt))
}

func TestDecodeToken_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"not base64", "!!not-base64!!"},
		{"no separator", "MjAyNS0wMS0xMA=="}, // base64 of "2025-01-10"
		{"garbage dates", "Zm9vfGJhcg=="},    // base64 of "foo|bar"
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tc.token)
			assert.Error(t, err)
		})
	}
}
