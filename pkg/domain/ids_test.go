package domain

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "coffeeshop/pkg/errors"
)

func TestParseOrderID_ValidToken(t *testing.T) {
	id, err := ParseOrderID("ord-20230515113015-123")
	require.NoError(t, err)

	assert.Equal(t, int64(123), id.SeqNo)
	assert.Equal(t, OrderAbbr, id.Abbr)
	assert.True(t, id.CreatedAt.Equal(time.Date(2023, 5, 15, 11, 30, 15, 0, time.UTC)))
}

func TestParseOrderID_MalformedTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"13-digit datetime block", "ord-2023051511301-123"},
		{"non-digit datetime block", "ord-abcd0515113015-123"},
		{"wrong field count", "badformat"},
		{"non-numeric sequence", "ord-20230515113015-xyz"},
		{"empty token", ""},
		{"too many fields", "ord-20230515113015-1-2"},
		{"signed sequence", "ord-20230515113015-+5"},
		{"impossible calendar date", "ord-20231340113015-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOrderID(tt.token)
			require.Error(t, err)
			assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeMalformedIdentity))
		})
	}
}

// TestOrderID_RoundTrip validates the codec law: decode(encode(s, t)) == (s, t)
// for any non-negative sequence and zero-subsecond timestamp.
func TestOrderID_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		seqNo     int64
		createdAt time.Time
	}{
		{"plain", 123, time.Date(2023, 5, 15, 11, 30, 15, 0, time.UTC)},
		{"zero sequence", 0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"epoch-second sequence", 1684150215, time.Date(2023, 5, 15, 11, 30, 15, 0, time.UTC)},
		{"non-UTC input normalized", 7, time.Date(2023, 5, 15, 13, 30, 15, 0, time.FixedZone("CEST", 2*3600))},
		{"subseconds truncated", 42, time.Date(2023, 5, 15, 11, 30, 15, 999999999, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewOrderID(tt.seqNo, tt.createdAt)
			parsed, err := ParseOrderID(id.String())
			require.NoError(t, err)

			assert.Equal(t, id.SeqNo, parsed.SeqNo)
			assert.True(t, parsed.CreatedAt.Equal(tt.createdAt.UTC().Truncate(time.Second)))
			assert.Equal(t, id.String(), parsed.String())
		})
	}
}

// Tokens with the same abbreviation sort lexicographically by creation time.
func TestOrderID_TokensSortByCreationTime(t *testing.T) {
	base := time.Date(2023, 5, 15, 11, 30, 15, 0, time.UTC)

	tokens := []string{
		NewOrderID(1, base.Add(48*time.Hour)).String(),
		NewOrderID(1, base).String(),
		NewOrderID(1, base.Add(time.Second)).String(),
	}
	sort.Strings(tokens)

	assert.Equal(t, NewOrderID(1, base).String(), tokens[0])
	assert.Equal(t, NewOrderID(1, base.Add(time.Second)).String(), tokens[1])
	assert.Equal(t, NewOrderID(1, base.Add(48*time.Hour)).String(), tokens[2])
}
