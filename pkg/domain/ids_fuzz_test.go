//go:build go1.18

package domain

import (
	"testing"
)

// FuzzParseOrderID checks that token parsing never panics on arbitrary input
// and that every accepted token round-trips to the identical token.
func FuzzParseOrderID(f *testing.F) {
	f.Add("ord-20230515113015-123")
	f.Add("ord-2023051511301-123")
	f.Add("ord-abcd0515113015-123")
	f.Add("badformat")
	f.Add("ord-20230515113015-xyz")
	f.Add("")
	f.Add("ord--")
	f.Add(string([]byte{0x00, 0x2d, 0x2d}))

	f.Fuzz(func(t *testing.T, token string) {
		id, err := ParseOrderID(token)
		if err != nil {
			return
		}

		// Accepted tokens must re-encode losslessly.
		reparsed, err2 := ParseOrderID(id.String())
		if err2 != nil {
			t.Fatalf("accepted token %q failed round-trip: %v", token, err2)
		}
		if reparsed.SeqNo != id.SeqNo || !reparsed.CreatedAt.Equal(id.CreatedAt) {
			t.Fatalf("round-trip changed identity: %q -> %q", token, reparsed.String())
		}
		if id.SeqNo < 0 {
			t.Fatalf("parsed negative sequence from %q", token)
		}
	})
}
