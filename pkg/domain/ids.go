// Package domain holds the typed aggregate identities shared across the
// service. Identities encode to compact string tokens that are visible on the
// wire and in storage keys, so the format here is a public contract.
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	pkgerrors "coffeeshop/pkg/errors"
)

// timestampLayout is the separator-free datetime block inside a token. Fixed
// width keeps tokens lexicographically sortable by creation time within one
// abbreviation and trivially splittable on dashes.
const timestampLayout = "20060102150405"

// EntityID identifies an aggregate as <abbr>-<YYYYMMDDHHmmss>-<sequence>.
// Created once, immutable thereafter.
type EntityID struct {
	Abbr      string
	SeqNo     int64
	CreatedAt time.Time
}

// String encodes the identity into its token form. Sub-second precision is
// not representable; CreatedAt is truncated to whole seconds in UTC.
func (id EntityID) String() string {
	return fmt.Sprintf("%s-%s-%d", id.Abbr, id.CreatedAt.UTC().Format(timestampLayout), id.SeqNo)
}

// parseEntityID decodes a token into (SeqNo, CreatedAt), stamping the given
// abbreviation. The abbreviation field of the token itself is not trusted:
// each concrete identity type fixes its own tag.
func parseEntityID(abbr, token string) (EntityID, error) {
	fields := strings.Split(token, "-")
	if len(fields) != 3 {
		return EntityID{}, pkgerrors.Newf(pkgerrors.CodeMalformedIdentity, "token %q: want 3 dash-separated fields, got %d", token, len(fields))
	}

	datetime := fields[1]
	if len(datetime) != len(timestampLayout) {
		return EntityID{}, pkgerrors.Newf(pkgerrors.CodeMalformedIdentity, "token %q: datetime block must be %d digits", token, len(timestampLayout))
	}
	createdAt, err := time.Parse(timestampLayout, datetime)
	if err != nil {
		return EntityID{}, pkgerrors.Wrap(pkgerrors.CodeMalformedIdentity, fmt.Sprintf("token %q: invalid datetime block", token), err)
	}

	// ParseUint rejects sign prefixes, so the sequence is non-negative by
	// construction. 63 bits keeps it assignable to int64.
	seqNo, err := strconv.ParseUint(fields[2], 10, 63)
	if err != nil {
		return EntityID{}, pkgerrors.Wrap(pkgerrors.CodeMalformedIdentity, fmt.Sprintf("token %q: invalid sequence number", token), err)
	}

	return EntityID{Abbr: abbr, SeqNo: int64(seqNo), CreatedAt: createdAt}, nil
}

// OrderID is the order aggregate identity. Abbreviation is always "ord".
type OrderID struct {
	EntityID
}

// OrderAbbr tags order identity tokens.
const OrderAbbr = "ord"

// NewOrderID builds an order identity from a sequence number and creation
// instant. The instant is truncated to whole seconds so the identity survives
// an encode/decode round trip unchanged.
func NewOrderID(seqNo int64, createdAt time.Time) OrderID {
	return OrderID{EntityID{Abbr: OrderAbbr, SeqNo: seqNo, CreatedAt: createdAt.UTC().Truncate(time.Second)}}
}

// ParseOrderID decodes an order identity token. Fails with a
// malformed_identity coded error on any shape violation.
func ParseOrderID(token string) (OrderID, error) {
	id, err := parseEntityID(OrderAbbr, token)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{id}, nil
}
