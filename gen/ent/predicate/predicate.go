// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Claim is the predicate function for claim builders.
type Claim func(*sql.Selector)

// ClaimEvidence is the predicate function for claimevidence builders.
type ClaimEvidence func(*sql.Selector)

// ClaimInvoice is the predicate function for claiminvoice builders.
type ClaimInvoice func(*sql.Selector)
