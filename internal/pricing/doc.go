// Package pricing aggregates price lists.
//
// A price list is an ordered slice of integer amounts. Non-negative amounts
// are implied by the domain but never enforced here.
package pricing
