// Package services contains stateless domain services that do not belong
// to a single aggregate: the role-based access policy, the pricing
// calculator, and the tracking-id/invoice-number generator. All are pure
// computation; I/O lives in the adapters.
package services
