// Package kernel contains the shared value objects of the domain model:
// the UUID identity wrapper and the Phone number type. Both are immutable,
// validate themselves on construction, and treat their zero value as invalid.
package kernel
