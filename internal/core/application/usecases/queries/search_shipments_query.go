package queries

import (
	"errors"
	"strings"

	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrSearchShipmentsQueryIsNotConstructed = errors.New(
	"SearchShipmentsQuery must be created via NewSearchShipmentsQuery constructor",
)

// SearchShipmentsQuery finds shipments by a substring of the tracking id,
// receiver name or receiver phone, within the actor's read scope.
type SearchShipmentsQuery struct {
	actor principal.Principal
	term  string

	guard guard.ConstructorGuard
}

// NewSearchShipmentsQuery creates a search query. The term is trimmed and
// must be non-empty.
func NewSearchShipmentsQuery(actor principal.Principal, term string) (SearchShipmentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return SearchShipmentsQuery{}, err
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchShipmentsQuery{}, errs.NewValueIsRequiredError("term")
	}

	return SearchShipmentsQuery{
		actor: actor,
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrSearchShipmentsQueryIsNotConstructed)
}

// Actor returns the requesting principal.
func (q SearchShipmentsQuery) Actor() principal.Principal {
	return q.actor
}

// Term returns the trimmed search term.
func (q SearchShipmentsQuery) Term() string {
	return q.term
}
