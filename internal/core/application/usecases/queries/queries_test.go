package queries_test

import (
	"testing"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func admin() principal.Principal {
	p, _ := principal.New(kernel.NewUUID(), principal.RoleAdmin, "Ops Admin", "")
	return p
}

func agent() principal.Principal {
	p, _ := principal.New(kernel.NewUUID(), principal.RoleAgent, "Field Agent", "")
	return p
}

func customer() principal.Principal {
	p, _ := principal.New(kernel.NewUUID(), principal.RoleCustomer, "Jane Doe", "5550001111")
	return p
}

func TestQueryConstructorsRejectZeroActors(t *testing.T) {
	var zero principal.Principal

	_, err := queries.NewGetShipmentQuery(kernel.NewUUID(), zero)
	require.Error(t, err)

	_, err = queries.NewListShipmentsQuery(zero, nil, 0, 0)
	require.Error(t, err)

	_, err = queries.NewSearchShipmentsQuery(zero, "CRR")
	require.Error(t, err)
}

func TestUnconstructedQueriesFailValidation(t *testing.T) {
	require.ErrorIs(t, queries.GetShipmentQuery{}.Validate(), queries.ErrGetShipmentQueryIsNotConstructed)
	require.ErrorIs(t, queries.ListShipmentsQuery{}.Validate(), queries.ErrListShipmentsQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetLogsQuery{}.Validate(), queries.ErrGetLogsQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetStatsQuery{}.Validate(), queries.ErrGetStatsQueryIsNotConstructed)
}

func TestNewSearchShipmentsQuery_TrimsTerm(t *testing.T) {
	q, err := queries.NewSearchShipmentsQuery(admin(), "  CRR-42  ")
	require.NoError(t, err)
	assert.Equal(t, "CRR-42", q.Term())

	_, err = queries.NewSearchShipmentsQuery(admin(), "   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListShipmentsQuery_DefaultsLimit(t *testing.T) {
	q, err := queries.NewListShipmentsQuery(admin(), nil, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultListLimit, q.Limit())
	assert.Equal(t, 0, q.Offset())
}

func TestNewGetRecentShipmentsQuery_ClampsLimit(t *testing.T) {
	q, err := queries.NewGetRecentShipmentsQuery(admin(), 0)
	require.NoError(t, err)
	assert.Equal(t, 10, q.Limit())

	q, err = queries.NewGetRecentShipmentsQuery(admin(), 500)
	require.NoError(t, err)
	assert.Equal(t, queries.MaxRecentShipments, q.Limit())
}

func TestNewGetCustomerStatsQuery_CustomerQueriesSelf(t *testing.T) {
	actor := customer()
	q, err := queries.NewGetCustomerStatsQuery(actor, "Someone Else", "9999999999")
	require.NoError(t, err)
	assert.Equal(t, actor.Name(), q.Name())
	assert.Equal(t, actor.Phone(), q.Phone())
}

func TestAdminOnlyQueriesRejectOtherRoles(t *testing.T) {
	ctx := t.Context()

	logsQuery, err := queries.NewGetLogsQuery(agent(), nil)
	require.NoError(t, err)
	_, err = queries.NewGetLogsQueryHandler(nil).Handle(ctx, logsQuery)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)

	statsQuery, err := queries.NewGetStatsQuery(customer())
	require.NoError(t, err)
	_, err = queries.NewGetStatsQueryHandler(nil).Handle(ctx, statsQuery)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)

	recentQuery, err := queries.NewGetRecentShipmentsQuery(agent(), 5)
	require.NoError(t, err)
	_, err = queries.NewGetRecentShipmentsQueryHandler(nil).Handle(ctx, recentQuery)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)

	agentsQuery, err := queries.NewListAgentsQuery(customer())
	require.NoError(t, err)
	_, err = queries.NewListAgentsQueryHandler(nil).Handle(ctx, agentsQuery)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestGetAgentStatsAuthorization(t *testing.T) {
	ctx := t.Context()

	// An agent asking about a different agent is rejected before any SQL runs.
	other := kernel.NewUUID()
	q, err := queries.NewGetAgentStatsQuery(agent(), other)
	require.NoError(t, err)
	_, err = queries.NewGetAgentStatsQueryHandler(nil).Handle(ctx, q)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}
