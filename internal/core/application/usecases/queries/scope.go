package queries

import (
	"courier/internal/core/domain/model/principal"
)

// shipmentScope builds the WHERE fragment restricting shipment rows to
// what the actor may read. Mirrors the access policy's read rules on the
// read-model side: agents see their assignments, customers see shipments
// they booked or where their phone or name matches a party.
func shipmentScope(actor principal.Principal) (string, []any) {
	switch actor.Role() {
	case principal.RoleAdmin:
		return "TRUE", nil
	case principal.RoleAgent:
		return "assigned_to = ?", []any{actor.ID().Bytes()}
	case principal.RoleCustomer:
		clause := "(booked_by = ? OR receiver_phone = ? OR sender_phone = ? OR sender_name = ? OR receiver_name = ?)"
		return clause, []any{
			actor.ID().Bytes(),
			actor.Phone(),
			actor.Phone(),
			actor.Name(),
			actor.Name(),
		}
	default:
		return "FALSE", nil
	}
}

// canReadShipmentRow applies the same read rules to an already fetched
// detail row.
func canReadShipmentRow(actor principal.Principal, row GetShipmentQueryResponse) bool {
	switch actor.Role() {
	case principal.RoleAdmin:
		return true
	case principal.RoleAgent:
		return row.AssignedTo != nil && row.AssignedTo.IsEqual(actor.ID())
	case principal.RoleCustomer:
		if row.BookedBy != nil && row.BookedBy.IsEqual(actor.ID()) {
			return true
		}
		if actor.Phone() != "" {
			if row.ReceiverPhone == actor.Phone() {
				return true
			}
			if row.SenderPhone != nil && *row.SenderPhone == actor.Phone() {
				return true
			}
		}
		if actor.Name() != "" && (row.SenderName == actor.Name() || row.ReceiverName == actor.Name()) {
			return true
		}
		return false
	default:
		return false
	}
}
