// Package shipment contains the Shipment aggregate and its satellite types:
// the status state machine, the billing enums, the partial-update patch and
// the proof-of-delivery record. All mutation of a shipment's state goes
// through the aggregate's methods; the lifecycle handlers coordinate those
// mutations with authorization, pricing and audit logging.
package shipment
