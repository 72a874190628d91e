package domain

// Instance describes one monitorable resource of a service: an RDS
// database instance, an SQS queue, a Hetzner server. The dashboard
// only ever needs the identity and a couple of display fields; the
// heavy per-service shapes stay inside the fetch clients.
type Instance struct {
	// ID is the value the provider expects in its dimension filter
	// (DB instance identifier, queue name, server ID).
	ID string

	// Name is the human-readable label shown in the instance list.
	Name string

	// Status is a provider-reported state string ("available",
	// "running", ...). Empty when the service has no such concept.
	Status string

	// Detail is a secondary display line (engine and version, queue
	// URL, server type). Free-form.
	Detail string

	// Service is the registry id of the owning service.
	Service string
}
