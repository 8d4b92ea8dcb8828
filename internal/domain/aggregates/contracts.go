package aggregates

// WriteTxOwnership defines who owns write transaction boundaries.
type WriteTxOwnership string

// WriteTxOwnedByAggregate means write methods open and commit their own transaction.
const WriteTxOwnedByAggregate WriteTxOwnership = "aggregate_owned"

// ReadPolicy defines how an aggregate exposes reads.
type ReadPolicy string

// ReadPolicyInvariantScoped limits aggregate reads to what its writes need,
// plus detail attachment for rows a repo already listed.
const ReadPolicyInvariantScoped ReadPolicy = "invariant_scoped_reads"

// Contract describes aggregate-level policy expectations.
type Contract struct {
	Name             string
	WriteTxOwnership WriteTxOwnership
	ReadPolicy       ReadPolicy
	Notes            string
}

// Aggregate is the common marker for all aggregate contracts.
type Aggregate interface {
	Contract() Contract
}

func (c Contract) RequiresAggregateOwnedTx() bool {
	return c.WriteTxOwnership == WriteTxOwnedByAggregate
}
