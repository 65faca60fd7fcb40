package incgen

// Method names prefix wrapped errors.
const (
	methodNew             = "New"
	methodGenerate        = "Generate"
	methodProcessEdgeType = "ProcessEdgeType"
	methodIteration       = "processIteration"
	methodCreate          = "create"
	methodConsume         = "consume"
	methodRefreshZipf     = "refreshZipf"
)

// DefaultSeed is the master seed used when neither the schema nor WithSeed
// supplies a non-zero one.
const DefaultSeed int64 = 222

// bothUncountedQuota is the number of edge attempts per iteration when neither
// side of an edge-type is Uniform or Normal. It is a fixed heuristic.
const bothUncountedQuota = 2
