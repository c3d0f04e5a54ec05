package allocation

import "funilaria_ops/internal/domain/entities"

// EmptyPartsPolicy controls how a job with zero part lines is classified.
// The boards diverge here on purpose: the claims board calls a car in when its
// estimate only has service lines, while the issuance boards have nothing to
// show for such a job.

type EmptyPartsPolicy int

const (
	// EmptyPartsNone: a job without part lines is NONE.
	EmptyPartsNone EmptyPartsPolicy = iota
	// EmptyPartsServiceFallback: a job without part lines is COMPLETE when it
	// carries at least one service line, otherwise NONE.
	EmptyPartsServiceFallback
)

// ClassifyJob derives the aggregate readiness for one job from its counted
// line states. Pure function of the allocator's output.
func ClassifyJob(job entities.Job, readyCount, totalCount int, policy EmptyPartsPolicy) JobReadiness {
	if totalCount == 0 {
		if policy == EmptyPartsServiceFallback && len(job.ServiceLines) > 0 {
			return ReadinessComplete
		}
		return ReadinessNone
	}
	switch {
	case readyCount == totalCount:
		return ReadinessComplete
	case readyCount == 0:
		return ReadinessNone
	default:
		return ReadinessPartial
	}
}
