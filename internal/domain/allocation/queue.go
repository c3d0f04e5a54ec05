package allocation

import (
	"sort"
	"strings"

	"funilaria_ops/internal/domain/entities"
)

// QueueFilter narrows the eligible job set before FIFO ordering.
//
// Baseline eligibility is fixed: not deleted, not closed, has a work-order
// number. The optional fields are per-board refinements.
type QueueFilter struct {
	OnPremisesOnly bool
	Stages         []entities.JobStatus
	Search         string
}

// BuildQueue selects eligible jobs and orders them ascending by intake time,
// earliest first. The sort is stable, so jobs with equal intake times keep
// their original collection order; a zero intake time sorts as earliest.
func BuildQueue(jobs []entities.Job, f QueueFilter) []entities.Job {
	stages := make(map[entities.JobStatus]struct{}, len(f.Stages))
	for _, s := range f.Stages {
		stages[s] = struct{}{}
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	queue := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.IsDeleted || j.IsClosed {
			continue
		}
		if strings.TrimSpace(j.WorkOrderNumber) == "" {
			continue
		}
		if f.OnPremisesOnly && !j.OnPremises {
			continue
		}
		if len(stages) > 0 {
			if _, ok := stages[j.Status]; !ok {
				continue
			}
		}
		if search != "" && !matchesSearch(j, search) {
			continue
		}
		queue = append(queue, j)
	}

	sort.SliceStable(queue, func(a, b int) bool {
		return queue[a].IntakeTime.Before(queue[b].IntakeTime)
	})
	return queue
}

func matchesSearch(j entities.Job, search string) bool {
	for _, field := range []string{
		j.PoliceNumber,
		j.CustomerName,
		j.WorkOrderNumber,
	} {
		normalized := strings.ToLower(strings.ReplaceAll(field, " ", ""))
		if strings.Contains(normalized, strings.ReplaceAll(search, " ", "")) {
			return true
		}
	}
	return false
}
