package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funilaria_ops/internal/domain/entities"
)

func day(n int) time.Time {
	return time.Date(2025, 3, n, 8, 0, 0, 0, time.UTC)
}

func item(id, code string, onHand float64) entities.InventoryItem {
	return entities.InventoryItem{ID: id, Code: code, Name: id, Unit: "pc", Category: entities.ItemCategorySparepart, OnHand: onHand}
}

func job(id string, intake time.Time, lines ...entities.PartLine) entities.Job {
	return entities.Job{
		ID:              id,
		WorkOrderNumber: "WO-" + id,
		Status:          entities.JobStatusBodywork,
		IntakeTime:      intake,
		PartLines:       lines,
	}
}

func TestAllocate_FIFOContention(t *testing.T) {
	// Stock of A = 5, J1 (earlier) needs 3, J2 needs 4: J1 READY, J2 WAITING.
	inventory := []entities.InventoryItem{item("A", "A-01", 5)}
	jobs := []entities.Job{
		job("j1", day(1), entities.PartLine{InventoryID: "A", Qty: 3}),
		job("j2", day(2), entities.PartLine{InventoryID: "A", Qty: 4}),
	}

	res := Allocate(jobs, inventory, EmptyPartsNone)
	require.Len(t, res.Jobs, 2)

	assert.Equal(t, LineReady, res.Jobs[0].Lines[0].State)
	assert.Equal(t, ReadinessComplete, res.Jobs[0].Readiness)
	assert.Equal(t, LineWaiting, res.Jobs[1].Lines[0].State)
	assert.Equal(t, ReadinessNone, res.Jobs[1].Readiness)
	assert.Equal(t, 2.0, res.Remaining.Available("A"))
}

func TestAllocate_IssuedDoesNotTouchSnapshot(t *testing.T) {
	inventory := []entities.InventoryItem{item("B", "B-01", 10)}
	jobs := []entities.Job{
		job("j1", day(1), entities.PartLine{InventoryID: "B", Qty: 2, HasArrived: true}),
	}

	res := Allocate(jobs, inventory, EmptyPartsNone)

	require.Equal(t, LineIssued, res.Jobs[0].Lines[0].State)
	assert.Equal(t, 1, res.Jobs[0].ReadyCount)
	assert.Equal(t, 10.0, res.Remaining.Available("B"), "issued lines must not re-deduct stock")
}

func TestAllocate_UnresolvableReferenceWaits(t *testing.T) {
	inventory := []entities.InventoryItem{item("A", "A-01", 100)}
	jobs := []entities.Job{
		job("j1", day(1), entities.PartLine{InventoryID: "X-999", Code: "NO-SUCH", Qty: 1}),
	}

	res := Allocate(jobs, inventory, EmptyPartsNone)

	assert.Equal(t, LineWaiting, res.Jobs[0].Lines[0].State)
	assert.Empty(t, res.Jobs[0].Lines[0].InventoryID)
	assert.Equal(t, 100.0, res.Remaining.Available("A"))
}

func TestAllocate_IndentBypassesStockCheck(t *testing.T) {
	inventory := []entities.InventoryItem{item("C", "C-01", 0)}
	jobs := []entities.Job{
		job("j1", day(1), entities.PartLine{InventoryID: "C", Qty: 100, IsIndent: true}),
	}

	res := Allocate(jobs, inventory, EmptyPartsNone)

	assert.Equal(t, LineIndentManual, res.Jobs[0].Lines[0].State)
	assert.Equal(t, 0, res.Jobs[0].ReadyCount)
	assert.Equal(t, 0.0, res.Remaining.Available("C"))
}

func TestAllocate_TieBreakIsCollectionOrder(t *testing.T) {
	// Equal intake times: stable sort keeps collection order, so the job
	// listed first wins the last unit.
	inventory := []entities.InventoryItem{item("D", "D-01", 1)}
	intake := day(5)
	jobs := []entities.Job{
		job("first", intake, entities.PartLine{InventoryID: "D", Qty: 1}),
		job("second", intake, entities.PartLine{InventoryID: "D", Qty: 1}),
	}

	queue := BuildQueue(jobs, QueueFilter{})
	res := Allocate(queue, inventory, EmptyPartsNone)

	require.Equal(t, "first", res.Jobs[0].JobID)
	assert.Equal(t, LineReady, res.Jobs[0].Lines[0].State)
	assert.Equal(t, LineWaiting, res.Jobs[1].Lines[0].State)
}

func TestAllocate_Conservation(t *testing.T) {
	// Total READY quantity against one item never exceeds starting stock,
	// whatever mix of jobs competes for it.
	inventory := []entities.InventoryItem{item("X", "X-01", 7)}
	jobs := []entities.Job{
		job("j1", day(1), entities.PartLine{InventoryID: "X", Qty: 3}),
		job("j2", day(2), entities.PartLine{InventoryID: "X", Qty: 3}),
		job("j3", day(3), entities.PartLine{InventoryID: "X", Qty: 3}),
		job("j4", day(4), entities.PartLine{InventoryID: "X", Qty: 1}),
	}

	res := Allocate(jobs, inventory, EmptyPartsNone)

	var reserved float64
	for _, jr := range res.Jobs {
		for _, lr := range jr.Lines {
			if lr.State == LineReady {
				reserved += lr.Qty
			}
		}
	}
	assert.LessOrEqual(t, reserved, 7.0)
	assert.Equal(t, 7.0, reserved+res.Remaining.Available("X"))
	// j1, j2 take 3+3; j3 waits on 3 > 1 remaining; j4 takes the last unit.
	assert.Equal(t, LineWaiting, res.Jobs[2].Lines[0].State)
	assert.Equal(t, LineReady, res.Jobs[3].Lines[0].State)
}

func TestAllocate_Idempotence(t *testing.T) {
	inventory := []entities.InventoryItem{item("A", "A-01", 5), item("B", "B-01", 2)}
	jobs := []entities.Job{
		job("j1", day(1),
			entities.PartLine{InventoryID: "A", Qty: 3},
			entities.PartLine{InventoryID: "B", Qty: 3}),
		job("j2", day(2), entities.PartLine{InventoryID: "A", Qty: 2}),
	}

	first := Allocate(jobs, inventory, EmptyPartsNone)
	second := Allocate(jobs, inventory, EmptyPartsNone)

	assert.Equal(t, first.Jobs, second.Jobs)
	assert.Equal(t, first.Remaining, second.Remaining)
}

func TestAllocate_SelfContentionLineOrder(t *testing.T) {
	// One job wants 2+2 of an item with 3 on hand: the earlier line wins,
	// aggregate counts do not depend on line order.
	inventory := []entities.InventoryItem{item("A", "A-01", 3)}

	forward := Allocate([]entities.Job{job("j1", day(1),
		entities.PartLine{InventoryID: "A", Qty: 2},
		entities.PartLine{InventoryID: "A", Qty: 2},
	)}, inventory, EmptyPartsNone)

	require.Equal(t, LineReady, forward.Jobs[0].Lines[0].State)
	require.Equal(t, LineWaiting, forward.Jobs[0].Lines[1].State)

	reversed := Allocate([]entities.Job{job("j1", day(1),
		entities.PartLine{InventoryID: "A", Qty: 2},
		entities.PartLine{InventoryID: "A", Qty: 2},
	)}, inventory, EmptyPartsNone)

	assert.Equal(t, forward.Jobs[0].ReadyCount, reversed.Jobs[0].ReadyCount)
	assert.Equal(t, forward.Jobs[0].TotalCount, reversed.Jobs[0].TotalCount)
	assert.Equal(t, ReadinessPartial, forward.Jobs[0].Readiness)
}

func TestAllocate_NonPositiveQtyDefaultsToOne(t *testing.T) {
	inventory := []entities.InventoryItem{item("A", "A-01", 1)}
	jobs := []entities.Job{
		job("j1", day(1), entities.PartLine{InventoryID: "A", Qty: 0}),
	}

	res := Allocate(jobs, inventory, EmptyPartsNone)

	assert.Equal(t, LineReady, res.Jobs[0].Lines[0].State)
	assert.Equal(t, 1.0, res.Jobs[0].Lines[0].Qty)
	assert.Equal(t, 0.0, res.Remaining.Available("A"))
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "non-positive qty")
}

func TestAllocate_CodeFallbackResolution(t *testing.T) {
	inventory := []entities.InventoryItem{item("inv-1", "BMP-F30", 2)}
	jobs := []entities.Job{
		job("j1", day(1), entities.PartLine{Code: "bmp-f30", Qty: 1}),
	}

	res := Allocate(jobs, inventory, EmptyPartsNone)

	assert.Equal(t, LineReady, res.Jobs[0].Lines[0].State)
	assert.Equal(t, "inv-1", res.Jobs[0].Lines[0].InventoryID)
}

func TestClassifyJob(t *testing.T) {
	base := entities.Job{ID: "j"}
	withService := entities.Job{ID: "j", ServiceLines: []entities.ServiceLine{{Name: "polish"}}}

	t.Run("complete", func(t *testing.T) {
		assert.Equal(t, ReadinessComplete, ClassifyJob(base, 3, 3, EmptyPartsNone))
	})
	t.Run("partial", func(t *testing.T) {
		assert.Equal(t, ReadinessPartial, ClassifyJob(base, 1, 3, EmptyPartsNone))
	})
	t.Run("none", func(t *testing.T) {
		assert.Equal(t, ReadinessNone, ClassifyJob(base, 0, 3, EmptyPartsNone))
	})
	t.Run("empty parts default", func(t *testing.T) {
		assert.Equal(t, ReadinessNone, ClassifyJob(withService, 0, 0, EmptyPartsNone))
	})
	t.Run("empty parts service fallback", func(t *testing.T) {
		assert.Equal(t, ReadinessComplete, ClassifyJob(withService, 0, 0, EmptyPartsServiceFallback))
		assert.Equal(t, ReadinessNone, ClassifyJob(base, 0, 0, EmptyPartsServiceFallback))
	})
}
