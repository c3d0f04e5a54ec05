package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funilaria_ops/internal/domain/entities"
)

func TestBuildQueue_Eligibility(t *testing.T) {
	jobs := []entities.Job{
		{ID: "ok", WorkOrderNumber: "WO-1", IntakeTime: day(2)},
		{ID: "closed", WorkOrderNumber: "WO-2", IsClosed: true},
		{ID: "deleted", WorkOrderNumber: "WO-3", IsDeleted: true},
		{ID: "no-wo", WorkOrderNumber: "   "},
	}

	queue := BuildQueue(jobs, QueueFilter{})

	require.Len(t, queue, 1)
	assert.Equal(t, "ok", queue[0].ID)
}

func TestBuildQueue_FIFOOrder(t *testing.T) {
	jobs := []entities.Job{
		{ID: "late", WorkOrderNumber: "WO-1", IntakeTime: day(9)},
		{ID: "early", WorkOrderNumber: "WO-2", IntakeTime: day(1)},
		{ID: "mid", WorkOrderNumber: "WO-3", IntakeTime: day(4)},
	}

	queue := BuildQueue(jobs, QueueFilter{})

	require.Len(t, queue, 3)
	assert.Equal(t, []string{"early", "mid", "late"}, []string{queue[0].ID, queue[1].ID, queue[2].ID})
}

func TestBuildQueue_MissingIntakeSortsFirst(t *testing.T) {
	// A zero intake time (corrupted/legacy record) jumps the queue; the rule
	// is deliberate and pinned here.
	jobs := []entities.Job{
		{ID: "dated", WorkOrderNumber: "WO-1", IntakeTime: day(1)},
		{ID: "undated", WorkOrderNumber: "WO-2"},
	}

	queue := BuildQueue(jobs, QueueFilter{})

	require.Len(t, queue, 2)
	assert.Equal(t, "undated", queue[0].ID)
}

func TestBuildQueue_StableOnEqualIntake(t *testing.T) {
	intake := day(3)
	jobs := []entities.Job{
		{ID: "a", WorkOrderNumber: "WO-1", IntakeTime: intake},
		{ID: "b", WorkOrderNumber: "WO-2", IntakeTime: intake},
		{ID: "c", WorkOrderNumber: "WO-3", IntakeTime: intake},
	}

	queue := BuildQueue(jobs, QueueFilter{})

	require.Len(t, queue, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{queue[0].ID, queue[1].ID, queue[2].ID})
}

func TestBuildQueue_StageAndPremisesFilters(t *testing.T) {
	jobs := []entities.Job{
		{ID: "paint-in", WorkOrderNumber: "WO-1", Status: entities.JobStatusPainting, OnPremises: true},
		{ID: "paint-out", WorkOrderNumber: "WO-2", Status: entities.JobStatusPainting},
		{ID: "body-in", WorkOrderNumber: "WO-3", Status: entities.JobStatusBodywork, OnPremises: true},
	}

	queue := BuildQueue(jobs, QueueFilter{
		OnPremisesOnly: true,
		Stages:         []entities.JobStatus{entities.JobStatusPainting},
	})

	require.Len(t, queue, 1)
	assert.Equal(t, "paint-in", queue[0].ID)
}

func TestBuildQueue_Search(t *testing.T) {
	jobs := []entities.Job{
		{ID: "j1", WorkOrderNumber: "WO 2024 001", PoliceNumber: "B 1234 XY", CustomerName: "Siti Rahma", IntakeTime: day(1)},
		{ID: "j2", WorkOrderNumber: "WO 2024 002", PoliceNumber: "D 777 AB", CustomerName: "Budi", IntakeTime: day(2)},
	}

	t.Run("police number, case-insensitive", func(t *testing.T) {
		queue := BuildQueue(jobs, QueueFilter{Search: "b 1234"})
		require.Len(t, queue, 1)
		assert.Equal(t, "j1", queue[0].ID)
	})

	t.Run("work order with whitespace stripped", func(t *testing.T) {
		queue := BuildQueue(jobs, QueueFilter{Search: "wo2024002"})
		require.Len(t, queue, 1)
		assert.Equal(t, "j2", queue[0].ID)
	})

	t.Run("customer name", func(t *testing.T) {
		queue := BuildQueue(jobs, QueueFilter{Search: "rahma"})
		require.Len(t, queue, 1)
		assert.Equal(t, "j1", queue[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, BuildQueue(jobs, QueueFilter{Search: "zzz"}))
	})
}

func TestSnapshot_Reserve(t *testing.T) {
	s := NewSnapshot([]entities.InventoryItem{item("A", "A-01", 2.5)})

	assert.True(t, s.Reserve("A", 1.5))
	assert.Equal(t, 1.0, s.Available("A"))
	assert.False(t, s.Reserve("A", 1.5))
	assert.Equal(t, 1.0, s.Available("A"), "failed reserve must not decrement")
	assert.False(t, s.Reserve("missing", 1))
}

func TestIndex_Resolve(t *testing.T) {
	items := []entities.InventoryItem{
		item("inv-1", "SHARED", 1),
		item("inv-2", "SHARED", 1),
		item("inv-3", "OTHER", 1),
	}
	ix := NewIndex(items)

	t.Run("id wins over code", func(t *testing.T) {
		got, ok := ix.Resolve(entities.PartLine{InventoryID: "inv-3", Code: "SHARED"})
		require.True(t, ok)
		assert.Equal(t, "inv-3", got.ID)
	})

	t.Run("duplicate code, first in collection order wins", func(t *testing.T) {
		got, ok := ix.Resolve(entities.PartLine{Code: "shared"})
		require.True(t, ok)
		assert.Equal(t, "inv-1", got.ID)
	})

	t.Run("stale id falls back to code", func(t *testing.T) {
		got, ok := ix.Resolve(entities.PartLine{InventoryID: "gone", Code: "OTHER"})
		require.True(t, ok)
		assert.Equal(t, "inv-3", got.ID)
	})

	t.Run("unlinked", func(t *testing.T) {
		_, ok := ix.Resolve(entities.PartLine{})
		assert.False(t, ok)
	})
}
