package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionAdd(t *testing.T) {
	t.Run("assigns a client identifier", func(t *testing.T) {
		c := NewCollection()

		region, err := c.Add(1, Interval{Start: 5, End: 20}, "")
		require.NoError(t, err)
		assert.NotEmpty(t, region.ClientID)
		assert.Len(t, region.ClientID, 36)
		assert.Zero(t, region.PersistedID)
	})

	t.Run("rejects invalid geometry", func(t *testing.T) {
		c := NewCollection()

		_, err := c.Add(1, Interval{Start: 20, End: 5}, "")
		assert.ErrorIs(t, err, ErrInvalidGeometry)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("requires a label", func(t *testing.T) {
		c := NewCollection()

		_, err := c.Add(0, Interval{Start: 5, End: 20}, "")
		assert.ErrorIs(t, err, ErrNoLabelSelected)
	})

	t.Run("inserts intervals in time order", func(t *testing.T) {
		c := NewCollection()

		_, err := c.Add(1, Interval{Start: 30, End: 40}, "")
		require.NoError(t, err)
		_, err = c.Add(1, Interval{Start: 5, End: 20}, "")
		require.NoError(t, err)
		_, err = c.Add(1, Interval{Start: 25, End: 28}, "")
		require.NoError(t, err)

		snapshot := c.Snapshot()
		require.Len(t, snapshot, 3)
		assert.Equal(t, 5.0, snapshot[0].Shape.(Interval).Start)
		assert.Equal(t, 25.0, snapshot[1].Shape.(Interval).Start)
		assert.Equal(t, 30.0, snapshot[2].Shape.(Interval).Start)
	})

	t.Run("keeps boxes in insertion order", func(t *testing.T) {
		c := NewCollection()

		first, err := c.Add(1, Box{X: 50, Y: 50, Width: 10, Height: 10}, "")
		require.NoError(t, err)
		second, err := c.Add(1, Box{X: 5, Y: 5, Width: 10, Height: 10}, "")
		require.NoError(t, err)

		snapshot := c.Snapshot()
		require.Len(t, snapshot, 2)
		assert.Equal(t, first.ClientID, snapshot[0].ClientID)
		assert.Equal(t, second.ClientID, snapshot[1].ClientID)
	})
}

func TestCollectionRemove(t *testing.T) {
	c := NewCollection()
	region, err := c.Add(1, Interval{Start: 5, End: 20}, "")
	require.NoError(t, err)

	c.Remove(region.ClientID)
	assert.Equal(t, 0, c.Len())

	// Removing an absent ID is a no-op.
	c.Remove(region.ClientID)
	c.Remove("does-not-exist")
	assert.Equal(t, 0, c.Len())
}

func TestCollectionUpdateShape(t *testing.T) {
	c := NewCollection()
	region, err := c.Add(1, Interval{Start: 5, End: 20}, "")
	require.NoError(t, err)

	t.Run("commits a valid shape", func(t *testing.T) {
		err := c.UpdateShape(region.ClientID, Interval{Start: 6, End: 18})
		require.NoError(t, err)

		got, ok := c.Get(region.ClientID)
		require.True(t, ok)
		assert.Equal(t, Interval{Start: 6, End: 18}, got.Shape)
	})

	t.Run("rejects an invalid shape without mutating", func(t *testing.T) {
		err := c.UpdateShape(region.ClientID, Interval{Start: 18, End: 6})
		assert.ErrorIs(t, err, ErrInvalidGeometry)

		got, _ := c.Get(region.ClientID)
		assert.Equal(t, Interval{Start: 6, End: 18}, got.Shape)
	})

	t.Run("unknown client id", func(t *testing.T) {
		err := c.UpdateShape("missing", Interval{Start: 1, End: 2})
		assert.ErrorIs(t, err, ErrRegionNotFound)
	})
}

func TestCollectionUpdateNotes(t *testing.T) {
	c := NewCollection()
	region, err := c.Add(1, Interval{Start: 5, End: 20}, "")
	require.NoError(t, err)

	require.NoError(t, c.UpdateNotes(region.ClientID, "speaker intro"))
	got, _ := c.Get(region.ClientID)
	assert.Equal(t, "speaker intro", got.Notes)

	assert.ErrorIs(t, c.UpdateNotes("missing", "x"), ErrRegionNotFound)
}

func TestCollectionReplaceAll(t *testing.T) {
	c := NewCollection()
	_, err := c.Add(1, Interval{Start: 5, End: 20}, "session edit")
	require.NoError(t, err)

	c.ReplaceAll([]Region{
		{PersistedID: 7, LabelID: 2, Shape: Interval{Start: 1, End: 3}},
		{PersistedID: 8, LabelID: 2, Shape: Interval{Start: 10, End: 12}},
	})

	assert.Equal(t, 2, c.Len())
	for _, r := range c.Snapshot() {
		assert.NotEmpty(t, r.ClientID, "hydrated regions get client IDs")
	}
}

func TestCollectionUsageCount(t *testing.T) {
	c := NewCollection()
	_, err := c.Add(1, Interval{Start: 5, End: 20}, "")
	require.NoError(t, err)
	_, err = c.Add(1, Interval{Start: 30, End: 40}, "")
	require.NoError(t, err)
	_, err = c.Add(2, Interval{Start: 50, End: 60}, "")
	require.NoError(t, err)

	assert.Equal(t, 2, c.UsageCount(1))
	assert.Equal(t, 1, c.UsageCount(2))
	assert.Equal(t, 0, c.UsageCount(9))
}

func TestCollectionAttachPersistedIDs(t *testing.T) {
	c := NewCollection()
	second, err := c.Add(1, Interval{Start: 30, End: 40}, "")
	require.NoError(t, err)
	first, err := c.Add(1, Interval{Start: 5, End: 20}, "")
	require.NoError(t, err)

	// IDs arrive in snapshot (start-time) order.
	require.NoError(t, c.AttachPersistedIDs([]uint{11, 12}))

	got, _ := c.Get(first.ClientID)
	assert.Equal(t, uint(11), got.PersistedID)
	got, _ = c.Get(second.ClientID)
	assert.Equal(t, uint(12), got.PersistedID)

	// Client IDs survive the attach.
	assert.Equal(t, second.ClientID, got.ClientID)

	assert.Error(t, c.AttachPersistedIDs([]uint{1}))
}

func TestCollectionOnChange(t *testing.T) {
	c := NewCollection()
	changes := 0
	c.OnChange(func() { changes++ })

	region, err := c.Add(1, Interval{Start: 5, End: 20}, "")
	require.NoError(t, err)
	require.NoError(t, c.UpdateShape(region.ClientID, Interval{Start: 5, End: 25}))
	require.NoError(t, c.UpdateNotes(region.ClientID, "n"))
	c.Remove(region.ClientID)
	c.Remove(region.ClientID) // no-op, no notification

	assert.Equal(t, 4, changes)
}
