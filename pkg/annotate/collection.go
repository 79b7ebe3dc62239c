package annotate

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Collection is the session-scoped, ordered set of regions for one asset.
// It exclusively owns its regions: callers mutate through the collection
// so every change is validated and observers are notified.
//
// The collection is the arena for unsaved regions; the client ID is the
// key. It is not safe for concurrent use, matching the single-threaded
// event-loop model of the host editor.
type Collection struct {
	regions  []*Region
	byID     map[string]*Region
	onChange []func()
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{byID: make(map[string]*Region)}
}

// OnChange registers fn to run after every mutation. The host UI
// subscribes here and re-renders from Snapshot; the engine itself has no
// rendering dependency.
func (c *Collection) OnChange(fn func()) {
	c.onChange = append(c.onChange, fn)
}

func (c *Collection) notify() {
	for _, fn := range c.onChange {
		fn()
	}
}

// Add validates the shape, assigns a fresh client ID and inserts the
// region. Intervals are inserted in start-time order; boxes are appended
// in creation order.
func (c *Collection) Add(labelID uint, shape Shape, notes string) (*Region, error) {
	if labelID == 0 {
		return nil, ErrNoLabelSelected
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	region := &Region{
		ClientID: uuid.New().String(),
		LabelID:  labelID,
		Notes:    notes,
		Shape:    shape,
	}

	if iv, ok := shape.(Interval); ok {
		idx := sort.Search(len(c.regions), func(i int) bool {
			other, isInterval := c.regions[i].Shape.(Interval)
			return isInterval && other.Start > iv.Start
		})
		c.regions = append(c.regions, nil)
		copy(c.regions[idx+1:], c.regions[idx:])
		c.regions[idx] = region
	} else {
		c.regions = append(c.regions, region)
	}

	c.byID[region.ClientID] = region
	c.notify()
	return region, nil
}

// Remove deletes the region with the given client ID. Removing an absent
// ID is a no-op.
func (c *Collection) Remove(clientID string) {
	if _, ok := c.byID[clientID]; !ok {
		return
	}
	delete(c.byID, clientID)
	for i, r := range c.regions {
		if r.ClientID == clientID {
			c.regions = append(c.regions[:i], c.regions[i+1:]...)
			break
		}
	}
	c.notify()
}

// UpdateShape replaces a region's geometry after revalidating it.
// Callers performing a live resize clamp before calling, so a rejected
// update here means a programming error rather than a user gesture.
func (c *Collection) UpdateShape(clientID string, shape Shape) error {
	region, ok := c.byID[clientID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRegionNotFound, clientID)
	}
	if err := shape.Validate(); err != nil {
		return err
	}
	region.Shape = shape
	c.notify()
	return nil
}

// UpdateNotes sets the free-text notes of a region.
func (c *Collection) UpdateNotes(clientID, notes string) error {
	region, ok := c.byID[clientID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRegionNotFound, clientID)
	}
	region.Notes = notes
	c.notify()
	return nil
}

// ReplaceAll discards the session state and hydrates the collection from
// a loaded region set. Regions without a client ID are assigned one.
func (c *Collection) ReplaceAll(regions []Region) {
	c.regions = make([]*Region, 0, len(regions))
	c.byID = make(map[string]*Region, len(regions))
	for i := range regions {
		r := regions[i]
		if r.ClientID == "" {
			r.ClientID = uuid.New().String()
		}
		c.regions = append(c.regions, &r)
		c.byID[r.ClientID] = &r
	}
	c.notify()
}

// Get returns the region with the given client ID.
func (c *Collection) Get(clientID string) (*Region, bool) {
	r, ok := c.byID[clientID]
	return r, ok
}

// Len returns the number of regions in the collection.
func (c *Collection) Len() int {
	return len(c.regions)
}

// UsageCount returns how many regions reference the given label.
func (c *Collection) UsageCount(labelID uint) int {
	count := 0
	for _, r := range c.regions {
		if r.LabelID == labelID {
			count++
		}
	}
	return count
}

// Snapshot returns a stable-ordered copy of the region set for rendering,
// save and export: intervals by start time, boxes in insertion order.
// Resizes can reorder intervals, so the sort happens here rather than
// being maintained incrementally.
func (c *Collection) Snapshot() []Region {
	out := make([]Region, len(c.regions))
	for i, r := range c.regions {
		out[i] = *r
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, aOK := out[i].Shape.(Interval)
		b, bOK := out[j].Shape.(Interval)
		if aOK && bOK {
			return a.Start < b.Start
		}
		return false
	})
	return out
}

// AttachPersistedIDs records the server-assigned IDs after a save,
// matched by snapshot order. Client IDs are kept untouched.
func (c *Collection) AttachPersistedIDs(ids []uint) error {
	snapshot := c.Snapshot()
	if len(ids) != len(snapshot) {
		return fmt.Errorf("persisted id count %d does not match region count %d", len(ids), len(snapshot))
	}
	for i, snap := range snapshot {
		if region, ok := c.byID[snap.ClientID]; ok {
			region.PersistedID = ids[i]
		}
	}
	return nil
}
