package tilemap

// ObjectID is a stable handle into the arena. The zero ID is "no object".
type ObjectID uint32

// Arena owns every Object in the map. Slots are recycled through a free list,
// so an ID stays valid until its own Release regardless of other churn.
type Arena struct {
	objs []Object
	live []bool
	free []ObjectID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc stores obj and returns its handle.
func (a *Arena) Alloc(obj Object) ObjectID {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.objs[id-1] = obj
		a.live[id-1] = true
		return id
	}
	a.objs = append(a.objs, obj)
	a.live = append(a.live, true)
	return ObjectID(len(a.objs))
}

// Get returns the object for id, or nil for the zero ID, released slots, and
// out-of-range handles.
func (a *Arena) Get(id ObjectID) *Object {
	if id == 0 || int(id) > len(a.objs) || !a.live[id-1] {
		return nil
	}
	return &a.objs[id-1]
}

// Release frees the slot for reuse. Releasing an already-free or zero ID is a
// no-op.
func (a *Arena) Release(id ObjectID) {
	if id == 0 || int(id) > len(a.objs) || !a.live[id-1] {
		return
	}
	a.live[id-1] = false
	a.objs[id-1] = Object{}
	a.free = append(a.free, id)
}

// Len returns the number of live objects.
func (a *Arena) Len() int {
	return len(a.objs) - len(a.free)
}
