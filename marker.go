package anim

// marker is a point on a timeline's local time axis recording structural
// changes: which entities start or end there. Markers form a doubly
// linked ordered list and are created lazily, never deleted.
type marker struct {
	time int64

	startEntities []entity
	endEntities   []entity

	prev *marker
	next *marker
}

// markerList is a timeline's ordered marker index plus a cursor used to
// keep repeated insertions near the same time cheap. Lookups are plain
// linear scans (createMarker's from the cursor, getMarker's and
// nearest's from the list ends) rather than a hand-rolled binary splice:
// timelines carry at most a few hundred markers in practice, and a
// scan is trivially correct where a bidirectional splice is not.
type markerList struct {
	head   *marker
	tail   *marker
	cursor *marker
}

// createMarker returns the marker at time, creating and splicing it into
// the ordered list if none exists yet. The cursor is left on the
// returned marker so a following createMarker/getMarker near the same
// time starts its scan close by.
func (ml *markerList) createMarker(time int64) *marker {
	if ml.head == nil {
		m := &marker{time: time}
		ml.head, ml.tail, ml.cursor = m, m, m
		return m
	}

	start := ml.cursor
	if start == nil {
		start = ml.head
	}

	if start.time == time {
		ml.cursor = start
		return start
	}

	if time > start.time {
		n := start
		for n.next != nil && n.next.time <= time {
			n = n.next
			if n.time == time {
				ml.cursor = n
				return n
			}
		}
		m := &marker{time: time, prev: n, next: n.next}
		if n.next != nil {
			n.next.prev = m
		} else {
			ml.tail = m
		}
		n.next = m
		ml.cursor = m
		return m
	}

	n := start
	for n.prev != nil && n.prev.time >= time {
		n = n.prev
		if n.time == time {
			ml.cursor = n
			return n
		}
	}
	m := &marker{time: time, prev: n.prev, next: n}
	if n.prev != nil {
		n.prev.next = m
	} else {
		ml.head = m
	}
	n.prev = m
	ml.cursor = m
	return m
}

// getMarker returns the marker at time, or nil if none exists. It does
// not create one and does not move the cursor.
func (ml *markerList) getMarker(time int64) *marker {
	for m := ml.head; m != nil; m = m.next {
		if m.time == time {
			return m
		}
		if m.time > time {
			return nil
		}
	}
	return nil
}

// nearest returns the marker strictly past time in the given direction
// (the smallest marker time > time when forward, the largest < time when
// backward), or ok=false if none exists.
func (ml *markerList) nearest(time int64, forward bool) (int64, bool) {
	if forward {
		for m := ml.head; m != nil; m = m.next {
			if m.time > time {
				return m.time, true
			}
		}
		return 0, false
	}
	for m := ml.tail; m != nil; m = m.prev {
		if m.time < time {
			return m.time, true
		}
	}
	return 0, false
}

// addStart records e as starting at time's marker, creating the marker
// if needed.
func (ml *markerList) addStart(time int64, e entity) *marker {
	m := ml.createMarker(time)
	m.startEntities = append(m.startEntities, e)
	return m
}

// addEnd records e as ending at time's marker, creating the marker if
// needed.
func (ml *markerList) addEnd(time int64, e entity) *marker {
	m := ml.createMarker(time)
	m.endEntities = append(m.endEntities, e)
	return m
}
