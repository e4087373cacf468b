package anim

import "testing"

func TestCreateMarkerReturnsSameInstanceForSameTime(t *testing.T) {
	var ml markerList
	m1 := ml.createMarker(100)
	m2 := ml.createMarker(100)
	if m1 != m2 {
		t.Fatal("expected createMarker to return the same marker for the same time")
	}
}

func TestCreateMarkerOrdersAscending(t *testing.T) {
	var ml markerList
	ml.createMarker(100)
	ml.createMarker(50)
	ml.createMarker(150)
	ml.createMarker(75)

	var times []int64
	for m := ml.head; m != nil; m = m.next {
		times = append(times, m.time)
	}
	want := []int64{50, 75, 100, 150}
	if len(times) != len(want) {
		t.Fatalf("got %v, want %v", times, want)
	}
	for i, v := range want {
		if times[i] != v {
			t.Errorf("times[%d] = %d, want %d", i, times[i], v)
		}
	}
}

func TestGetMarkerMissingReturnsNil(t *testing.T) {
	var ml markerList
	ml.createMarker(10)
	ml.createMarker(20)
	if m := ml.getMarker(15); m != nil {
		t.Errorf("expected nil for a time with no marker, got %v", m)
	}
	if m := ml.getMarker(10); m == nil {
		t.Errorf("expected a marker at 10")
	}
}

func TestNearestForwardAndBackward(t *testing.T) {
	var ml markerList
	ml.createMarker(10)
	ml.createMarker(20)
	ml.createMarker(30)

	if pos, ok := ml.nearest(15, true); !ok || pos != 20 {
		t.Errorf("nearest(15, fwd) = (%d, %v), want (20, true)", pos, ok)
	}
	if pos, ok := ml.nearest(15, false); !ok || pos != 10 {
		t.Errorf("nearest(15, back) = (%d, %v), want (10, true)", pos, ok)
	}
	if _, ok := ml.nearest(30, true); ok {
		t.Errorf("expected no forward candidate past the last marker")
	}
}

func TestMarkerListDoublyLinkedInvariant(t *testing.T) {
	var ml markerList
	ml.createMarker(30)
	ml.createMarker(10)
	ml.createMarker(20)

	for m := ml.head; m != nil && m.next != nil; m = m.next {
		if !(m.time < m.next.time) {
			t.Fatalf("marker order violated: %d should be < %d", m.time, m.next.time)
		}
		if m.next.prev != m {
			t.Fatalf("broken prev pointer at time %d", m.next.time)
		}
	}
}
