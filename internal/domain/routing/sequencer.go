package routing

// Point is a raw lat/lng pair. Distances are planar approximations: the
// service area spans a few tens of kilometers and only relative ordering
// matters, so no geodesic math.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Stop is one confirmed visit projected onto a technician's day.
type Stop struct {
	BookingID uint   `json:"booking_id"`
	Position  int    `json:"position"` // 1-indexed, set by Sequence
	Location  Point  `json:"location"`
	Address   string `json:"address"`
	Client    string `json:"client"`
	Slot      string `json:"slot"`
	Window    string `json:"window"`
}

// Sequence orders stops by the nearest-neighbor heuristic anchored at
// start. Ties break on original list order (first occurrence wins), so the
// output is fully deterministic for a fixed input. O(n²); n is bounded by
// slot capacity × 2.
func Sequence(start Point, stops []Stop) []Stop {
	remaining := make([]Stop, len(stops))
	copy(remaining, stops)

	ordered := make([]Stop, 0, len(stops))
	current := start

	for len(remaining) > 0 {
		best := 0
		bestDist := sqDist(current, remaining[0].Location)

		for i := 1; i < len(remaining); i++ {
			if d := sqDist(current, remaining[i].Location); d < bestDist {
				best = i
				bestDist = d
			}
		}

		next := remaining[best]
		next.Position = len(ordered) + 1
		ordered = append(ordered, next)

		current = next.Location
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return ordered
}

// sqDist is the squared planar distance; square roots don't change the
// argmin.
func sqDist(a, b Point) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return dLat*dLat + dLng*dLng
}
