package equipment

// Project derives the state shown to callers from the stored administrative
// state and current occupancy. Maintenance and out-of-service win over bookings.
func Project(stored State, occupied bool) State {
	if stored.Blocks() {
		return stored
	}
	if occupied {
		return StateReserved
	}
	return StateFree
}
