package entity

// Train is the capacity-bearing resource. Rows are seeded externally and
// never mutated, so there is no update path anywhere in the codebase.
type Train struct {
	Base
	TrainNumber   string `db:"train_number"`
	TrainName     string `db:"train_name"`
	Source        string `db:"source"`
	Destination   string `db:"destination"`
	DepartureTime string `db:"departure_time"`
	ArrivalTime   string `db:"arrival_time"`
	TotalSeats    int    `db:"total_seats"`
	// Fare is the exact per-seat unit price. Integer on purpose: total fare
	// is fare * seats with no rounding involved.
	Fare int64 `db:"fare"`
}

// Availability is derived per (train, travel date), never stored.
type Availability struct {
	TotalSeats     int
	BookedSeats    int
	AvailableSeats int
}
