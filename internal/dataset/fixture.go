package dataset

// DefaultData returns the built-in demonstration readings. Callers get a
// fresh slice on every call, so loading and mutating it never affects
// other users.
func DefaultData() []Reading {
	return []Reading{
		{ZipCode: "12345", TimeOfDay: "Morning", Concentration: 1.1},
		{ZipCode: "94022", TimeOfDay: "Morning", Concentration: 2.2},
		{ZipCode: "94040", TimeOfDay: "Morning", Concentration: 3.0},
		{ZipCode: "94022", TimeOfDay: "Midday", Concentration: 1.0},
		{ZipCode: "94040", TimeOfDay: "Morning", Concentration: 1.0},
		{ZipCode: "94022", TimeOfDay: "Evening", Concentration: 3.2},
	}
}
