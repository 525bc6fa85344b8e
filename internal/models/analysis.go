package models

// BucketStat is the per-bucket aggregate reported by every breakdown:
// how many trips landed in the bucket and their average fare (0 when empty).
type BucketStat struct {
	Count int     `json:"count"`
	Avg   float64 `json:"avg"`
}

// TimeOfDayStats groups fares by the local hour of the trip's start time.
type TimeOfDayStats struct {
	Morning   BucketStat `json:"morning"`   // [06,12)
	Afternoon BucketStat `json:"afternoon"` // [12,18)
	Evening   BucketStat `json:"evening"`   // [18,24)
	Night     BucketStat `json:"night"`     // [00,06)
}

// DayOfWeekStats groups fares by the weekday of the trip's start time.
type DayOfWeekStats struct {
	Sunday    BucketStat `json:"sunday"`
	Monday    BucketStat `json:"monday"`
	Tuesday   BucketStat `json:"tuesday"`
	Wednesday BucketStat `json:"wednesday"`
	Thursday  BucketStat `json:"thursday"`
	Friday    BucketStat `json:"friday"`
	Saturday  BucketStat `json:"saturday"`
}

// DistanceTierStats groups fares into short (<=5 km), medium (<=15 km) and
// long (>15 km) trips. The tiers are exhaustive and mutually exclusive.
type DistanceTierStats struct {
	Short  BucketStat `json:"short"`
	Medium BucketStat `json:"medium"`
	Long   BucketStat `json:"long"`
}

// FareRange is the min/max of the analyzed fare set.
type FareRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FareBucket is one slot of the equal-width fare histogram.
type FareBucket struct {
	Range      string `json:"range"` // "lo-hi" in whole EGP
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// RecentTrip is a redacted sample entry: no coordinates, no identities,
// endpoints reduced to their governorate.
type RecentTrip struct {
	Fare      float64 `json:"fare"`
	Distance  float64 `json:"distance"`
	Duration  int     `json:"duration,omitempty"`
	StartTime string  `json:"startTime,omitempty"`
	From      string  `json:"from"`
	To        string  `json:"to"`
}

// AnalysisResult is the full similar-trip comparison payload. It is derived
// on every query and has no independent lifecycle.
type AnalysisResult struct {
	SimilarTripsCount    int               `json:"similarTripsCount"`
	AverageFare          float64           `json:"averageFare"`
	FareRange            FareRange         `json:"fareRange"`
	TimeBasedAverage     TimeOfDayStats    `json:"timeBasedAverage"`
	DayBasedAverage      DayOfWeekStats    `json:"dayBasedAverage"`
	DistanceBasedAverage DistanceTierStats `json:"distanceBasedAverage"`
	FareDistribution     []FareBucket      `json:"fareDistribution"`
	RecentTrips          []RecentTrip      `json:"recentTrips"`
}
