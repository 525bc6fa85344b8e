package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/taxifair/taxifair-backend-go/internal/models"
	"github.com/taxifair/taxifair-backend-go/internal/stats"
)

// Distance tier boundaries in kilometers.
const (
	ShortTripMaxKm  = 5.0
	MediumTripMaxKm = 15.0
)

// FareHistogramBuckets is the fixed number of equal-width histogram slots.
const FareHistogramBuckets = 8

// RecentTripsSample caps the redacted recent-trip sample.
const RecentTripsSample = 10

const unspecifiedGovernorate = "unspecified"

// Aggregate reduces a filtered set of similar trips to the comparison
// statistics shown to the user. It is a total function: the empty set yields
// an all-zero result with empty breakdowns, never an error.
func Aggregate(trips []models.Trip) models.AnalysisResult {
	result := models.AnalysisResult{
		FareDistribution: []models.FareBucket{},
		RecentTrips:      []models.RecentTrip{},
	}
	if len(trips) == 0 {
		return result
	}

	var fares []float64
	for _, trip := range trips {
		if trip.Fare > 0 {
			fares = append(fares, trip.Fare)
		}
	}

	result.SimilarTripsCount = len(trips)
	result.AverageFare = stats.Round2(stats.Mean(fares))
	result.FareRange = models.FareRange{Min: stats.Min(fares), Max: stats.Max(fares)}
	result.TimeBasedAverage = timeOfDayStats(trips)
	result.DayBasedAverage = dayOfWeekStats(trips)
	result.DistanceBasedAverage = distanceTierStats(trips)
	result.FareDistribution = fareDistribution(fares)
	result.RecentTrips = recentTrips(trips)

	return result
}

// bucket accumulates a count and running fare total for one breakdown slot.
type bucket struct {
	count int
	total float64
}

func (b *bucket) add(fare float64) {
	b.count++
	b.total += fare
}

func (b *bucket) stat() models.BucketStat {
	s := models.BucketStat{Count: b.count}
	if b.count > 0 {
		s.Avg = b.total / float64(b.count)
	}
	return s
}

// timeOfDayStats segments fares by the local hour of the start time. Trips
// without a usable start time contribute to no bucket.
func timeOfDayStats(trips []models.Trip) models.TimeOfDayStats {
	var morning, afternoon, evening, night bucket
	for _, trip := range trips {
		startedAt, ok := trip.StartedAt()
		if !ok {
			continue
		}
		switch hour := startedAt.Hour(); {
		case hour >= 6 && hour < 12:
			morning.add(trip.Fare)
		case hour >= 12 && hour < 18:
			afternoon.add(trip.Fare)
		case hour >= 18:
			evening.add(trip.Fare)
		default:
			night.add(trip.Fare)
		}
	}
	return models.TimeOfDayStats{
		Morning:   morning.stat(),
		Afternoon: afternoon.stat(),
		Evening:   evening.stat(),
		Night:     night.stat(),
	}
}

// dayOfWeekStats segments fares by weekday, with the same skip rule as the
// time-of-day breakdown.
func dayOfWeekStats(trips []models.Trip) models.DayOfWeekStats {
	var days [7]bucket
	for _, trip := range trips {
		startedAt, ok := trip.StartedAt()
		if !ok {
			continue
		}
		days[int(startedAt.Weekday())].add(trip.Fare)
	}
	return models.DayOfWeekStats{
		Sunday:    days[time.Sunday].stat(),
		Monday:    days[time.Monday].stat(),
		Tuesday:   days[time.Tuesday].stat(),
		Wednesday: days[time.Wednesday].stat(),
		Thursday:  days[time.Thursday].stat(),
		Friday:    days[time.Friday].stat(),
		Saturday:  days[time.Saturday].stat(),
	}
}

// distanceTierStats classifies every trip into exactly one distance tier.
func distanceTierStats(trips []models.Trip) models.DistanceTierStats {
	var short, medium, long bucket
	for _, trip := range trips {
		switch {
		case trip.Distance <= ShortTripMaxKm:
			short.add(trip.Fare)
		case trip.Distance <= MediumTripMaxKm:
			medium.add(trip.Fare)
		default:
			long.add(trip.Fare)
		}
	}
	return models.DistanceTierStats{
		Short:  short.stat(),
		Medium: medium.stat(),
		Long:   long.stat(),
	}
}

// fareDistribution partitions [min, max] into equal-width buckets. When all
// fares are equal the width is zero and every fare lands in bucket 0.
func fareDistribution(fares []float64) []models.FareBucket {
	if len(fares) == 0 {
		return []models.FareBucket{}
	}

	min := stats.Min(fares)
	max := stats.Max(fares)
	width := (max - min) / FareHistogramBuckets

	counts := make([]int, FareHistogramBuckets)
	for _, fare := range fares {
		idx := 0
		if width > 0 {
			idx = int(math.Floor((fare - min) / width))
			if idx > FareHistogramBuckets-1 {
				idx = FareHistogramBuckets - 1
			}
		}
		counts[idx]++
	}

	distribution := make([]models.FareBucket, 0, FareHistogramBuckets)
	for i, count := range counts {
		lo := math.Round(min + float64(i)*width)
		hi := math.Round(min + float64(i+1)*width)
		distribution = append(distribution, models.FareBucket{
			Range:      fmt.Sprintf("%.0f-%.0f", lo, hi),
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(len(fares)) * 100)),
		})
	}
	return distribution
}

// recentTrips returns the newest trips redacted for display: endpoints are
// reduced to a governorate and identities are dropped.
func recentTrips(trips []models.Trip) []models.RecentTrip {
	sorted := make([]models.Trip, len(trips))
	copy(sorted, trips)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > RecentTripsSample {
		sorted = sorted[:RecentTripsSample]
	}

	recent := make([]models.RecentTrip, 0, len(sorted))
	for _, trip := range sorted {
		recent = append(recent, models.RecentTrip{
			Fare:      trip.Fare,
			Distance:  trip.Distance,
			Duration:  trip.Duration,
			StartTime: trip.StartTime,
			From:      governorateOrUnspecified(trip.From),
			To:        governorateOrUnspecified(trip.To),
		})
	}
	return recent
}

func governorateOrUnspecified(endpoint models.Endpoint) string {
	if endpoint.Governorate != "" {
		return endpoint.Governorate
	}
	return unspecifiedGovernorate
}
