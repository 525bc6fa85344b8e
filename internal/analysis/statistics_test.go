package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxifair/taxifair-backend-go/internal/models"
)

func TestAggregateEmptyPool(t *testing.T) {
	result := Aggregate(nil)

	assert.Equal(t, 0, result.SimilarTripsCount)
	assert.Equal(t, 0.0, result.AverageFare)
	assert.Equal(t, models.FareRange{}, result.FareRange)
	assert.Equal(t, models.TimeOfDayStats{}, result.TimeBasedAverage)
	assert.Equal(t, models.DayOfWeekStats{}, result.DayBasedAverage)
	assert.Equal(t, models.DistanceTierStats{}, result.DistanceBasedAverage)
	assert.Empty(t, result.FareDistribution)
	assert.Empty(t, result.RecentTrips)
}

func TestAggregateThreeTripsAcrossDayParts(t *testing.T) {
	// 2025-03-10 is a Monday.
	trips := []models.Trip{
		{Fare: 30, Distance: 10, StartTime: "2025-03-10T08:00:00Z"},
		{Fare: 40, Distance: 10, StartTime: "2025-03-10T13:00:00Z"},
		{Fare: 50, Distance: 10, StartTime: "2025-03-10T19:30:00Z"},
	}

	result := Aggregate(trips)

	assert.Equal(t, 3, result.SimilarTripsCount)
	assert.Equal(t, 40.0, result.AverageFare)
	assert.Equal(t, models.FareRange{Min: 30, Max: 50}, result.FareRange)

	tb := result.TimeBasedAverage
	assert.Equal(t, models.BucketStat{Count: 1, Avg: 30}, tb.Morning)
	assert.Equal(t, models.BucketStat{Count: 1, Avg: 40}, tb.Afternoon)
	assert.Equal(t, models.BucketStat{Count: 1, Avg: 50}, tb.Evening)
	assert.Equal(t, models.BucketStat{Count: 0, Avg: 0}, tb.Night)

	assert.Equal(t, models.BucketStat{Count: 3, Avg: 40}, result.DayBasedAverage.Monday)
	assert.Equal(t, models.BucketStat{}, result.DayBasedAverage.Friday)

	// All three trips are 10 km: exactly one tier takes them all.
	assert.Equal(t, models.BucketStat{Count: 3, Avg: 40}, result.DistanceBasedAverage.Medium)
	assert.Equal(t, models.BucketStat{}, result.DistanceBasedAverage.Short)
	assert.Equal(t, models.BucketStat{}, result.DistanceBasedAverage.Long)
}

func TestAggregateSkipsTripsWithoutStartTime(t *testing.T) {
	trips := []models.Trip{
		{Fare: 30, Distance: 4, StartTime: "2025-03-10T08:00:00Z"},
		{Fare: 40, Distance: 8},
		{Fare: 50, Distance: 20, StartTime: "not-a-timestamp"},
	}

	result := Aggregate(trips)

	tb := result.TimeBasedAverage
	timeBucketTotal := tb.Morning.Count + tb.Afternoon.Count + tb.Evening.Count + tb.Night.Count
	assert.Equal(t, 1, timeBucketTotal, "only the trip with a parseable start time is segmented")

	db := result.DayBasedAverage
	dayBucketTotal := db.Sunday.Count + db.Monday.Count + db.Tuesday.Count +
		db.Wednesday.Count + db.Thursday.Count + db.Friday.Count + db.Saturday.Count
	assert.Equal(t, 1, dayBucketTotal)

	// Distance tiers still classify every trip.
	dt := result.DistanceBasedAverage
	assert.Equal(t, 3, dt.Short.Count+dt.Medium.Count+dt.Long.Count)
	assert.Equal(t, 1, dt.Short.Count)
	assert.Equal(t, 1, dt.Medium.Count)
	assert.Equal(t, 1, dt.Long.Count)
}

func TestAggregateDistanceTierBoundaries(t *testing.T) {
	trips := []models.Trip{
		{Fare: 10, Distance: 5},  // short, inclusive boundary
		{Fare: 20, Distance: 15}, // medium, inclusive boundary
		{Fare: 30, Distance: 15.1},
	}

	dt := Aggregate(trips).DistanceBasedAverage
	assert.Equal(t, 1, dt.Short.Count)
	assert.Equal(t, 1, dt.Medium.Count)
	assert.Equal(t, 1, dt.Long.Count)
}

func TestFareDistribution(t *testing.T) {
	t.Run("counts sum to the number of fares", func(t *testing.T) {
		var trips []models.Trip
		for i := 0; i < 25; i++ {
			trips = append(trips, models.Trip{Fare: float64(10 + i*3), Distance: 10})
		}

		dist := Aggregate(trips).FareDistribution
		require.Len(t, dist, FareHistogramBuckets)

		total := 0
		for _, b := range dist {
			total += b.Count
		}
		assert.Equal(t, 25, total)
	})

	t.Run("maximum fare lands in the last bucket", func(t *testing.T) {
		trips := []models.Trip{
			{Fare: 10, Distance: 10},
			{Fare: 90, Distance: 10},
		}

		dist := Aggregate(trips).FareDistribution
		require.Len(t, dist, FareHistogramBuckets)
		assert.Equal(t, 1, dist[0].Count)
		assert.Equal(t, 1, dist[FareHistogramBuckets-1].Count)
	})

	t.Run("all fares equal collapses into bucket zero", func(t *testing.T) {
		trips := []models.Trip{
			{Fare: 25, Distance: 10},
			{Fare: 25, Distance: 10},
			{Fare: 25, Distance: 10},
		}

		dist := Aggregate(trips).FareDistribution
		require.Len(t, dist, FareHistogramBuckets)
		assert.Equal(t, 3, dist[0].Count)
		assert.Equal(t, 100, dist[0].Percentage)
		for _, b := range dist[1:] {
			assert.Equal(t, 0, b.Count)
		}
	})
}

func TestAggregateAverageFareRounded(t *testing.T) {
	trips := []models.Trip{
		{Fare: 10, Distance: 10},
		{Fare: 10, Distance: 10},
		{Fare: 20, Distance: 10},
	}
	assert.Equal(t, 13.33, Aggregate(trips).AverageFare)
}

func TestRecentTripsSampleRedacted(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	var trips []models.Trip
	for i := 0; i < 15; i++ {
		trips = append(trips, models.Trip{
			ID:        fmt.Sprintf("trip-%d", i),
			Fare:      float64(20 + i),
			Distance:  10,
			From:      models.Endpoint{Lat: 30.05, Lng: 31.24, Name: "home", Governorate: "Cairo"},
			To:        models.Endpoint{Lat: 30.01, Lng: 31.20, Name: "work"},
			UserID:    "user-42",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	recent := Aggregate(trips).RecentTrips
	require.Len(t, recent, RecentTripsSample)

	// Newest first: the last submitted trip leads the sample.
	assert.Equal(t, 34.0, recent[0].Fare)
	assert.Equal(t, 25.0, recent[9].Fare)

	for _, r := range recent {
		assert.Equal(t, "Cairo", r.From)
		assert.Equal(t, "unspecified", r.To)
	}
}
