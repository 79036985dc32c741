package aggregation

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"analytics-service/internal/analytics/core/domain"
)

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func sampleBuckets() []domain.TimeBucket {
	start := at("2024-01-01T00:00:00Z")
	mk := func(day int, recs ...domain.Record) domain.TimeBucket {
		s := start.AddDate(0, 0, day)
		return domain.TimeBucket{Start: s, End: s.AddDate(0, 0, 1), Records: recs, Count: len(recs)}
	}

	return []domain.TimeBucket{
		mk(0,
			domain.Record{ID: "1", Page: str("/"), Country: str("UA"), ScreenWidth: num(1920), Referrer: str("https://google.com")},
			domain.Record{ID: "2", Page: str("/pricing"), Country: str("DE"), ScreenWidth: num(390), Locale: str("de-DE")},
		),
		mk(1),
		mk(2,
			domain.Record{ID: "3", Page: str("/"), Country: str("UA"), Source: str("newsletter"), Medium: str("email"), Campaign: str("launch")},
			domain.Record{ID: "4", Page: str(""), Language: str("uk")},
		),
	}
}

func TestAggregate_CountsPresentValues(t *testing.T) {
	tally := Aggregate(sampleBuckets())

	assert.Equal(t, map[string]int{"/": 2, "/pricing": 1, "": 1}, tally[domain.DimensionPage])
	assert.Equal(t, map[string]int{"UA": 2, "DE": 1}, tally[domain.DimensionCountry])
	assert.Equal(t, map[string]int{"1920": 1, "390": 1}, tally[domain.DimensionScreenWidth])
	assert.Equal(t, map[string]int{"https://google.com": 1}, tally[domain.DimensionReferrer])
	assert.Equal(t, map[string]int{"de-DE": 1}, tally[domain.DimensionLocale])
	assert.Equal(t, map[string]int{"newsletter": 1}, tally[domain.DimensionSource])
	assert.Equal(t, map[string]int{"email": 1}, tally[domain.DimensionMedium])
	assert.Equal(t, map[string]int{"launch": 1}, tally[domain.DimensionCampaign])
	assert.Equal(t, map[string]int{"uk": 1}, tally[domain.DimensionLanguage])
}

func TestAggregate_EveryTrackedDimensionIsPresent(t *testing.T) {
	tally := Aggregate(nil)

	require.Len(t, tally, len(domain.TrackedDimensions))
	for _, d := range domain.TrackedDimensions {
		assert.NotNil(t, tally[d], "dimension %s", d)
		assert.Empty(t, tally[d])
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	buckets := sampleBuckets()
	assert.Equal(t, Aggregate(buckets), Aggregate(buckets))
}

func TestAggregateConcurrent_MatchesSequential(t *testing.T) {
	var buckets []domain.TimeBucket
	start := at("2024-01-01T00:00:00Z")
	for h := 0; h < 97; h++ {
		var recs []domain.Record
		for i := 0; i < h%7; i++ {
			recs = append(recs, domain.Record{
				ID:          strconv.Itoa(h*10 + i),
				Page:        str("/p/" + strconv.Itoa(i)),
				ScreenWidth: num(320 * (i + 1)),
				Country:     str([]string{"US", "FR", "JP"}[h%3]),
			})
		}
		s := start.Add(time.Duration(h) * time.Hour)
		buckets = append(buckets, domain.TimeBucket{Start: s, End: s.Add(time.Hour), Records: recs, Count: len(recs)})
	}

	want := Aggregate(buckets)
	for _, shards := range []int{0, 1, 2, 3, 8, 500} {
		t.Run("shards="+strconv.Itoa(shards), func(t *testing.T) {
			got, err := AggregateConcurrent(context.Background(), buckets, shards)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestAggregateConcurrent_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AggregateConcurrent(ctx, sampleBuckets(), 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuildSeries(t *testing.T) {
	series := BuildSeries(sampleBuckets())

	assert.Equal(t, []string{"2024-01-01 00:00:00", "2024-01-02 00:00:00", "2024-01-03 00:00:00"}, series.X)
	assert.Equal(t, []int{2, 0, 2}, series.Visits)
}

func TestPipelineHandle(t *testing.T) {
	p := Pipeline{Shards: 4}

	t.Run("empty input", func(t *testing.T) {
		res, err := p.Handle(context.Background(), nil, domain.UnitDay, at("2024-01-01T00:00:00Z"), at("2024-01-03T00:00:00Z"), testNow)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("invalid unit", func(t *testing.T) {
		records := []domain.Record{rec("a", "2024-01-01T10:00:00Z")}
		res, err := p.Handle(context.Background(), records, domain.BucketUnit("decade"), at("2024-01-01T00:00:00Z"), at("2024-01-03T00:00:00Z"), testNow)
		require.ErrorIs(t, err, domain.ErrInvalidWindow)
		assert.Nil(t, res)
	})

	t.Run("series and params", func(t *testing.T) {
		records := []domain.Record{
			{ID: "a", Page: str("/"), CreatedAt: at("2024-01-01T10:00:00Z")},
			{ID: "b", Page: str("/"), CreatedAt: at("2024-01-01T23:59:00Z")},
			{ID: "c", Page: str("/docs"), CreatedAt: at("2024-01-02T00:01:00Z")},
			{ID: "late", Page: str("/late"), CreatedAt: at("2024-01-09T00:00:00Z")},
		}
		res, err := p.Handle(context.Background(), records, domain.UnitDay, at("2024-01-01T00:00:00Z"), at("2024-01-03T00:00:00Z"), testNow)
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.Equal(t, []int{2, 1, 0}, res.Chart.Visits)
		assert.Equal(t, map[string]int{"/": 2, "/docs": 1}, res.Params[domain.DimensionPage])
	})
}
