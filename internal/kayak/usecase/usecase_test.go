package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbop543/BrokenKayak/internal/kayak/cache"
	"github.com/kbop543/BrokenKayak/internal/kayak/directory"
	"github.com/kbop543/BrokenKayak/internal/kayak/entity"
	"github.com/kbop543/BrokenKayak/internal/pkg/pkgerror"
)

func newTestUsecase() *Usecase {
	return New(Dependency{
		Directory: directory.New(),
		Cache:     cache.New(CloneItinerariesOutput),
		CacheTTL:  time.Minute,
	})
}

func uploadFlights(t *testing.T, u *Usecase, lines ...string) {
	t.Helper()
	out, err := u.UploadFlights(context.Background(), strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.Equal(t, len(lines), out.Records)
}

func searchDate(t *testing.T) time.Time {
	t.Helper()
	date, err := time.Parse(entity.DateLayout, "2024-01-01")
	require.NoError(t, err)
	return date
}

func TestItinerariesSearchAndCache(t *testing.T) {
	u := newTestUsecase()
	uploadFlights(t, u,
		"AC101,2024-01-01 10:00,2024-01-01 12:00,Air Canada,AAA,BBB,100.00",
		"WS202,2024-01-01 17:00,2024-01-01 19:00,WestJet,BBB,CCC,50.00",
	)

	in := ItinerariesInput{Date: searchDate(t), Origin: "AAA", Destination: "CCC"}

	first, err := u.Itineraries(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, first.Itineraries, 1)
	assert.False(t, first.CacheHit)
	assert.Equal(t, entity.Money(15000), first.Itineraries[0].TotalPrice())
	assert.Equal(t, "2024-01-01", first.SearchCriteria.Date)

	second, err := u.Itineraries(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Itineraries, second.Itineraries)
}

func TestItinerariesSortedByCost(t *testing.T) {
	u := newTestUsecase()
	uploadFlights(t, u,
		"AC900,2024-01-01 08:00,2024-01-01 10:00,Air Canada,AAA,BBB,200.00",
		"WS100,2024-01-01 09:00,2024-01-01 12:00,WestJet,AAA,BBB,100.00",
	)

	out, err := u.Itineraries(context.Background(), ItinerariesInput{
		Date:        searchDate(t),
		Origin:      "AAA",
		Destination: "BBB",
		SortBy:      entity.SortByCost,
	})
	require.NoError(t, err)
	require.Len(t, out.Itineraries, 2)
	assert.Equal(t, entity.Money(10000), out.Itineraries[0].TotalPrice())
	assert.Equal(t, entity.Money(20000), out.Itineraries[1].TotalPrice())
	// Discovery positions survive the ranking.
	assert.Equal(t, 2, out.Itineraries[0].Position)
	assert.Equal(t, 1, out.Itineraries[1].Position)
}

func TestItinerariesSortOrdersCachedSeparately(t *testing.T) {
	u := newTestUsecase()
	uploadFlights(t, u,
		"AC900,2024-01-01 08:00,2024-01-01 10:00,Air Canada,AAA,BBB,200.00",
		"WS100,2024-01-01 09:00,2024-01-01 12:00,WestJet,AAA,BBB,100.00",
	)

	base := ItinerariesInput{Date: searchDate(t), Origin: "AAA", Destination: "BBB"}

	unsorted, err := u.Itineraries(context.Background(), base)
	require.NoError(t, err)
	assert.Equal(t, 1, unsorted.Itineraries[0].Position)

	byCost := base
	byCost.SortBy = entity.SortByCost
	sorted, err := u.Itineraries(context.Background(), byCost)
	require.NoError(t, err)
	assert.False(t, sorted.CacheHit)
	assert.Equal(t, 2, sorted.Itineraries[0].Position)
}

func TestItinerariesAirportCaseNotCollapsedInCache(t *testing.T) {
	u := newTestUsecase()
	uploadFlights(t, u,
		"AC900,2024-01-01 08:00,2024-01-01 10:00,Air Canada,AAA,BBB,200.00",
	)

	lower, err := u.Itineraries(context.Background(), ItinerariesInput{
		Date:        searchDate(t),
		Origin:      "aaa",
		Destination: "bbb",
	})
	require.NoError(t, err)
	// Lookups are case-sensitive, lower-case codes match nothing.
	assert.Empty(t, lower.Itineraries)

	upper, err := u.Itineraries(context.Background(), ItinerariesInput{
		Date:        searchDate(t),
		Origin:      "AAA",
		Destination: "BBB",
	})
	require.NoError(t, err)
	assert.False(t, upper.CacheHit)
	assert.Len(t, upper.Itineraries, 1)
}

func TestLateCacheWriteNotServedAfterUpload(t *testing.T) {
	u := newTestUsecase()
	uploadFlights(t, u,
		"AC900,2024-01-01 08:00,2024-01-01 10:00,Air Canada,AAA,BBB,200.00",
	)

	in := ItinerariesInput{Date: searchDate(t), Origin: "AAA", Destination: "BBB"}

	first, err := u.Itineraries(context.Background(), in)
	require.NoError(t, err)
	staleKey := buildCacheKey(u.generation, "2024-01-01", "AAA", "BBB", entity.SortByNone)

	uploadFlights(t, u,
		"WS100,2024-01-01 09:00,2024-01-01 12:00,WestJet,AAA,BBB,100.00",
	)

	// A search concluded against the old network may store its result
	// after the upload's purge; the old-generation key keeps it out of
	// reach of every later query.
	u.cache.Set(staleKey, CloneItinerariesOutput(first), time.Minute)

	out, err := u.Itineraries(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, out.CacheHit)
	assert.Len(t, out.Itineraries, 2)
}

func TestFlightsBucketOrderAndDateFilter(t *testing.T) {
	u := newTestUsecase()
	uploadFlights(t, u,
		"AC900,2024-01-01 08:00,2024-01-01 10:00,Air Canada,AAA,BBB,200.00",
		"WS100,2024-01-02 09:00,2024-01-02 12:00,WestJet,AAA,BBB,100.00",
		"AC901,2024-01-01 13:00,2024-01-01 15:00,Air Canada,AAA,BBB,150.00",
	)

	out, err := u.Flights(context.Background(), FlightsInput{
		Date:        searchDate(t),
		Origin:      "AAA",
		Destination: "BBB",
	})
	require.NoError(t, err)
	require.Len(t, out.Flights, 2)
	assert.Equal(t, "AC900", out.Flights[0].Number)
	assert.Equal(t, "AC901", out.Flights[1].Number)
}

func TestFlightsUnknownAirportsEmpty(t *testing.T) {
	u := newTestUsecase()

	out, err := u.Flights(context.Background(), FlightsInput{
		Date:        searchDate(t),
		Origin:      "XXX",
		Destination: "YYY",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Flights)
}

func TestClientLookup(t *testing.T) {
	u := newTestUsecase()
	_, err := u.UploadClients(context.Background(), strings.NewReader(
		"Doe,Jane,jane@email.com,22 Second St,1111222233334444,2023-06-30",
	))
	require.NoError(t, err)

	out, err := u.Client(context.Background(), ClientInput{Email: "jane@email.com"})
	require.NoError(t, err)
	assert.Equal(t, "Doe", out.Client.LastName)
}

func TestClientNotFound(t *testing.T) {
	u := newTestUsecase()

	_, err := u.Client(context.Background(), ClientInput{Email: "nobody@email.com"})
	require.Error(t, err)
	assert.Equal(t, pkgerror.CodeNotFound, pkgerror.CodeOf(err))
}

func TestUploadFlightsMalformedAdmitsNothing(t *testing.T) {
	u := newTestUsecase()

	_, err := u.UploadFlights(context.Background(), strings.NewReader(
		"AC900,2024-01-01 08:00,2024-01-01 10:00,Air Canada,AAA,BBB,200.00\n"+
			"WS100,2024-01-01 09:00,2024-01-01 12:00,WestJet,AAA,BBB,bad",
	))
	require.Error(t, err)
	assert.Equal(t, pkgerror.CodeInvalidInput, pkgerror.CodeOf(err))

	out, err := u.Flights(context.Background(), FlightsInput{
		Date:        searchDate(t),
		Origin:      "AAA",
		Destination: "BBB",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Flights)
}

func TestUploadFlightsPurgesCachedResults(t *testing.T) {
	u := newTestUsecase()
	uploadFlights(t, u,
		"AC900,2024-01-01 08:00,2024-01-01 10:00,Air Canada,AAA,BBB,200.00",
	)

	in := ItinerariesInput{Date: searchDate(t), Origin: "AAA", Destination: "BBB"}

	first, err := u.Itineraries(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, first.Itineraries, 1)

	uploadFlights(t, u,
		"WS100,2024-01-01 09:00,2024-01-01 12:00,WestJet,AAA,BBB,100.00",
	)

	second, err := u.Itineraries(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, second.CacheHit)
	assert.Len(t, second.Itineraries, 2)
}

func TestUploadClientsDuplicateEmailLastWins(t *testing.T) {
	u := newTestUsecase()
	_, err := u.UploadClients(context.Background(), strings.NewReader(
		"Doe,Jane,jane@email.com,22 Second St,1111222233334444,2023-06-30\n"+
			"Smith,Jane,jane@email.com,9 Other Rd,5555666677778888,2025-12-31",
	))
	require.NoError(t, err)

	out, err := u.Client(context.Background(), ClientInput{Email: "jane@email.com"})
	require.NoError(t, err)
	assert.Equal(t, "Smith", out.Client.LastName)
}
