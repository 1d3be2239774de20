package matching

import (
	"math"
	"testing"

	"tradehub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func contractorAt(id int64, lat, lon float64) domain.User {
	return domain.User{
		ID:        id,
		Role:      domain.RoleSubcontractor,
		Latitude:  ptr(lat),
		Longitude: ptr(lon),
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	// London -> Birmingham, roughly 163 km
	d := Haversine(51.5074, -0.1278, 52.4862, -1.8904)
	assert.InDelta(t, 163, d, 3)
}

func TestHaversine_ZeroDistance(t *testing.T) {
	d := Haversine(51.5074, -0.1278, 51.5074, -0.1278)
	assert.InDelta(t, 0, d, 0.0001)
}

func TestFindMatches_RanksByDistance(t *testing.T) {
	job := &domain.Job{ID: 1, Latitude: ptr(51.5074), Longitude: ptr(-0.1278)}
	candidates := []domain.User{
		contractorAt(1, 52.4862, -1.8904), // Birmingham, ~163 km
		contractorAt(2, 51.5155, -0.1420), // ~1.3 km
		contractorAt(3, 51.5520, -0.2220), // ~8 km
	}

	matches, err := FindMatches(job, candidates, 0, 0)

	assert.NoError(t, err)
	assert.Len(t, matches, 2) // Birmingham is beyond the default 100 km
	assert.Equal(t, int64(2), matches[0].Contractor.ID)
	assert.Equal(t, int64(3), matches[1].Contractor.ID)
	assert.Less(t, matches[0].DistanceKm, matches[1].DistanceKm)
}

func TestFindMatches_SkipsCandidatesWithoutCoordinates(t *testing.T) {
	job := &domain.Job{ID: 1, Latitude: ptr(51.5074), Longitude: ptr(-0.1278)}
	noCoords := domain.User{ID: 9, Role: domain.RoleSubcontractor}
	candidates := []domain.User{
		noCoords,
		contractorAt(2, 51.5155, -0.1420),
	}

	matches, err := FindMatches(job, candidates, 100, 50)

	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, int64(2), matches[0].Contractor.ID)
}

func TestFindMatches_BoundaryIsInclusive(t *testing.T) {
	job := &domain.Job{ID: 1, Latitude: ptr(51.5074), Longitude: ptr(-0.1278)}
	c := contractorAt(7, 51.5520, -0.2220)
	exact := Haversine(*job.Latitude, *job.Longitude, *c.Latitude, *c.Longitude)

	matches, err := FindMatches(job, []domain.User{c}, exact, 50)

	assert.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestFindMatches_LimitCapsResults(t *testing.T) {
	job := &domain.Job{ID: 1, Latitude: ptr(51.5074), Longitude: ptr(-0.1278)}
	candidates := []domain.User{
		contractorAt(1, 51.5155, -0.1420),
		contractorAt(2, 51.5520, -0.2220),
		contractorAt(3, 51.4975, -0.1105),
	}

	matches, err := FindMatches(job, candidates, 100, 2)

	assert.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestFindMatches_JobWithoutCoordinates(t *testing.T) {
	job := &domain.Job{ID: 1}

	_, err := FindMatches(job, []domain.User{contractorAt(1, 51.5, -0.1)}, 100, 50)

	assert.ErrorIs(t, err, ErrInvalidLocation)
}

func TestFindMatches_RoundsToOneDecimal(t *testing.T) {
	job := &domain.Job{ID: 1, Latitude: ptr(51.5074), Longitude: ptr(-0.1278)}
	c := contractorAt(1, 51.5155, -0.1420)

	matches, err := FindMatches(job, []domain.User{c}, 100, 50)

	assert.NoError(t, err)
	rounded := matches[0].DistanceKm
	assert.Equal(t, math.Round(rounded*10)/10, rounded)
}
