package matching

import (
	"math"
	"sort"

	"tradehub/internal/domain"
)

const (
	earthRadiusKm = 6371

	DefaultMaxDistanceKm = 100
	DefaultLimit         = 50
)

type Match struct {
	Contractor domain.User `json:"contractor"`
	DistanceKm float64     `json:"distance_km"`
}

// Haversine returns the great-circle distance in kilometres between two
// coordinate pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FindMatches ranks candidates by distance from the job. Candidates without
// coordinates are skipped; candidates at exactly maxDistanceKm are included.
// Ties keep input order. Pure compute, no side effects.
func FindMatches(job *domain.Job, candidates []domain.User, maxDistanceKm float64, limit int) ([]Match, error) {
	if !job.HasCoordinates() {
		return nil, ErrInvalidLocation
	}
	if maxDistanceKm <= 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if c.Latitude == nil || c.Longitude == nil {
			continue
		}
		d := Haversine(*job.Latitude, *job.Longitude, *c.Latitude, *c.Longitude)
		if d > maxDistanceKm {
			continue
		}
		matches = append(matches, Match{Contractor: c, DistanceKm: d})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	// Round for display only after ranking and the cutoff have used the
	// exact distance.
	for i := range matches {
		matches[i].DistanceKm = math.Round(matches[i].DistanceKm*10) / 10
	}
	return matches, nil
}
