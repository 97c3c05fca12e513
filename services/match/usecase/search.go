package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/movever/movever/internal/pkg/logger"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/internal/utils"
	"github.com/movever/movever/services/geo"
	"github.com/movever/movever/services/match/scorer"
)

// Reverse-direction weights. Scoring a pending request against a trip uses a
// different shape than the forward search: location similarity carries more
// weight, capacity is a hard constraint, and there is no route boost.
const (
	reverseLocationWeight = 40.0
	reverseDateWeight     = 20.0
	reverseSpaceWeight    = 20.0
	reverseVerifiedBonus  = 10.0
)

// Reason strings appear when a signal crosses its confidence threshold
const (
	simReasonThreshold  = 0.8
	dateReasonThreshold = 0.75
	timeReasonThreshold = 0.9
)

// SearchTrips ranks active trips against a business's search filter. Each
// candidate accumulates weighted string, route-proximity, date, time,
// capacity and verification signals plus human-readable reasons; candidates
// below the relevance floor are dropped unless a reason already registered.
func (uc *MatchUC) SearchTrips(ctx context.Context, filter models.SearchFilter) ([]models.RankedTrip, error) {
	trips, err := uc.repo.GetActiveTrips(ctx, filter.VerifiedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to load active trips: %w", err)
	}

	gc := newGeoCache(uc.geo)

	var searchOrigin, searchDest *geo.Place
	if filter.Origin != "" {
		searchOrigin = gc.geocode(ctx, filter.Origin)
	}
	if filter.Destination != "" {
		searchDest = gc.geocode(ctx, filter.Destination)
	}

	ranked := make([]models.RankedTrip, 0, len(trips))
	for i := range trips {
		r := uc.scoreTrip(ctx, &trips[i], filter, searchOrigin, searchDest, gc)
		if r.RawScore() >= uc.cfg.Match.MinTripScore || len(r.MatchReasons) > 0 {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RawScore() != ranked[j].RawScore() {
			return ranked[i].RawScore() > ranked[j].RawScore()
		}
		return ranked[i].Trip.CreatedAt.After(ranked[j].Trip.CreatedAt)
	})

	return ranked, nil
}

func (uc *MatchUC) scoreTrip(
	ctx context.Context,
	trip *models.TripCandidate,
	filter models.SearchFilter,
	searchOrigin, searchDest *geo.Place,
	gc *geoCache,
) models.RankedTrip {
	w := uc.cfg.Match
	var raw float64
	reasons := []string{}
	originMatched := false
	destMatched := false

	if filter.Origin != "" {
		sim := scorer.StringSimilarity(trip.Origin, filter.Origin)
		raw += sim * w.OriginWeight
		if sim >= simReasonThreshold {
			originMatched = true
			reasons = append(reasons, fmt.Sprintf("Origin match: %s", trip.Origin))
		}
	}
	if filter.Destination != "" {
		sim := scorer.StringSimilarity(trip.Destination, filter.Destination)
		raw += sim * w.DestWeight
		if sim >= simReasonThreshold {
			destMatched = true
			reasons = append(reasons, fmt.Sprintf("Destination match: %s", trip.Destination))
		}
	}

	// A name match misses points that lie along the route without being a
	// named endpoint, so unmatched directions get a route-proximity check.
	uc.applyRouteBoost(ctx, trip, filter, searchOrigin, searchDest, originMatched, destMatched, &raw, &reasons, gc)

	if !filter.Date.IsZero() {
		dateVal := scorer.DateProximity(trip.DepartureDate, filter.Date, w.FlexDays)
		raw += dateVal * w.DateWeight
		if dateVal >= dateReasonThreshold {
			reasons = append(reasons, "Date within range")
		}

		// Time only means something once the day is already a near-match
		if filter.Time != "" && dateVal > 0.8 {
			timeVal := scorer.TimeProximity(filter.Time, trip.DepartureTime)
			raw += timeVal * w.TimeWeight
			if timeVal >= timeReasonThreshold {
				reasons = append(reasons, "Time match")
			}
		}
	}

	if filter.Space != "" {
		check := scorer.SpaceCompatibility(filter.Space, string(trip.AvailableSpace))
		if check.Fits {
			raw += check.Score * w.SpaceWeight
			reasons = append(reasons, fmt.Sprintf("Space: %s", trip.AvailableSpace))
		}
	}

	if trip.TravelerVerified {
		raw += w.VerifiedBonus
		reasons = append(reasons, "Verified traveler")
	}

	// Boosts can push the raw sum past the nominal weight total; the raw
	// value keeps the sort order, the reported score is capped for display.
	reported := raw
	if raw > 30 {
		reported = math.Min(99, raw)
	}

	r := models.RankedTrip{Trip: *trip, MatchReasons: reasons}
	r.SetScores(raw, reported)
	return r
}

// applyRouteBoost awards a fixed boost per direction when the searched point
// lies within the route buffer of the trip's computed route, but only for
// directions where the string signal did not already register. Resolver
// failures degrade the candidate back to text-only scoring.
func (uc *MatchUC) applyRouteBoost(
	ctx context.Context,
	trip *models.TripCandidate,
	filter models.SearchFilter,
	searchOrigin, searchDest *geo.Place,
	originMatched, destMatched bool,
	raw *float64,
	reasons *[]string,
	gc *geoCache,
) {
	needOrigin := searchOrigin != nil && !originMatched
	needDest := searchDest != nil && !destMatched
	if !needOrigin && !needDest {
		return
	}

	tripOrigin := gc.geocode(ctx, trip.Origin)
	tripDest := gc.geocode(ctx, trip.Destination)
	if tripOrigin == nil || tripDest == nil {
		return
	}

	route, err := uc.geo.Route(ctx, tripOrigin.Coords, tripDest.Coords)
	if err != nil {
		logger.Warn("route lookup failed, scoring candidate on text signals only", logrus.Fields{
			"trip_id": trip.ID,
			"error":   err.Error(),
		})
		return
	}

	buffer := uc.cfg.Geo.RouteBufferKm
	if needOrigin && geo.PointToPolylineKm(searchOrigin.Coords, route) <= buffer {
		*raw += uc.cfg.Match.RouteBoost
		*reasons = append(*reasons, fmt.Sprintf("Pickup point on route (%s)", filter.Origin))
	}
	if needDest && geo.PointToPolylineKm(searchDest.Coords, route) <= buffer {
		*raw += uc.cfg.Match.RouteBoost
		*reasons = append(*reasons, fmt.Sprintf("Dropoff point on route (%s)", filter.Destination))
	}
}

// FindRequestsForTrip ranks pending delivery requests against a trip. A
// package that does not fit the trip's space disqualifies the request
// outright: carrying an oversized package is a hard constraint, not a
// preference.
func (uc *MatchUC) FindRequestsForTrip(ctx context.Context, tripID string) ([]models.RankedRequest, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	requests, err := uc.repo.GetPendingRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending requests: %w", err)
	}

	flexDays := uc.cfg.Match.FlexDays
	ranked := make([]models.RankedRequest, 0, len(requests))
	for i := range requests {
		req := &requests[i]
		var score float64
		reasons := []string{}

		originSim := scorer.StringSimilarity(req.Origin, trip.Origin)
		destSim := scorer.StringSimilarity(req.Destination, trip.Destination)
		score += (originSim + destSim) * reverseLocationWeight
		if originSim >= simReasonThreshold {
			reasons = append(reasons, "Origin match")
		}
		if destSim >= simReasonThreshold {
			reasons = append(reasons, "Destination match")
		}

		if !req.DeliveryDate.IsZero() {
			dateVal := scorer.DateProximity(req.DeliveryDate, trip.DepartureDate, flexDays)
			score += dateVal * reverseDateWeight
			if dateVal >= 0.7 {
				reasons = append(reasons, "Date compatible")
			}
		}

		check := scorer.SpaceCompatibility(string(req.PackageSize), string(trip.AvailableSpace))
		if check.Fits {
			score += check.Score * reverseSpaceWeight
			reasons = append(reasons, "Package fits")
		} else {
			score = 0
		}

		if req.BusinessVerified {
			score += reverseVerifiedBonus
			reasons = append(reasons, "Verified business")
		}

		if score < uc.cfg.Match.MinRequestScore {
			continue
		}

		ranked = append(ranked, models.RankedRequest{
			Request:        *req,
			RelevanceScore: score,
			MatchReasons:   reasons,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RelevanceScore != ranked[j].RelevanceScore {
			return ranked[i].RelevanceScore > ranked[j].RelevanceScore
		}
		return ranked[i].Request.CreatedAt.After(ranked[j].Request.CreatedAt)
	})

	return ranked, nil
}

// geoCache memoizes geocoding results, including misses, for the duration of
// one ranking call so each place name costs at most one resolver round trip.
type geoCache struct {
	resolver geo.Resolver
	places   map[string]*geo.Place
}

func newGeoCache(resolver geo.Resolver) *geoCache {
	return &geoCache{resolver: resolver, places: make(map[string]*geo.Place)}
}

// geocode returns nil when the place cannot be resolved; callers treat that
// as a degraded candidate rather than an error.
func (c *geoCache) geocode(ctx context.Context, name string) *geo.Place {
	key := utils.NormalizeText(name)
	if place, ok := c.places[key]; ok {
		return place
	}

	place, err := c.resolver.Geocode(ctx, name)
	if err != nil {
		logger.Warn("geocoding failed", logrus.Fields{
			"place": name,
			"error": err.Error(),
		})
		place = nil
	}

	c.places[key] = place
	return place
}
