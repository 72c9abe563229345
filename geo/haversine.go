// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package geo implements great-circle distance and radius predicates.
package geo

import "math"

// EarthRadiusKm is the mean radius used by Distance.
const EarthRadiusKm = 6372.8

type Point struct {
	Lat float64
	Lon float64
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the haversine distance in kilometers between two
// latitude/longitude pairs given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)

	a := math.Pow(math.Sin(dLat/2), 2) + math.Cos(phi1)*math.Cos(phi2)*math.Pow(math.Sin(dLon/2), 2)
	// rounding can push a past 1 for antipodal points
	a = math.Min(1, a)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// DistanceTo is Distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return Distance(p.Lat, p.Lon, q.Lat, q.Lon)
}

// Within returns a predicate accepting points no farther than radiusKm from center.
func Within(center Point, radiusKm float64) func(Point) bool {
	return func(p Point) bool {
		return center.DistanceTo(p) <= radiusKm
	}
}

// ValidLatitude reports whether lat lies in the open interval (-90, 90).
func ValidLatitude(lat float64) bool {
	return lat > -90 && lat < 90
}

// ValidLongitude reports whether lon lies in [-180, 180].
func ValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}
