package screens

import "math"

const (
	regionDelta   = 0.05
	earthRadiusKm = 6371.0
)

type Region struct {
	Latitude       float64
	Longitude      float64
	LatitudeDelta  float64
	LongitudeDelta float64
}

type Marker struct {
	Title     string
	Latitude  float64
	Longitude float64
}

type MapView struct {
	Region     Region
	Markers    []Marker
	DistanceKm float64
}

type MapController struct{}

func NewMapController() *MapController {
	return &MapController{}
}

// View centres the region on the origin and marks both ends of the route.
func (c *MapController) View(p MapParams) MapView {
	return MapView{
		Region: Region{
			Latitude:       p.Origin.Latitude,
			Longitude:      p.Origin.Longitude,
			LatitudeDelta:  regionDelta,
			LongitudeDelta: regionDelta,
		},
		Markers: []Marker{
			{Title: p.Origin.Nome, Latitude: p.Origin.Latitude, Longitude: p.Origin.Longitude},
			{Title: p.Destination.Nome, Latitude: p.Destination.Latitude, Longitude: p.Destination.Longitude},
		},
		DistanceKm: haversineKm(p.Origin.Latitude, p.Origin.Longitude, p.Destination.Latitude, p.Destination.Longitude),
	}
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
