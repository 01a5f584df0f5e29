package models

// FareBreakdown itemizes an estimated taxi fare in yen.
type FareBreakdown struct {
	BaseFare         int `json:"base_fare"`
	DistanceFare     int `json:"distance_fare"`
	TimeFare         int `json:"time_fare"`
	NightSurcharge   int `json:"night_surcharge"`
	WeatherSurcharge int `json:"weather_surcharge"`
	TotalFare        int `json:"total_fare"`
}

// FareQuote is a fare estimate between a station and a resolved destination.
type FareQuote struct {
	Station     Station
	Destination GeocodeResult
	DistanceKm  float64
	Fare        FareBreakdown
}
