package inbound

type ClientResponse struct {
	LastName         string `json:"last_name"`
	FirstNames       string `json:"first_names"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	CreditCardNumber string `json:"credit_card_number"`
	ExpiryDate       string `json:"expiry_date"`
	Formatted        string `json:"formatted"`
}

type FlightsResponse struct {
	SearchCriteria SearchCriteriaResponse `json:"search_criteria"`
	Flights        []FlightResponse       `json:"flights"`
}

type SearchCriteriaResponse struct {
	Date        string `json:"date"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type FlightResponse struct {
	Number      string `json:"number"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Airline     string `json:"airline"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Price       string `json:"price"`
	Formatted   string `json:"formatted"`
}

type ItinerariesResponse struct {
	SearchCriteria SearchCriteriaResponse `json:"search_criteria"`
	Metadata       MetadataResponse       `json:"metadata"`
	Itineraries    []ItineraryResponse    `json:"itineraries"`
}

type MetadataResponse struct {
	TotalResults int   `json:"total_results"`
	SearchTimeMs int64 `json:"search_time_ms"`
	CacheHit     bool  `json:"cache_hit"`
}

type ItineraryResponse struct {
	Position      int           `json:"position"`
	Legs          []LegResponse `json:"legs"`
	TotalPrice    string        `json:"total_price"`
	TotalDuration string        `json:"total_duration"`
	Formatted     string        `json:"formatted"`
}

type LegResponse struct {
	Number      string `json:"number"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Airline     string `json:"airline"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Formatted   string `json:"formatted"`
}

type UploadResponse struct {
	Records int `json:"records"`
}
