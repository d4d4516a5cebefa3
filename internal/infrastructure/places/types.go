package places

// Wire-типы ответов places web service API

type autocompleteResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
	Predictions  []prediction `json:"predictions"`
}

type prediction struct {
	PlaceID              string               `json:"place_id"`
	Description          string               `json:"description"`
	StructuredFormatting structuredFormatting `json:"structured_formatting"`
}

type structuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

type detailsResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
	Result       placeDetails `json:"result"`
}

type placeDetails struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Geometry         geometry      `json:"geometry"`
	PhoneNumber      string        `json:"formatted_phone_number,omitempty"`
	Website          string        `json:"website,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	OpeningHours     *openingHours `json:"opening_hours,omitempty"`
	Photos           []photo       `json:"photos,omitempty"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type openingHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// API status codes
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)
