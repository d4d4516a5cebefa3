package domain

// PlaceDetails - ответ details-запроса внешнего провайдера до нормализации.
// Опциональные поля могут отсутствовать; нормализация в Place происходит
// в поисковом use case.
type PlaceDetails struct {
	PlaceID          string
	Name             string
	FormattedAddress string
	Location         Coordinate
	Phone            string
	Website          string
	Rating           *float64
	OpeningHours     *OpeningHours
	PhotoURLs        []string
}
