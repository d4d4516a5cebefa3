package domain

import (
	"fmt"
	"math"
)

// MaxPlacePhotos ограничивает количество фотографий, сохраняемых для одного места
const MaxPlacePhotos = 3

// Coordinate - географическая точка (WGS84)
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid проверяет, что координаты конечны и лежат в допустимых диапазонах
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// OpeningHours - опциональные сведения о часах работы места
type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// Place - неизменяемая запись о месте, выбранном или просмотренном пользователем.
// Идентификатор используется как ключ дедупликации в истории поиска.
type Place struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Location  Coordinate `json:"location"`
	Timestamp int64      `json:"timestamp"` // миллисекунды с эпохи

	// Поля обогащения: присутствуют только если их вернул details-запрос.
	// Не влияют на дедупликацию и порядок в истории.
	Phone        string        `json:"phone,omitempty"`
	Website      string        `json:"website,omitempty"`
	Rating       float64       `json:"rating,omitempty"`
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`
	Photos       []string      `json:"photos,omitempty"`
}

// NewPlace создает Place с валидацией идентичности и координат.
// Рейтинг и фотографии добавляются отдельно через WithEnrichment.
func NewPlace(id, name, address string, loc Coordinate, timestampMs int64) (Place, error) {
	if id == "" {
		return Place{}, fmt.Errorf("place id cannot be empty")
	}
	if !loc.Valid() {
		return Place{}, fmt.Errorf("invalid coordinates: lat=%f lon=%f", loc.Lat, loc.Lon)
	}

	return Place{
		ID:        id,
		Name:      name,
		Address:   address,
		Location:  loc,
		Timestamp: timestampMs,
	}, nil
}

// WithEnrichment возвращает копию места с заполненными опциональными полями.
// Рейтинг зажимается в [0, 5], фотографии обрезаются до MaxPlacePhotos.
func (p Place) WithEnrichment(phone, website string, rating float64, hours *OpeningHours, photos []string) Place {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	if len(photos) > MaxPlacePhotos {
		photos = photos[:MaxPlacePhotos]
	}

	p.Phone = phone
	p.Website = website
	p.Rating = rating
	p.OpeningHours = hours
	p.Photos = photos
	return p
}

// Candidate - один вариант автодополнения, возвращенный поисковым провайдером
type Candidate struct {
	ID            string `json:"id"`
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text,omitempty"`
}
