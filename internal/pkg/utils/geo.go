package utils

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет валидность радиуса поиска (50 м - 50 км)
func ValidateRadius(radiusMeters int) bool {
	return radiusMeters >= 50 && radiusMeters <= 50000
}
