package entities

import "time"

type Location struct {
	Lat float64
	Lon float64
}

func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}

// DriverLocation это последняя известная точка водителя.
// История не хранится: каждое обновление целиком перезаписывает документ.
type DriverLocation struct {
	DriverID  string
	Location  Location
	UpdatedAt time.Time
}
