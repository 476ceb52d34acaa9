package dto

// CalendarEvent is shaped for a FullCalendar-style client.
type CalendarEvent struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Start           string         `json:"start"`
	End             *string        `json:"end,omitempty"`
	AllDay          bool           `json:"allDay"`
	BackgroundColor string         `json:"backgroundColor"`
	BorderColor     string         `json:"borderColor"`
	TextColor       string         `json:"textColor"`
	Type            string         `json:"type"`
	ExtendedProps   map[string]any `json:"extendedProps"`
}
