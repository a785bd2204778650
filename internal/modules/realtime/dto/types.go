package dto

type JoinAreaInput struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
}

// EventOutput is one inbound event rendered for display. Payload holds
// the raw JSON body.
type EventOutput struct {
	Event   string
	Payload string
}
