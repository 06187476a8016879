package structs

// Weight and dimension units accepted by the rate-quoting service.
const (
	WeightUnitLbs = "lbs"
	WeightUnitKg  = "kg"

	DimensionUnitIn = "in"
	DimensionUnitCm = "cm"
)

// ShipmentRequest is the shipment data submitted in the first phase. The json
// tags are the wire names expected by the rate-quoting service.
type ShipmentRequest struct {
	BoxesNumber             int     `json:"boxes_number" validate:"gte=1"`
	Weight                  float64 `json:"weight" validate:"gte=0"`
	Height                  float64 `json:"height" validate:"gte=0"`
	Width                   float64 `json:"width" validate:"gte=0"`
	Length                  float64 `json:"length" validate:"gte=0"`
	CargoType               string  `json:"cargo_type"`
	WeightUnit              string  `json:"weightUnit" validate:"oneof=lbs kg"`
	DimensionUnit           string  `json:"dimensionunit" validate:"oneof=in cm"`
	AirportZipcodeLoading   string  `json:"airport_zipcode_loading"`
	AirportZipcodeDischarge string  `json:"airport_zipcode_discharge"`
}

// RequestField is one named value of a ShipmentRequest.
type RequestField struct {
	Key   string
	Value any
}

// Fields lists the request values under their wire names, in submission order.
func (r *ShipmentRequest) Fields() []RequestField {
	return []RequestField{
		{"boxes_number", r.BoxesNumber},
		{"weight", r.Weight},
		{"height", r.Height},
		{"width", r.Width},
		{"length", r.Length},
		{"cargo_type", r.CargoType},
		{"weightUnit", r.WeightUnit},
		{"dimensionunit", r.DimensionUnit},
		{"airport_zipcode_loading", r.AirportZipcodeLoading},
		{"airport_zipcode_discharge", r.AirportZipcodeDischarge},
	}
}
