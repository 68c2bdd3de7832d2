package domain

import "time"

// MeasurementRequest is the payload for POST /measurements. All values are
// metric (cm/kg); omitted fields were not measured.
type MeasurementRequest struct {
	HeightCm       *float64 `json:"heightCm,omitempty"`
	WeightKg       *float64 `json:"weightKg,omitempty"`
	BodyFatPercent *float64 `json:"bodyFatPercent,omitempty"`
	NeckCm         *float64 `json:"neckCm,omitempty"`
	ShouldersCm    *float64 `json:"shouldersCm,omitempty"`
	ChestCm        *float64 `json:"chestCm,omitempty"`
	BicepsCm       *float64 `json:"bicepsCm,omitempty"`
	ForearmsCm     *float64 `json:"forearmsCm,omitempty"`
	WaistCm        *float64 `json:"waistCm,omitempty"`
	HipsCm         *float64 `json:"hipsCm,omitempty"`
	ThighsCm       *float64 `json:"thighsCm,omitempty"`
	CalvesCm       *float64 `json:"calvesCm,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// Measurement is a stored body measurement snapshot.
type Measurement struct {
	ID             int64     `json:"id"`
	RecordedAt     time.Time `json:"recordedAt"`
	HeightCm       *float64  `json:"heightCm"`
	WeightKg       *float64  `json:"weightKg"`
	BodyFatPercent *float64  `json:"bodyFatPercent"`
	NeckCm         *float64  `json:"neckCm"`
	ShouldersCm    *float64  `json:"shouldersCm"`
	ChestCm        *float64  `json:"chestCm"`
	BicepsCm       *float64  `json:"bicepsCm"`
	ForearmsCm     *float64  `json:"forearmsCm"`
	WaistCm        *float64  `json:"waistCm"`
	HipsCm         *float64  `json:"hipsCm"`
	ThighsCm       *float64  `json:"thighsCm"`
	CalvesCm       *float64  `json:"calvesCm"`
	Notes          *string   `json:"notes"`
}
