package domain

import "time"

// Gender is the self-reported gender on a profile.
type Gender string

const (
	GenderMale           Gender = "MALE"
	GenderFemale         Gender = "FEMALE"
	GenderOther          Gender = "OTHER"
	GenderPreferNotToSay Gender = "PREFER_NOT_TO_SAY"
)

// UnitPreference selects the display unit system. Values are always stored
// metric; conversion happens at the edges.
type UnitPreference string

const (
	UnitsMetric   UnitPreference = "METRIC"
	UnitsImperial UnitPreference = "IMPERIAL"
)

// Profile is the user's profile record.
type Profile struct {
	ID             int64          `json:"id"`
	Username       string         `json:"username"`
	BirthYear      *int           `json:"birthYear"`
	Age            *int           `json:"age"`
	Gender         *Gender        `json:"gender"`
	UnitPreference UnitPreference `json:"unitPreference"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// ProfileUpdateRequest carries partial profile updates; nil fields are
// left unchanged.
type ProfileUpdateRequest struct {
	BirthYear      *int            `json:"birthYear,omitempty"`
	Gender         *Gender         `json:"gender,omitempty"`
	UnitPreference *UnitPreference `json:"unitPreference,omitempty"`
}
