package models

import "github.com/uptrace/bun"

// RapsodoPitch is one pitch measured by a Rapsodo unit in pitching mode.
// Velocity is km/h, break and release/zone positions are cm.
type RapsodoPitch struct {
	bun.BaseModel `bun:"table:rapsodo_pitching,alias:rp"`

	ID         int    `bun:"id,pk,autoincrement" json:"id"`
	Date       string `bun:"date" json:"date"`
	PlayerName string `bun:"player_name,notnull" json:"player_name"`
	PitchType  string `bun:"pitch_type" json:"pitch_type,omitempty"`

	Velocity         *float64 `bun:"velocity" json:"velocity,omitempty"`
	TotalSpin        *float64 `bun:"total_spin" json:"total_spin,omitempty"`
	SpinEfficiency   *float64 `bun:"spin_efficiency" json:"spin_efficiency,omitempty"`
	HorizontalBreak  *float64 `bun:"horizontal_break" json:"horizontal_break,omitempty"`
	VerticalBreak    *float64 `bun:"vertical_break" json:"vertical_break,omitempty"`
	ReleaseSide      *float64 `bun:"release_side" json:"release_side,omitempty"`
	ReleaseHeight    *float64 `bun:"release_height" json:"release_height,omitempty"`
	ReleaseAngle     *float64 `bun:"release_angle" json:"release_angle,omitempty"`
	StrikeZoneSide   *float64 `bun:"strike_zone_side" json:"strike_zone_side,omitempty"`
	StrikeZoneHeight *float64 `bun:"strike_zone_height" json:"strike_zone_height,omitempty"`

	FileName string `bun:"file_name" json:"file_name,omitempty"`
	UploadID string `bun:"upload_id" json:"upload_id,omitempty"`
}

func (p RapsodoPitch) Upload() (string, string) { return p.UploadID, p.FileName }

// RapsodoSwing is one batted ball measured by the same unit in batting mode.
// Exit velocity is km/h, carry distance is meters, direction is a signed
// angle off the centerline in degrees.
type RapsodoSwing struct {
	bun.BaseModel `bun:"table:rapsodo_batting,alias:rb"`

	ID         int    `bun:"id,pk,autoincrement" json:"id"`
	Date       string `bun:"date" json:"date"`
	PlayerName string `bun:"player_name,notnull" json:"player_name"`

	ExitVelocity     *float64 `bun:"exit_velocity" json:"exit_velocity,omitempty"`
	LaunchAngle      *float64 `bun:"launch_angle" json:"launch_angle,omitempty"`
	Direction        *float64 `bun:"direction" json:"direction,omitempty"`
	SpinRate         *float64 `bun:"spin_rate" json:"spin_rate,omitempty"`
	Distance         *float64 `bun:"distance" json:"distance,omitempty"`
	HangTime         *float64 `bun:"hang_time" json:"hang_time,omitempty"`
	StrikeZoneSide   *float64 `bun:"strike_zone_side" json:"strike_zone_side,omitempty"`
	StrikeZoneHeight *float64 `bun:"strike_zone_height" json:"strike_zone_height,omitempty"`

	FileName string `bun:"file_name" json:"file_name,omitempty"`
	UploadID string `bun:"upload_id" json:"upload_id,omitempty"`
}

func (s RapsodoSwing) Upload() (string, string) { return s.UploadID, s.FileName }
