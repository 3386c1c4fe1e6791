package models

import "github.com/uptrace/bun"

// BlastSwing is one bat-sensor swing recording. The player identity comes
// from the export filename, not from a column. Speeds are mph; the optional
// batted-ball fields are only present when the swing produced contact.
type BlastSwing struct {
	bun.BaseModel `bun:"table:blast_data,alias:bl"`

	ID         int    `bun:"id,pk,autoincrement" json:"id"`
	Date       string `bun:"date" json:"date"`
	PlayerName string `bun:"player_name,notnull" json:"player_name"`

	BatSpeed             *float64 `bun:"bat_speed" json:"bat_speed,omitempty"`
	AttackAngle          *float64 `bun:"attack_angle" json:"attack_angle,omitempty"`
	VerticalBatAngle     *float64 `bun:"vertical_bat_angle" json:"vertical_bat_angle,omitempty"`
	Power                *float64 `bun:"power" json:"power,omitempty"`
	TimeToContact        *float64 `bun:"time_to_contact" json:"time_to_contact,omitempty"`
	PeakHandSpeed        *float64 `bun:"peak_hand_speed" json:"peak_hand_speed,omitempty"`
	OnPlaneEfficiency    *float64 `bun:"on_plane_efficiency" json:"on_plane_efficiency,omitempty"`
	RotationScore        *float64 `bun:"rotation_score" json:"rotation_score,omitempty"`
	OnPlaneScore         *float64 `bun:"on_plane_score" json:"on_plane_score,omitempty"`
	ConnectionScore      *float64 `bun:"connection_score" json:"connection_score,omitempty"`
	RotationAcceleration *float64 `bun:"rotation_acceleration" json:"rotation_acceleration,omitempty"`
	ConnectionAtImpact   *float64 `bun:"connection_at_impact" json:"connection_at_impact,omitempty"`
	ConnectionAtAddress  *float64 `bun:"connection_at_address" json:"connection_at_address,omitempty"`
	BatAngle             *float64 `bun:"bat_angle" json:"bat_angle,omitempty"`

	// Linked batted-ball result, present only on contact swings.
	ExitVelocity  *float64 `bun:"exit_velocity" json:"exit_velocity,omitempty"`
	LaunchAngle   *float64 `bun:"launch_angle" json:"launch_angle,omitempty"`
	CarryDistance *float64 `bun:"carry_distance" json:"carry_distance,omitempty"`

	FileName string `bun:"file_name" json:"file_name,omitempty"`
	UploadID string `bun:"upload_id" json:"upload_id,omitempty"`
}

func (s BlastSwing) Upload() (string, string) { return s.UploadID, s.FileName }
