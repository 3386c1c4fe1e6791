package models

import "github.com/uptrace/bun"

// PitchEvent is one pitch from a Baseball Savant export. A row with a
// non-null LaunchSpeed/HCX/HCY is a batted ball; a row carrying only the
// pitch-physics fields is a no-contact pitch.
type PitchEvent struct {
	bun.BaseModel `bun:"table:savant_data,alias:sv"`

	ID          int      `bun:"id,pk,autoincrement" json:"id"`
	GameDate    string   `bun:"game_date,notnull" json:"game_date"`
	PitcherName string   `bun:"pitcher_name,notnull" json:"pitcher_name"`
	BatterName  string   `bun:"batter_name,notnull" json:"batter_name"`
	Pitcher     *float64 `bun:"pitcher" json:"pitcher,omitempty"`
	Batter      *float64 `bun:"batter" json:"batter,omitempty"`
	PitchName   string   `bun:"pitch_name" json:"pitch_name,omitempty"`

	ReleaseSpeed    *float64 `bun:"release_speed" json:"release_speed,omitempty"`
	ReleaseSpinRate *float64 `bun:"release_spin_rate" json:"release_spin_rate,omitempty"`
	LaunchSpeed     *float64 `bun:"launch_speed" json:"launch_speed,omitempty"`
	LaunchAngle     *float64 `bun:"launch_angle" json:"launch_angle,omitempty"`
	HitDistance     *float64 `bun:"hit_distance_sc" json:"hit_distance_sc,omitempty"`

	Events      string   `bun:"events" json:"events,omitempty"`
	Description string   `bun:"description" json:"description,omitempty"`
	Zone        *float64 `bun:"zone" json:"zone,omitempty"`
	Stand       string   `bun:"stand" json:"stand,omitempty"`
	PThrows     string   `bun:"p_throws" json:"p_throws,omitempty"`
	HomeTeam    string   `bun:"home_team" json:"home_team,omitempty"`
	AwayTeam    string   `bun:"away_team" json:"away_team,omitempty"`
	Type        string   `bun:"type" json:"type,omitempty"`
	HitLocation *float64 `bun:"hit_location" json:"hit_location,omitempty"`
	BBType      string   `bun:"bb_type" json:"bb_type,omitempty"`
	Balls       *float64 `bun:"balls" json:"balls,omitempty"`
	Strikes     *float64 `bun:"strikes" json:"strikes,omitempty"`
	GameYear    *float64 `bun:"game_year" json:"game_year,omitempty"`

	PfxX   *float64 `bun:"pfx_x" json:"pfx_x,omitempty"`
	PfxZ   *float64 `bun:"pfx_z" json:"pfx_z,omitempty"`
	PlateX *float64 `bun:"plate_x" json:"plate_x,omitempty"`
	PlateZ *float64 `bun:"plate_z" json:"plate_z,omitempty"`

	On3B       *float64 `bun:"on_3b" json:"on_3b,omitempty"`
	On2B       *float64 `bun:"on_2b" json:"on_2b,omitempty"`
	On1B       *float64 `bun:"on_1b" json:"on_1b,omitempty"`
	OutsWhenUp *float64 `bun:"outs_when_up" json:"outs_when_up,omitempty"`
	Inning     *float64 `bun:"inning" json:"inning,omitempty"`
	InningHalf string   `bun:"inning_topbot" json:"inning_topbot,omitempty"`

	// Batted-ball field coordinates in Savant's own units, not feet.
	HCX *float64 `bun:"hc_x" json:"hc_x,omitempty"`
	HCY *float64 `bun:"hc_y" json:"hc_y,omitempty"`

	VX0 *float64 `bun:"vx0" json:"vx0,omitempty"`
	VY0 *float64 `bun:"vy0" json:"vy0,omitempty"`
	VZ0 *float64 `bun:"vz0" json:"vz0,omitempty"`
	AX  *float64 `bun:"ax" json:"ax,omitempty"`
	AY  *float64 `bun:"ay" json:"ay,omitempty"`
	AZ  *float64 `bun:"az" json:"az,omitempty"`

	SZTop            *float64 `bun:"sz_top" json:"sz_top,omitempty"`
	SZBot            *float64 `bun:"sz_bot" json:"sz_bot,omitempty"`
	EffectiveSpeed   *float64 `bun:"effective_speed" json:"effective_speed,omitempty"`
	ReleaseExtension *float64 `bun:"release_extension" json:"release_extension,omitempty"`
	GamePK           *float64 `bun:"game_pk" json:"game_pk,omitempty"`
	SpinAxis         *float64 `bun:"spin_axis" json:"spin_axis,omitempty"`
	DeltaHomeWinExp  *float64 `bun:"delta_home_win_exp" json:"delta_home_win_exp,omitempty"`
	DeltaRunExp      *float64 `bun:"delta_run_exp" json:"delta_run_exp,omitempty"`

	FileName string `bun:"file_name" json:"file_name,omitempty"`
	UploadID string `bun:"upload_id" json:"upload_id,omitempty"`
}

// Upload reports the batch identity used for history grouping and deletion.
func (p PitchEvent) Upload() (string, string) { return p.UploadID, p.FileName }
