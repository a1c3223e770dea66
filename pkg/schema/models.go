// Package schema provides database schema models for RegattaDB.
// Models are created and updated via GORM AutoMigrate; all runtime
// queries go through pgx with parameterized SQL.
package schema

import (
	"database/sql"
	"time"
)

// Skipper is a person competing in races, uniquely identified by name.
type Skipper struct {
	ID int `gorm:"primaryKey"`

	// Name is the normalized skipper name. Once inserted it is globally
	// unique; re-ingestion of the same name merges the club affiliation
	// instead of duplicating the row.
	Name string `gorm:"type:varchar(300);uniqueIndex;not null"`

	// YachtClub is the latest non-null club affiliation seen for this
	// skipper. A known club is never overwritten with an unknown one.
	YachtClub sql.NullString `gorm:"type:varchar(300)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the PostgreSQL table name for Skipper.
func (Skipper) TableName() string {
	return "skippers"
}

// Race is one recorded regatta entry (event + boat + category) from an
// ingested row. There is no natural dedup key; each ingested row creates
// a new race row.
type Race struct {
	ID int `gorm:"primaryKey"`

	RegattaName sql.NullString `gorm:"type:varchar(300);index"`

	// RegattaDate is a calendar date; the time portion is always zero.
	RegattaDate sql.NullTime `gorm:"type:date;index"`

	Category   sql.NullString `gorm:"type:varchar(300)"`
	BoatName   sql.NullString `gorm:"type:varchar(300)"`
	SailNumber sql.NullString `gorm:"type:varchar(300)"`

	CreatedAt time.Time
}

// TableName returns the PostgreSQL table name for Race.
func (Race) TableName() string {
	return "races"
}

// Result links one Race to one Skipper and carries the finishing
// position and total points. Rows with neither position nor points are
// never created.
type Result struct {
	ID int `gorm:"primaryKey"`

	RaceID int  `gorm:"not null;index"`
	Race   Race `gorm:"constraint:OnDelete:CASCADE"`

	// SkipperID may be null when a row carried results without a
	// resolvable skipper.
	SkipperID sql.NullInt64 `gorm:"index"`
	Skipper   *Skipper      `gorm:"constraint:OnDelete:SET NULL"`

	Position    sql.NullInt32
	TotalPoints sql.NullFloat64 `gorm:"type:numeric(10,2)"`

	CreatedAt time.Time
}

// TableName returns the PostgreSQL table name for Result.
func (Result) TableName() string {
	return "results"
}
