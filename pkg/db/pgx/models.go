package pgdb

import (
	"database/sql"
	"encoding/json"
	"time"
)

type Thana struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	District        string         `json:"district"`
	Address         sql.NullString `json:"address"`
	Phone           sql.NullString `json:"phone"`
	OfficerInCharge sql.NullInt64  `json:"officer_in_charge"`
	CreatedAt       time.Time      `json:"created_at"`
}

type Rank struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Level int32  `json:"level"`
}

type Officer struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	BadgeNumber string         `json:"badge_number"`
	RankID      sql.NullInt64  `json:"rank_id"`
	ThanaID     sql.NullInt64  `json:"thana_id"`
	Phone       sql.NullString `json:"phone"`
	Status      string         `json:"status"`
	JoinedAt    sql.NullTime   `json:"joined_at"`
	CreatedAt   time.Time      `json:"created_at"`
}

type Jail struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Location   sql.NullString `json:"location"`
	Capacity   int32          `json:"capacity"`
	WardenName sql.NullString `json:"warden_name"`
	Phone      sql.NullString `json:"phone"`
	CreatedAt  time.Time      `json:"created_at"`
}

type CellBlock struct {
	ID     int64         `json:"id"`
	JailID int64         `json:"jail_id"`
	Name   string        `json:"name"`
	Floor  sql.NullInt32 `json:"floor"`
}

type Cell struct {
	ID         int64  `json:"id"`
	BlockID    int64  `json:"block_id"`
	CellNumber string `json:"cell_number"`
	Capacity   int32  `json:"capacity"`
}

type Criminal struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Alias       sql.NullString `json:"alias"`
	Nid         sql.NullString `json:"nid"`
	DateOfBirth sql.NullTime   `json:"date_of_birth"`
	Gender      sql.NullString `json:"gender"`
	Address     sql.NullString `json:"address"`
	PhotoKey    sql.NullString `json:"photo_key"`
	RiskLevel   int32          `json:"risk_level"`
	Status      string         `json:"status"`
	ThanaID     sql.NullInt64  `json:"thana_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type ArrestRecord struct {
	ID            int64          `json:"id"`
	CriminalID    int64          `json:"criminal_id"`
	OfficerID     sql.NullInt64  `json:"officer_id"`
	ThanaID       sql.NullInt64  `json:"thana_id"`
	CaseID        sql.NullInt64  `json:"case_id"`
	ArrestDate    time.Time      `json:"arrest_date"`
	Location      sql.NullString `json:"location"`
	Charges       string         `json:"charges"`
	CustodyStatus string         `json:"custody_status"`
	Notes         sql.NullString `json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
}

type BailRecord struct {
	ID          int64           `json:"id"`
	ArrestID    int64           `json:"arrest_id"`
	CriminalID  int64           `json:"criminal_id"`
	Amount      sql.NullFloat64 `json:"amount"`
	Status      string          `json:"status"`
	GrantedBy   sql.NullString  `json:"granted_by"`
	HearingDate sql.NullTime    `json:"hearing_date"`
	GrantedAt   sql.NullTime    `json:"granted_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Incarceration struct {
	ID            int64          `json:"id"`
	CriminalID    int64          `json:"criminal_id"`
	ArrestID      sql.NullInt64  `json:"arrest_id"`
	CellID        int64          `json:"cell_id"`
	AdmittedAt    time.Time      `json:"admitted_at"`
	ReleasedAt    sql.NullTime   `json:"released_at"`
	ReleaseReason sql.NullString `json:"release_reason"`
}

type CaseFile struct {
	ID          int64          `json:"id"`
	CaseNumber  string         `json:"case_number"`
	Title       string         `json:"title"`
	Description sql.NullString `json:"description"`
	Status      string         `json:"status"`
	ThanaID     sql.NullInt64  `json:"thana_id"`
	OfficerID   sql.NullInt64  `json:"officer_id"`
	FiledAt     time.Time      `json:"filed_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type GdReport struct {
	ID         int64         `json:"id"`
	UserID     sql.NullInt64 `json:"user_id"`
	ThanaID    sql.NullInt64 `json:"thana_id"`
	Subject    string        `json:"subject"`
	Details    string        `json:"details"`
	Status     string        `json:"status"`
	ReviewedBy sql.NullInt64 `json:"reviewed_by"`
	CreatedAt  time.Time     `json:"created_at"`
}

type User struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     sql.NullString `json:"phone"`
	Address   sql.NullString `json:"address"`
	CreatedAt time.Time      `json:"created_at"`
}

type Organization struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	OrgType   sql.NullString `json:"org_type"`
	Territory sql.NullString `json:"territory"`
	CreatedAt time.Time      `json:"created_at"`
}

type Relationship struct {
	ID           int64     `json:"id"`
	SourceID     int64     `json:"source_id"`
	TargetID     int64     `json:"target_id"`
	RelationType string    `json:"relation_type"`
	Strength     int32     `json:"strength"`
	FirstSeen    time.Time `json:"first_seen"`
	LastSeen     time.Time `json:"last_seen"`
}

type Incident struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Description  sql.NullString `json:"description"`
	IncidentType sql.NullString `json:"incident_type"`
	Location     sql.NullString `json:"location"`
	ThanaID      sql.NullInt64  `json:"thana_id"`
	WarningLevel int32          `json:"warning_level"`
	OccurredAt   time.Time      `json:"occurred_at"`
	CreatedAt    time.Time      `json:"created_at"`
}

type Alert struct {
	ID           int64         `json:"id"`
	IncidentID   sql.NullInt64 `json:"incident_id"`
	Title        string        `json:"title"`
	WarningLevel int32         `json:"warning_level"`
	Status       string        `json:"status"`
	HandledBy    sql.NullInt64 `json:"handled_by"`
	CreatedAt    time.Time     `json:"created_at"`
	HandledAt    sql.NullTime  `json:"handled_at"`
}

type AuditLog struct {
	ID            int64           `json:"id"`
	CorrelationID string          `json:"correlation_id"`
	EventType     string          `json:"event_type"`
	Entity        string          `json:"entity"`
	EntityID      sql.NullInt64   `json:"entity_id"`
	Actor         sql.NullString  `json:"actor"`
	Payload       json.RawMessage `json:"payload"`
	CreatedAt     time.Time       `json:"created_at"`
}
