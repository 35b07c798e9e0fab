package models

import "time"

// Flora statuses.
const (
	FloraBlossoming = "blossoming"
	FloraSealed     = "sealed"
	FloraHidden     = "hidden"
)

// ValidFloraStatus reports whether s is a known flora status.
func ValidFloraStatus(s string) bool {
	return s == FloraBlossoming || s == FloraSealed || s == FloraHidden
}

// CoAuthor is a snapshot of a contributor in a flora's derivation chain.
type CoAuthor struct {
	UserID        string    `json:"userId"`
	Username      string    `json:"username"`
	Generation    int       `json:"generation"`
	ContributedAt time.Time `json:"contributedAt"`
	IsAnonymized  bool      `json:"isAnonymized"`
}

// Lineage tracks a flora's position in its derivation tree.
type Lineage struct {
	Generation    int     `json:"generation"`
	ParentFloraID *string `json:"parentFloraId,omitempty" gorm:"type:char(36);index"`
	RootFloraID   *string `json:"rootFloraId,omitempty"   gorm:"type:char(36);index"`
	ChildrenCount int     `json:"childrenCount"`
}

// Sentiment is part of the generative seed, stored verbatim.
type Sentiment struct {
	Score float64 `json:"score,omitempty"`
	Label string  `json:"label,omitempty"`
}

// Morphology is part of the generative seed, stored verbatim.
type Morphology struct {
	CharacterCount int `json:"characterCount,omitempty"`
	WordCount      int `json:"wordCount,omitempty"`
	LineCount      int `json:"lineCount,omitempty"`
}

// Visual is part of the generative seed, stored verbatim.
type Visual struct {
	ColorPalette  []string `json:"colorPalette,omitempty"`
	ElementCount  int      `json:"elementCount,omitempty"`
	MovementSpeed float64  `json:"movementSpeed,omitempty"`
	Complexity    float64  `json:"complexity,omitempty"`
}

// Seed is the opaque generative seed a client submits with a flora.
// The server stores it and hands it back; it never computes any of it.
type Seed struct {
	Sentiment  Sentiment  `json:"sentiment,omitempty"`
	Morphology Morphology `json:"morphology,omitempty"`
	Visual     Visual     `json:"visual,omitempty"`
}

// Generative bundles the soil reference and seed for a flora.
type Generative struct {
	SoilID   string `json:"soilId,omitempty"`
	SoilName string `json:"soilName,omitempty"`
	Seed     Seed   `json:"seed,omitempty"`
}

// FloraStats aggregates per-flora counters.
type FloraStats struct {
	Views         int `json:"views"`
	CuttingsTaken int `json:"cuttingsTaken"`
	Downloads     int `json:"downloads"`
}

// FloraModel is the primary content entity: a user-authored text artifact.
// Text is immutable once PublishedAt is set. IsHidden is a moderation
// override independent of Status; either one excludes the flora from
// default public listings.
type FloraModel struct {
	Base
	Title              string                 `json:"title"              gorm:"size:100;not null"`
	Text               string                 `json:"text"               gorm:"type:longtext;not null"`
	AuthorID           *string                `json:"authorId"           gorm:"type:char(36);index"`
	AuthorUsername     string                 `json:"authorUsername"`
	IsAuthorAnonymized bool                   `json:"isAuthorAnonymized" gorm:"default:false"`
	CoAuthors          []CoAuthor             `json:"coAuthors"          gorm:"type:longtext;serializer:json"`
	Lineage            Lineage                `json:"lineage"            gorm:"embedded;embeddedPrefix:lineage_"`
	Status             string                 `json:"status"             gorm:"size:32;index;default:blossoming"`
	IsHidden           bool                   `json:"isHidden"           gorm:"index;default:false"`
	Generative         Generative             `json:"generative"         gorm:"type:longtext;serializer:json"`
	License            map[string]interface{} `json:"license"            gorm:"type:longtext;serializer:json"`
	Stats              FloraStats             `json:"stats"              gorm:"embedded;embeddedPrefix:stats_"`
	PublishedAt        *time.Time             `json:"publishedAt"`
	SealedAt           *time.Time             `json:"sealedAt"`
}

func (FloraModel) TableName() string { return "floras" }
