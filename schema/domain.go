package schema

import (
	"encoding/json"
	"fmt"
)

const (
	GracePeriodMs = int64(7776000000) // 90 days

	PlaceholderName        = "unknown.name"
	PlaceholderDescription = "Unknown FNS name"
	PlaceholderCreatedAt   = int64(1580346653000)

	DisplayTypeDate = "date"
)

type Version int

const (
	V1  Version = iota
	V1w         // v1 wrapped, reserved
	V2          // reserved
)

func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V1w:
		return "v1w"
	case V2:
		return "v2"
	}
	return fmt.Sprintf("version(%d)", int(v))
}

func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Version) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "v1":
		*v = V1
	case "v1w":
		*v = V1w
	case "v2":
		*v = V2
	default:
		return fmt.Errorf("unknown version %q", s)
	}
	return nil
}

type Attribute struct {
	TraitType   string      `json:"trait_type"`
	DisplayType string      `json:"display_type"`
	Value       interface{} `json:"value"`
}

// DomainRecord is built fresh for every request and never mutated once handed to the formatter.
type DomainRecord struct {
	Name        string
	LabelName   string
	CanonicalID string // 0x + 64 hex, empty for placeholders
	DecimalID   string
	Version     Version

	// unix milliseconds
	CreatedAt    int64
	RegisteredAt int64
	ExpiresAt    int64

	Attributes  []Attribute
	Placeholder bool
}

func (r *DomainRecord) AddAttribute(attr Attribute) {
	r.Attributes = append(r.Attributes, attr)
}

func NewPlaceholderRecord() *DomainRecord {
	return &DomainRecord{
		Name:        PlaceholderName,
		CreatedAt:   PlaceholderCreatedAt,
		Version:     V1,
		Attributes:  []Attribute{},
		Placeholder: true,
	}
}
