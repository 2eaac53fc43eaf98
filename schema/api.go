package schema

import "fmt"

type RespErr struct {
	Message string `json:"message"`
}

// RespUnknown wraps a placeholder metadata document; callers tell it apart from
// RespErr by the type of "message".
type RespUnknown struct {
	Message *Metadata `json:"message"`
}

type Metadata struct {
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Attributes      []Attribute `json:"attributes"`
	NameLength      int         `json:"name_length"`
	URL             string      `json:"url,omitempty"`
	Version         Version     `json:"version"`
	Image           string      `json:"image,omitempty"`
	ImageURL        string      `json:"image_url,omitempty"`
	TokenId         string      `json:"tokenId"`
	LastRequestDate int64       `json:"last_request_date"`
}

// NewMetadata renders the display form of rec. The image fields are left for the formatter.
func NewMetadata(rec *DomainRecord, appURL string, lastRequestDate int64) *Metadata {
	m := &Metadata{
		Name:            rec.Name,
		Attributes:      rec.Attributes,
		NameLength:      len([]rune(rec.Name)),
		Version:         rec.Version,
		TokenId:         rec.DecimalID,
		LastRequestDate: lastRequestDate,
	}
	if m.Attributes == nil {
		m.Attributes = []Attribute{}
	}
	if rec.Placeholder {
		m.Description = PlaceholderDescription
		return m
	}
	m.Description = fmt.Sprintf("%s, a zkFair domain name.", rec.Name)
	if appURL != "" {
		m.URL = fmt.Sprintf("%s/name/%s", appURL, rec.Name)
	}
	return m
}

func (m *Metadata) SetImage(dataURI string) {
	m.Image = dataURI
	m.ImageURL = ""
}

// SetImageURL points the image at the deferred render route. image_url repeats it for
// consumers that only read that field.
func (m *Metadata) SetImageURL(url string) {
	m.Image = url
	m.ImageURL = url
}
