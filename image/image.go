package image

import (
	"bytes"
	"encoding/base64"
	"strings"
	"text/template"

	"github.com/zkfairdomains/fns-metadata/schema"
)

const MimeTypeSVG = "image/svg+xml"

const (
	maxFontSize = 32
	minFontSize = 12
	// widest text that fits the card at maxFontSize
	maxCharsAtMax = 11
)

const svgTemplate = `<svg width="270" height="270" viewBox="0 0 270 270" fill="none" xmlns="http://www.w3.org/2000/svg">
  <rect width="270" height="270" fill="url(#{{if .Normalized}}paint0_linear{{else}}paint1_linear{{end}})"/>
  <defs>
    <filter id="dropShadow" color-interpolation-filters="sRGB" filterUnits="userSpaceOnUse" height="270" width="270">
      <feDropShadow dx="0" dy="1" stdDeviation="2" flood-opacity="0.225" width="200%" height="200%"/>
    </filter>
    <linearGradient id="paint0_linear" x1="190.5" y1="302" x2="-64" y2="-172.5" gradientUnits="userSpaceOnUse">
      <stop stop-color="#e13022"/>
      <stop offset="0.428185" stop-color="#7a1a12"/>
      <stop offset="1" stop-color="#1b1b1b"/>
    </linearGradient>
    <linearGradient id="paint1_linear" x1="0" y1="0" x2="269.553" y2="285.527" gradientUnits="userSpaceOnUse">
      <stop stop-color="#EB9E9E"/>
      <stop offset="1" stop-color="#992222"/>
    </linearGradient>
  </defs>
  <path fill="#ffffff" d="M 0 0 L 6.5 0 L 6.5 37 L 0 37 Z" filter="url(#dropShadow)" transform="translate(34.5,32.5)"/>
  <path fill="#ffffff" d="M 30.5 0 L 37 0 L 37 37 L 30.5 37 Z" filter="url(#dropShadow)" transform="translate(42.5,32.5)"/>
  <text x="32.5" y="231" font-size="{{.FontSize}}px" fill="white" filter="url(#dropShadow)" font-family="Satoshi, Noto Color Emoji, Apple Color Emoji, sans-serif" font-weight="bold">{{.Domain | html}}</text>
  {{- if .Subdomain}}
  <text x="32.5" y="205" font-size="16px" fill="white" opacity="0.6" font-family="Satoshi, sans-serif">{{.Parent | html}}</text>
  {{- end}}
</svg>`

type fields struct {
	Domain     string
	Parent     string
	FontSize   int
	Normalized bool
	Subdomain  bool
}

type Image struct {
	Data     []byte
	MimeType string
}

func (i *Image) DataURI() string {
	return "data:" + i.MimeType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Formatter renders record cards. It never looks at anything but the record name.
type Formatter struct {
	tmpl *template.Template
}

func NewFormatter() *Formatter {
	return &Formatter{tmpl: template.Must(template.New("card").Parse(svgTemplate))}
}

// Format returns the inline image for rec, or nil when the caller should reference it by url.
func (f *Formatter) Format(rec *schema.DomainRecord, inline bool) (*Image, error) {
	if !inline {
		return nil, nil
	}
	data, err := f.SVG(rec)
	if err != nil {
		return nil, err
	}
	return &Image{Data: data, MimeType: MimeTypeSVG}, nil
}

func (f *Formatter) SVG(rec *schema.DomainRecord) ([]byte, error) {
	fd := fields{Domain: rec.Name, FontSize: FontSize(rec.Name), Normalized: isNormalized(rec.Name)}
	// sub.name.zkf shows the label big and the parent above it
	if parts := strings.SplitN(rec.Name, ".", 2); len(parts) == 2 && strings.Count(rec.Name, ".") > 1 {
		fd.Subdomain = true
		fd.Domain = parts[0] + "."
		fd.Parent = parts[1]
		fd.FontSize = FontSize(fd.Domain)
	}
	buf := &bytes.Buffer{}
	if err := f.tmpl.Execute(buf, fd); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FontSize shrinks the name text linearly past maxCharsAtMax characters.
func FontSize(name string) int {
	n := len([]rune(name))
	if n <= maxCharsAtMax {
		return maxFontSize
	}
	size := maxFontSize * maxCharsAtMax / n
	if size < minFontSize {
		return minFontSize
	}
	return size
}

func isNormalized(name string) bool {
	return name == strings.ToLower(strings.TrimSpace(name))
}
