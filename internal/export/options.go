// Package export turns a rendered resume into a downloadable artifact and
// optionally archives it in the object store.
package export

import (
	"fmt"
	"path"
	"strings"

	"resume-builder/internal/shared/util"
)

// Page sizes and orientations accepted by the engines.
const (
	PageA4     = "A4"
	PageLetter = "Letter"

	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Options configures one export. Zero values are not meaningful; start from
// DefaultOptions and overlay caller input.
type Options struct {
	Filename     string  `json:"filename"`
	MarginMM     float64 `json:"marginMm"`
	PageSize     string  `json:"pageSize"`
	Orientation  string  `json:"orientation"`
	ImageType    string  `json:"imageType"`
	ImageQuality float64 `json:"imageQuality"`
	Scale        float64 `json:"scale"`
	ScrollY      int     `json:"scrollY"`
	UseCORS      bool    `json:"useCors"`
}

// DefaultOptions matches the print settings the builder has always used: an
// A4 portrait page with no margin and full quality images.
func DefaultOptions() Options {
	return Options{
		Filename:     "Resume.pdf",
		MarginMM:     0,
		PageSize:     PageA4,
		Orientation:  OrientationPortrait,
		ImageType:    "jpeg",
		ImageQuality: 1,
		Scale:        1,
		ScrollY:      0,
		UseCORS:      true,
	}
}

// Validate normalizes casing and checks ranges.
func (o *Options) Validate() error {
	name, err := util.SanitizeFileName(o.Filename)
	if err != nil {
		return fmt.Errorf("%w: filename", ErrInvalidOptions)
	}
	o.Filename = name

	switch strings.ToLower(o.PageSize) {
	case "a4":
		o.PageSize = PageA4
	case "letter":
		o.PageSize = PageLetter
	default:
		return fmt.Errorf("%w: page size %q", ErrInvalidOptions, o.PageSize)
	}

	o.Orientation = strings.ToLower(o.Orientation)
	if o.Orientation != OrientationPortrait && o.Orientation != OrientationLandscape {
		return fmt.Errorf("%w: orientation %q", ErrInvalidOptions, o.Orientation)
	}

	o.ImageType = strings.ToLower(o.ImageType)
	if o.ImageType != "jpeg" && o.ImageType != "png" {
		return fmt.Errorf("%w: image type %q", ErrInvalidOptions, o.ImageType)
	}
	if o.ImageQuality <= 0 || o.ImageQuality > 1 {
		return fmt.Errorf("%w: image quality must be in (0, 1]", ErrInvalidOptions)
	}
	if o.Scale <= 0 || o.Scale > 4 {
		return fmt.Errorf("%w: scale must be in (0, 4]", ErrInvalidOptions)
	}
	if o.MarginMM < 0 || o.MarginMM > 50 {
		return fmt.Errorf("%w: margin must be in [0, 50]", ErrInvalidOptions)
	}
	if o.ScrollY < 0 {
		return fmt.Errorf("%w: scrollY must not be negative", ErrInvalidOptions)
	}
	return nil
}

// withExt swaps the filename extension.
func withExt(name, ext string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + ext
}
