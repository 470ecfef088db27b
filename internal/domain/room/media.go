package room

import (
	"net/url"
	"strings"

	"cowork-booking/internal/pkg/errs"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

const (
	MaxMediaURLLength = 500
	MaxMediaItems     = 20
)

var (
	ErrInvalidMediaType = errs.NewKind("room media type must be image or video", errs.ErrValidation)
	ErrInvalidMediaURL  = errs.NewKind("room media url must be an absolute http(s) url of at most 500 characters", errs.ErrValidation)
	ErrTooManyMedia     = errs.NewKind("room gallery holds at most 20 items", errs.ErrValidation)
)

// Media is one gallery entry. Order in the owning slice is the display order.
type Media struct {
	URL  string
	Type MediaType
}

func ParseMediaType(s string) (MediaType, error) {
	switch t := MediaType(strings.ToLower(strings.TrimSpace(s))); t {
	case MediaImage, MediaVideo:
		return t, nil
	default:
		return "", ErrInvalidMediaType
	}
}

func validateMedia(items []Media) ([]Media, error) {
	if len(items) > MaxMediaItems {
		return nil, ErrTooManyMedia
	}
	out := make([]Media, 0, len(items))
	for _, m := range items {
		t, err := ParseMediaType(string(m.Type))
		if err != nil {
			return nil, err
		}
		raw := strings.TrimSpace(m.URL)
		if len(raw) > MaxMediaURLLength {
			return nil, ErrInvalidMediaURL
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, ErrInvalidMediaURL
		}
		out = append(out, Media{URL: raw, Type: t})
	}
	return out, nil
}
