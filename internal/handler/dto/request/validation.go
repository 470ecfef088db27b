package request

import (
	"net/url"
	"path"
	"strings"
	"sync"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".svg":  {},
}

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator.
// Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errs.New("gin binding engine is not validator/v10")
			return
		}
		if err = v.RegisterValidation("reservation_status", validateReservationStatus); err != nil {
			return
		}
		err = v.RegisterValidation("image_url", validateImageURL)
	})
	return err
}

func validateReservationStatus(fl validator.FieldLevel) bool {
	_, err := reservation.ParseStatus(fl.Field().String())
	return err == nil
}

// image_url accepts absolute http(s) URLs pointing at an image file.
func validateImageURL(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	_, ok := imageExtensions[strings.ToLower(path.Ext(u.Path))]
	return ok
}
