package proxy

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrEmptyProxyFile reports a proxy file that was readable but held no
	// usable rows.
	ErrEmptyProxyFile = errors.New("proxy file contains no proxies")

	// ErrEmptyProxyList reports an attempt to build a rotator without proxies.
	ErrEmptyProxyList = errors.New("proxy list is empty")

	// ErrNoConfiguration reports that neither loading mode was configured.
	ErrNoConfiguration = errors.New(
		"no proxy configuration found: set a proxy file (file path, optional scheme) " +
			"or a static proxy (host, scheme, port, optional username/password)")
)

// RowFormatError reports a proxy file row that does not match either accepted
// shape, or carries an unusable port.
type RowFormatError struct {
	Row    string
	Reason string
}

func (e *RowFormatError) Error() string {
	return fmt.Sprintf("invalid proxy row %q: %s", e.Row, e.Reason)
}

// MissingSettingError reports that a loading mode's required settings are
// absent or invalid. The top-level loader treats it as "this mode is not
// configured" and falls through to the next mode; all other errors are fatal.
type MissingSettingError struct {
	Mode string
	err  error
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("%s proxy settings incomplete: %v", e.Mode, e.err)
}

func (e *MissingSettingError) Unwrap() error { return e.err }

// validateSettings runs struct validation and converts failures into a
// MissingSettingError for the given mode.
func validateSettings(mode string, s any) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &MissingSettingError{Mode: mode, err: verrs}
		}
		return fmt.Errorf("validating %s proxy settings: %w", mode, err)
	}
	return nil
}
