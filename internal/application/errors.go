package application

import "errors"

// ErrUploadsDisabled is returned when no object storage bucket is configured.
var ErrUploadsDisabled = errors.New("avatar uploads are not configured")
