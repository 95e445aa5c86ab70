package executor

import (
	"errors"
	"io/fs"
	"syscall"
)

// ErrDestinationExists is returned when a destination appeared between
// validation and the rename itself.
var ErrDestinationExists = errors.New("destination exists")

// Failure reasons, checked in order by [Classify]; the first match wins.
const (
	ReasonNotEmpty          = "destination directory not empty"
	ReasonDestinationExists = "destination exists"
	ReasonPermission        = "permission denied"
	ReasonSourceMissing     = "source missing"
	ReasonCrossDevice       = "cross-device rename"
	ReasonOther             = "rename failed"
)

var classifiers = []struct {
	reason string
	match  func(error) bool
}{
	{ReasonNotEmpty, func(err error) bool { return errors.Is(err, syscall.ENOTEMPTY) }},
	{ReasonDestinationExists, func(err error) bool {
		return errors.Is(err, ErrDestinationExists) || errors.Is(err, fs.ErrExist)
	}},
	{ReasonPermission, func(err error) bool { return errors.Is(err, fs.ErrPermission) }},
	{ReasonSourceMissing, func(err error) bool { return errors.Is(err, fs.ErrNotExist) }},
	{ReasonCrossDevice, func(err error) bool { return errors.Is(err, syscall.EXDEV) }},
}

// Classify maps a rename error to a short, human-readable reason. A nil
// error classifies as "".
func Classify(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range classifiers {
		if c.match(err) {
			return c.reason
		}
	}
	return ReasonOther
}
