package template

import "errors"

var ErrNoFiles = errors.New("no files to parse")
