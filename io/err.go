package io

import (
	"github.com/ezrec/bitcpu/translate"
)

var f = translate.From

// ErrTraceFormat is an unknown trace format name.
type ErrTraceFormat string

func (err ErrTraceFormat) Error() string {
	return f("'%v' is not a trace format", string(err))
}
