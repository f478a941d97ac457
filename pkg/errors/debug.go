package errors

import (
	"errors"
	"fmt"
)

// maxChainDepth bounds the chain written to logs.
const maxChainDepth = 8

// ErrorDump is the log-friendly view of an error: its message, typed code with
// the status it maps to, and each wrapped layer.
type ErrorDump struct {
	TopMessage string   `json:"top_message"`
	Code       Code     `json:"code,omitempty"`
	Status     int      `json:"status,omitempty"`
	Chain      []string `json:"chain,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{TopMessage: err.Error()}
	if te := As(err); te != nil {
		d.Code = te.Code()
		d.Status = MetadataFor(te.Code()).HTTPStatus
	}

	for e := err; e != nil && len(d.Chain) < maxChainDepth; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}
	return d
}
