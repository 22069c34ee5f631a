package pkgerror

import "errors"

// Code classifies a business error so transport layers can map it to a
// status without inspecting messages.
type Code int

const (
	CodeInternal Code = iota
	CodeInvalidInput
	CodeNotFound
)

type Business struct {
	msg  string
	code Code
	err  error
}

func NewBusiness(msg string, code Code) *Business {
	return &Business{msg: msg, code: code}
}

// Wrap attaches an underlying cause while keeping the business message
// and code as the caller-facing surface.
func Wrap(err error, msg string, code Code) *Business {
	return &Business{msg: msg, code: code, err: err}
}

func (b *Business) Error() string {
	if b.err != nil {
		return b.msg + ": " + b.err.Error()
	}
	return b.msg
}

func (b *Business) Message() string {
	return b.msg
}

func (b *Business) Code() Code {
	return b.code
}

func (b *Business) Unwrap() error {
	return b.err
}

// CodeOf extracts the business code from err, defaulting to
// CodeInternal for non-business errors.
func CodeOf(err error) Code {
	var b *Business
	if errors.As(err, &b) {
		return b.Code()
	}
	return CodeInternal
}
