package errs

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CodeError is the error shape returned by API handlers.
type CodeError struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Detail string `json:"detail,omitempty"`
}

func NewCodeError(code int, msg string) *CodeError {
	return &CodeError{Code: code, Msg: msg}
}

func (e *CodeError) WithDetail(detail string) *CodeError {
	d := detail
	if e.Detail != "" {
		d = e.Detail + ", " + detail
	}
	return &CodeError{Code: e.Code, Msg: e.Msg, Detail: d}
}

func (e *CodeError) Error() string {
	v := make([]string, 0, 3)
	v = append(v, strconv.Itoa(e.Code), e.Msg)
	if e.Detail != "" {
		v = append(v, e.Detail)
	}
	return strings.Join(v, " ")
}

func (e *CodeError) Is(err error) bool {
	var ce *CodeError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Code == e.Code
}

// well-known API errors
var (
	ErrArgs           = NewCodeError(1001, "bad request args")
	ErrTokenExpired   = NewCodeError(1501, "token expired or invalid")
	ErrUserExists     = NewCodeError(2001, "user already exists")
	ErrUserNotFound   = NewCodeError(2002, "user not found")
	ErrPassword       = NewCodeError(2003, "wrong password")
	ErrRecordNotFound = NewCodeError(3001, "record not found")
	ErrInternal       = NewCodeError(5000, "internal error")
)

// New / Wrap / WrapMsg keep infrastructure errors on the pkg/errors stack chain.

func New(msg string) error { return errors.New(msg) }

func Wrap(err error) error { return errors.WithStack(err) }

func WrapMsg(err error, msg string, kv ...any) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, toDetail(msg, kv))
}

func toDetail(msg string, kv []any) string {
	if len(kv) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		b.WriteString(" ")
		b.WriteString(toString(kv[i]))
		b.WriteString("=")
		if i+1 < len(kv) {
			b.WriteString(toString(kv[i+1]))
		}
	}
	return b.String()
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case error:
		return t.Error()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return "?"
	}
}
