package scpi

import (
	"errors"
	"strconv"
	"strings"

	"rfswitch-go/errcode"
)

// SCPI error numbers used by this instrument.
const (
	ErrNone            = 0
	ErrCommand         = -100
	ErrSyntax          = -102
	ErrDataType        = -104
	ErrParamNotAllowed = -108
	ErrMissingParam    = -109
	ErrUndefinedHeader = -113
	ErrInvalidCharData = -141
	ErrInvalidString   = -151
	ErrExecution       = -200
	ErrDataOutOfRange  = -222
	ErrQueueOverflow   = -350
)

var errorText = map[int]string{
	ErrNone:            "No error",
	ErrCommand:         "Command error",
	ErrSyntax:          "Syntax error",
	ErrDataType:        "Data type error",
	ErrParamNotAllowed: "Parameter not allowed",
	ErrMissingParam:    "Missing parameter",
	ErrUndefinedHeader: "Undefined header",
	ErrInvalidCharData: "Invalid character data",
	ErrInvalidString:   "Invalid string data",
	ErrExecution:       "Execution error",
	ErrDataOutOfRange:  "Data out of range",
	ErrQueueOverflow:   "Queue overflow",
}

// ErrorText returns the standard text for an error number.
func ErrorText(code int) string {
	if s, ok := errorText[code]; ok {
		return s
	}
	return "Unknown error"
}

// Error is one entry of the error queue. Info is the device-specific detail
// appended after a ';' when the entry is read.
type Error struct {
	Code int
	Info string
}

func (e Error) Error() string { return e.String() }

// String renders the SYSTem:ERRor? form: <code>,"<text>[;<info>]".
func (e Error) String() string {
	s := ErrorText(e.Code)
	if e.Info != "" {
		s += ";" + e.Info
	}
	return strconv.Itoa(e.Code) + `,"` + s + `"`
}

// QueueDepth is the size of the error queue.
const QueueDepth = 16

// errorQueue keeps the oldest errors. When full, the newest entry is
// replaced by "Queue overflow".
type errorQueue struct {
	items []Error
}

func (q *errorQueue) push(e Error) {
	if len(q.items) >= QueueDepth {
		q.items[QueueDepth-1] = Error{Code: ErrQueueOverflow}
		return
	}
	q.items = append(q.items, e)
}

func (q *errorQueue) pop() Error {
	if len(q.items) == 0 {
		return Error{Code: ErrNone}
	}
	e := q.items[0]
	q.items = q.items[1:]
	return e
}

func (q *errorQueue) len() int { return len(q.items) }
func (q *errorQueue) clear()   { q.items = nil }

// fromErr maps a core error onto a SCPI error.
func fromErr(err error) Error {
	var se Error
	if errors.As(err, &se) {
		return se
	}
	switch errcode.Of(err) {
	case errcode.SameEndpoint:
		return Error{Code: ErrInvalidCharData, Info: "Same endpoint"}
	case errcode.UnsupportedPath:
		return Error{Code: ErrInvalidCharData, Info: "Unsupported connection"}
	case errcode.InvalidEndpoint:
		info := "Wrong endpoint"
		var e *errcode.E
		if errors.As(err, &e) && strings.HasPrefix(e.Msg, "wrong endpoint") {
			info = "W" + e.Msg[1:]
		}
		return Error{Code: ErrInvalidCharData, Info: info}
	case errcode.InvalidParams:
		return Error{Code: ErrInvalidCharData, Info: "Wrong Length"}
	case errcode.FrequencyOutOfRange:
		return Error{Code: ErrDataOutOfRange}
	default:
		return Error{Code: ErrExecution, Info: err.Error()}
	}
}
