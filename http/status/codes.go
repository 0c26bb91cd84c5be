package status

import "strconv"

// Code is a numeric HTTP status code.
type Code uint16

// Known status codes. The numeric value doubles as the wire status code.
const (
	OK         Code = 200
	BadRequest Code = 400
	NotFound   Code = 404
)

// KnownCodes contains every status code the server is able to produce.
var KnownCodes = []Code{OK, BadRequest, NotFound}

// Text returns the reason phrase for the code. Note that phrases are written without
// spaces, e.g. "BadRequest".
func Text(code Code) string {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "BadRequest"
	case NotFound:
		return "NotFound"
	default:
		return "Unknown Status Code"
	}
}

// String returns the decimal representation of the code.
func (c Code) String() string {
	return strconv.FormatUint(uint64(c), 10)
}
