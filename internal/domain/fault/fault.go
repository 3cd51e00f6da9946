// internal/domain/fault/fault.go
package fault

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies every failure the bot knows how to report.
type Kind int

const (
	KindUnknown       Kind = iota
	KindConfig             // a required credential is absent or malformed
	KindConnectivity       // the API could not be reached
	KindBadStatus          // the API answered with a status other than 200
	KindSchema             // the response body is not shaped as expected
	KindUnknownStatus      // a homework carries a status absent from the verdict table
	KindMissingName        // a homework has no homework_name
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindConnectivity:
		return "connectivity"
	case KindBadStatus:
		return "bad_status"
	case KindSchema:
		return "schema"
	case KindUnknownStatus:
		return "unknown_status"
	case KindMissingName:
		return "missing_name"
	default:
		return "unknown"
	}
}

// Fault is the single error type used across the bot.
// Only the context fields relevant to Kind are set.
type Fault struct {
	Kind       Kind
	Key        string   // missing or mistyped JSON key (KindSchema)
	Status     string   // received homework status (KindUnknownStatus)
	StatusCode int      // received HTTP status code (KindBadStatus)
	Missing    []string // missing environment variables (KindConfig)
	Detail     string
	Err        error
}

func (f *Fault) Error() string {
	var msg string
	switch f.Kind {
	case KindConfig:
		if len(f.Missing) > 0 {
			msg = fmt.Sprintf("missing required environment variables: %s", strings.Join(f.Missing, ", "))
		} else {
			msg = "invalid configuration"
		}
	case KindConnectivity:
		msg = "API connection error"
	case KindBadStatus:
		msg = fmt.Sprintf("API status code not equal 200: got %d", f.StatusCode)
	case KindSchema:
		msg = "unexpected API response"
		if f.Key != "" {
			msg = fmt.Sprintf("%s: key %q", msg, f.Key)
		}
	case KindUnknownStatus:
		msg = fmt.Sprintf("homework status %q is not valid", f.Status)
	case KindMissingName:
		msg = "missing homework_name"
	default:
		msg = "unknown fault"
	}
	if f.Detail != "" {
		msg += ": " + f.Detail
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// KindOf returns the Kind of the first Fault in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnknown
}

// Is reports whether err carries a Fault of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func Config(missing ...string) *Fault {
	return &Fault{Kind: KindConfig, Missing: missing}
}

func Connectivity(err error) *Fault {
	return &Fault{Kind: KindConnectivity, Err: err}
}

func BadStatus(code int) *Fault {
	return &Fault{Kind: KindBadStatus, StatusCode: code}
}

func Schema(key, detail string) *Fault {
	return &Fault{Kind: KindSchema, Key: key, Detail: detail}
}

func UnknownStatus(status string) *Fault {
	return &Fault{Kind: KindUnknownStatus, Status: status}
}

func MissingName() *Fault {
	return &Fault{Kind: KindMissingName}
}
