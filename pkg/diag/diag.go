// Package diag defines the structured warnings and errors emitted
// throughout the tag-to-lanes pipeline.
package diag

import (
	"errors"
	"fmt"
	"sort"
)

// Severity distinguishes recoverable diagnostics from ones that abort the
// transform.
type Severity string

const (
	Warning Severity = "warning"
	Error   Severity = "error"
)

// Code is a stable identifier for a diagnostic kind, safe to match on
// across versions.
type Code string

// Error codes: these abort the call and surface as a *Err error value.
const (
	UnknownHighwayClass Code = "unknown_highway_class"
	MalformedLaneCount  Code = "malformed_lane_count"
	UnitParseFailure    Code = "unit_parse_failure"
	NegativeWidth       Code = "negative_width"
)

// Warning codes: these accumulate but never abort (unless promoted by
// Config.ErrorOnWarnings).
const (
	UnconsumedKnownTag Code = "unconsumed_known_tag"
	TagConflict        Code = "tag_conflict"
	LaneCountMismatch  Code = "lane_count_mismatch"
	DeprecatedTagForm  Code = "deprecated_tag_form"
	AmbiguousDirection Code = "ambiguous_direction"
	UnknownValue       Code = "unknown_value"
	InconsistentOneway Code = "inconsistent_oneway"
)

// errorCodes is the set of codes that must carry Severity Error.
var errorCodes = map[Code]bool{
	UnknownHighwayClass: true,
	MalformedLaneCount:  true,
	UnitParseFailure:    true,
	NegativeWidth:       true,
}

// Diagnostic is one warning or error produced by a parser or the assembler.
type Diagnostic struct {
	Severity      Severity
	Code          Code
	Message       string
	OffendingKeys []string
}

// Warningf builds a Warning diagnostic.
func Warningf(code Code, keys []string, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Warning, Code: code, Message: fmt.Sprintf(format, args...), OffendingKeys: keys}
}

// Errorf builds an Error diagnostic. Panics if code is not a registered
// error code — a programmer mistake, not a runtime condition.
func Errorf(code Code, keys []string, format string, args ...any) Diagnostic {
	if !errorCodes[code] {
		panic(fmt.Sprintf("diag: %q is not an error code", code))
	}
	return Diagnostic{Severity: Error, Code: code, Message: fmt.Sprintf(format, args...), OffendingKeys: keys}
}

// IsError reports whether this diagnostic should abort the transform.
func (d Diagnostic) IsError() bool {
	return d.Severity == Error
}

// Err is the aborting error type returned by transform.TagsToLanes when an
// Error diagnostic is produced (or a warning is promoted by
// Config.ErrorOnWarnings). It carries the full diagnostic list accumulated
// up to the point of abort.
type Err struct {
	Code          Code
	Message       string
	OffendingKeys []string
	All           []Diagnostic
}

func (e *Err) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// sentinels lets callers use errors.Is(err, diag.ErrMalformedLaneCount)
// without caring whether err is a *Err or something wrapping it.
type sentinel struct{ code Code }

func (s sentinel) Error() string { return string(s.code) }

var (
	ErrUnknownHighwayClass = sentinel{UnknownHighwayClass}
	ErrMalformedLaneCount  = sentinel{MalformedLaneCount}
	ErrUnitParseFailure    = sentinel{UnitParseFailure}
	ErrNegativeWidth       = sentinel{NegativeWidth}
)

// Is lets errors.Is(err, diag.ErrXxx) match a *Err carrying the same code.
func (e *Err) Is(target error) bool {
	s, ok := target.(sentinel)
	if !ok {
		return false
	}
	return s.code == e.Code
}

// FromDiagnostics builds an *Err from the first Error-severity diagnostic
// in ds, carrying the full list. Returns nil if ds contains no error.
func FromDiagnostics(ds []Diagnostic) *Err {
	for _, d := range ds {
		if d.IsError() {
			return &Err{Code: d.Code, Message: d.Message, OffendingKeys: d.OffendingKeys, All: ds}
		}
	}
	return nil
}

// SortForDeterminism sorts diagnostics by code then message, so repeated
// runs over the same tags produce byte-identical diagnostic lists (the
// underlying map iteration order in Tags.Subtree is otherwise sorted by
// key already, but diagnostics from independent parsers are appended in
// parser-registration order — this is an extra safety net for tests).
func SortForDeterminism(ds []Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Code != ds[j].Code {
			return ds[i].Code < ds[j].Code
		}
		return ds[i].Message < ds[j].Message
	})
}

// As is re-exported for convenience so callers need only import diag.
var As = errors.As
