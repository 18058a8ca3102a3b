// SPDX-License-Identifier: EPL-2.0

package subtype

import "log/slog"

// Severity of a diagnostic event.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// Event is a non-fatal diagnostic emitted during subtype resolution.
// Message content for fallback events is part of the public contract: it
// contains the words "falling back" and "compatibility".
type Event struct {
	Severity Severity
	Message  string
	// BitsPerSample is the requested depth that triggered the event.
	BitsPerSample int
	// Fallback is the subtype chosen instead of the best-fidelity match.
	Fallback ID
}

// Sink receives diagnostic events. Implementations must be safe for
// concurrent use.
type Sink interface {
	Emit(Event)
}

// slogSink is the default sink, logging through log/slog.
type slogSink struct{}

func (slogSink) Emit(e Event) {
	level := slog.LevelInfo
	if e.Severity == SeverityWarning {
		level = slog.LevelWarn
	}
	slog.Log(nil, level, e.Message,
		"bits_per_sample", e.BitsPerSample,
		"fallback_subtype", e.Fallback.String(),
	)
}
