package logger

import (
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"github.com/dmitrymomot/egyptid/core/sanitizer"
	"github.com/dmitrymomot/egyptid/pkg/luhn"
)

// Attribute helpers return an empty Attr for zero input, so calls like
// log.Info("msg", logger.Error(err)) need no nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// Keys are the argument indexes. Returns empty Attr when every error is nil.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed reports the time passed since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action creates an attribute for action names.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Result creates an attribute for operation results (valid/invalid/error).
func Result(result string) slog.Attr {
	return slog.String("result", result)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Version creates an attribute for version information.
func Version(v string) slog.Attr {
	return slog.String("version", v)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// MaskedPAN logs a card number with everything but the first six and last
// four digits hidden. The raw number never reaches the handler.
func MaskedPAN(pan string) slog.Attr {
	if pan == "" {
		return slog.Attr{}
	}
	return slog.String("pan", luhn.Mask(sanitizer.NormalizeNumeric(pan)))
}

// Carrier creates an attribute for a mobile network operator.
func Carrier(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("carrier", name)
}

// Governorate creates an attribute for a national ID governorate code.
func Governorate(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("governorate", code)
}

// Lang creates an attribute for the output language.
func Lang(code string) slog.Attr {
	return slog.String("lang", code)
}

// Caller returns information about the calling function.
func Caller() slog.Attr {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return slog.Attr{}
	}
	return slog.String("caller", file+":"+strconv.Itoa(line))
}
