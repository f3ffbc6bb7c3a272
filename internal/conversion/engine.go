package conversion

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"easyconvert.app/internal/logging"
	"easyconvert.app/internal/units"
)

// ConversionResult is a successfully converted query, ready for display.
type ConversionResult struct {
	InputValue  string `json:"inputValue"`
	InputUnit   string `json:"inputUnit"`
	OutputValue string `json:"outputValue"`
	OutputUnit  string `json:"outputUnit"`
	Type        string `json:"type"`
	// Value is the unrounded output.
	Value float64 `json:"value"`

	// In and Out are the interpretations the query resolved to.
	In  units.Match `json:"-"`
	Out units.Match `json:"-"`
}

func (r ConversionResult) String() string {
	return fmt.Sprintf("%s %s = %s %s", r.InputValue, r.InputUnit, r.OutputValue, r.OutputUnit)
}

// Engine parses and converts free-text queries against a unit registry. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	registry *units.Registry
	logger   *slog.Logger
}

// NewEngine returns an engine over reg. A nil logger discards engine logs.
func NewEngine(reg *units.Registry, logger *slog.Logger) *Engine {
	return &Engine{registry: reg, logger: logger}
}

// Registry returns the catalog the engine resolves units against.
func (e *Engine) Registry() *units.Registry {
	return e.registry
}

// ParseConversion converts a query such as "10f to c". Every failure caused by the query text
// wraps ErrNoResult; any other error is a fault in the catalog.
func (e *Engine) ParseConversion(query string) (ConversionResult, error) {
	result, err := e.parse(query)
	if err != nil {
		e.logFailure(query, err)
		return ConversionResult{}, err
	}
	return result, nil
}

func (e *Engine) parse(query string) (ConversionResult, error) {
	pq, err := Tokenize(query)
	if err != nil {
		return ConversionResult{}, err
	}

	raw, err := strconv.ParseFloat(pq.Value, 64)
	if err != nil {
		return ConversionResult{}, fmt.Errorf("%w: numeral %q", ErrTokenize, pq.Value)
	}

	in, out, err := e.pick(pq.InputUnitText, pq.OutputUnitText)
	if err != nil {
		return ConversionResult{}, err
	}

	value := Convert(raw, in, out)
	shortened := ShortenNumber(value)

	return ConversionResult{
		InputValue:  pq.Value,
		InputUnit:   DisplayName(in, pq.Value),
		OutputValue: shortened,
		OutputUnit:  DisplayName(out, shortened),
		Type:        in.Unit.Type,
		Value:       value,
		In:          in,
		Out:         out,
	}, nil
}

// pick resolves both phrases and returns the first candidate pair sharing a family. A phrase
// with a plain match is never reread as prefixed, so "1 ft to gm" fails.
func (e *Engine) pick(inText, outText string) (units.Match, units.Match, error) {
	inMatches, err := e.registry.Resolve(inText)
	if err != nil {
		return units.Match{}, units.Match{}, err
	}
	outMatches, err := e.registry.Resolve(outText)
	if err != nil {
		return units.Match{}, units.Match{}, err
	}

	if len(inMatches) == 0 {
		return units.Match{}, units.Match{}, fmt.Errorf("%w: %q", ErrUnitNotFound, inText)
	}
	if len(outMatches) == 0 {
		return units.Match{}, units.Match{}, fmt.Errorf("%w: %q", ErrUnitNotFound, outText)
	}

	if in, out, ok := firstSameFamily(inMatches, outMatches); ok {
		return in, out, nil
	}

	return units.Match{}, units.Match{}, fmt.Errorf("%w: %q and %q", ErrFamilyMismatch, inText, outText)
}

func firstSameFamily(in, out []units.Match) (units.Match, units.Match, bool) {
	for _, i := range in {
		for _, o := range out {
			if i.Unit.Type == o.Unit.Type {
				return i, o, true
			}
		}
	}
	return units.Match{}, units.Match{}, false
}

func (e *Engine) logFailure(query string, err error) {
	if e.logger == nil {
		return
	}
	if errors.Is(err, ErrNoResult) {
		e.logger.Debug("conversion failed",
			slog.String("query", query),
			slog.String("reason", FailureKind(err)),
			slog.String("error", err.Error()))
		return
	}
	logging.LogError(e.logger, "conversion catalog fault", err,
		slog.String("query", query),
		slog.String("component", "conversion"))
}
