package output

import (
	"fmt"
	"strings"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// Formatter renders a tax assessment for one output target. Implementations
// are pure: same assessment in, same bytes out.
type Formatter interface {
	Format(a *domain.TaxAssessment) ([]byte, error)
	// Name returns a short identifier used for --format lookup and logging.
	Name() string
}

// builtInFormatters stores the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName fetches a registered formatter, or an error naming the
// known ones.
func GetFormatterByName(name string) (Formatter, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(FormatterNames(), ", "))
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}
