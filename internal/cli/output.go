package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/factorial"
	"github.com/jmgilman/go/factorial/internal/config"
	"gopkg.in/yaml.v3"
)

// Result is the rendered form of a factorization.
type Result struct {
	N        uint64           `json:"n" yaml:"n"`
	Factors  []factorial.Term `json:"factors" yaml:"factors"`
	Divisors string           `json:"divisors" yaml:"divisors"`
	Verified *bool            `json:"verified,omitempty" yaml:"verified,omitempty"`

	factorization factorial.Factorization
}

// NewResult builds a Result for the factorization of n!.
func NewResult(n uint64, f factorial.Factorization) *Result {
	return &Result{
		N:             n,
		Factors:       f.Terms(),
		Divisors:      f.NumDivisors().String(),
		factorization: f,
	}
}

// Render writes the result to w in the given format.
func Render(w io.Writer, format string, r *Result) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to encode JSON output")
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to encode YAML output")
		}
		return enc.Close()
	case config.FormatText:
		return renderText(w, r)
	default:
		return errors.Newf(errors.CodeInvalidInput, "unknown output format %q", format)
	}
}

func renderText(w io.Writer, r *Result) error {
	renderer := lipgloss.NewRenderer(w)
	label := renderer.NewStyle().Bold(true)
	value := renderer.NewStyle().Foreground(lipgloss.Color("6"))

	lines := []string{
		label.Render(fmt.Sprintf("%d! =", r.N)) + " " + value.Render(r.factorization.String()),
		label.Render("primes:") + " " + fmt.Sprint(len(r.Factors)),
		label.Render("divisors:") + " " + r.Divisors,
	}
	if r.Verified != nil {
		lines = append(lines, label.Render("verified:")+" "+fmt.Sprint(*r.Verified))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to write output")
		}
	}
	return nil
}
