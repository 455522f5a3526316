package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"qgatedeck/internal/backend"
)

// amplitudeEpsilon is how close a value must be to a known amplitude to print symbolically.
const amplitudeEpsilon = 1e-10

// formatAmplitude formats one amplitude, using a symbolic form when it matches a common value.
// Recognizes 0, 1, 1/2, 1/√2 and their negatives.
func formatAmplitude(val float64) string {
	type ampForm struct {
		value   float64
		display string
	}
	forms := []ampForm{
		{0, "0"},
		{1, "1"},
		{1 / math.Sqrt2, "1/√2"},
		{0.5, "1/2"},
	}

	for _, f := range forms {
		if math.Abs(val-f.value) < amplitudeEpsilon {
			return f.display
		}
		if math.Abs(val+f.value) < amplitudeEpsilon {
			return "-" + f.display
		}
	}

	return fmt.Sprintf("%.4g", val)
}

// basisProbabilities returns the squared magnitude of each row of the state vector.
// Rows are summed so a malformed row with several entries still yields one value.
// Nothing is normalized.
func basisProbabilities(s backend.StateVector) []float64 {
	probs := make([]float64, len(s))
	for i, row := range s {
		for _, a := range row {
			probs[i] += a * a
		}
	}
	return probs
}

// basisLabel returns the ket label for basis index i out of n states.
func basisLabel(i, n int) string {
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	if bits == 0 {
		return fmt.Sprintf("|%d⟩", i)
	}
	return fmt.Sprintf("|%0*b⟩", bits, i)
}

// stateJSON pretty-prints the state vector as indented JSON.
func stateJSON(s backend.StateVector) string {
	if s == nil {
		s = backend.StateVector{}
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Sprintf("<unprintable state: %v>", err)
	}
	return string(b)
}

// renderAmplitudes renders one line per basis state: ket, symbolic amplitude and probability bar.
func renderAmplitudes(s backend.StateVector) string {
	var sb strings.Builder
	probs := basisProbabilities(s)
	for i, row := range s {
		amps := make([]string, len(row))
		for j, a := range row {
			amps[j] = formatAmplitude(a)
		}
		filled := int(math.Round(math.Min(probs[i], 1) * probBarW))
		bar := probBarStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", probBarW-filled))
		fmt.Fprintf(&sb, "%s  %-8s %s %5.1f%%\n",
			qubitLabelStyle.Render(basisLabel(i, len(s))),
			strings.Join(amps, ","),
			bar,
			probs[i]*100,
		)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
