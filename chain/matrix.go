// File: matrix.go
// Role: Conversion between Chain and adjacency-matrix form.
//
// The sparse adjacency structure stays the source of truth; dense matrices
// are produced on demand and never cached (they go stale on mutation).
package chain

import "fmt"

// MatrixOption configures FromAdjacencyMatrix. Defaults: rows are normalized
// to sum 1, validation is on, and state labels are "0".."n-1".
type MatrixOption func(*matrixConfig)

type matrixConfig struct {
	labels    []string
	normalize bool
	validate  bool
}

// WithLabels supplies explicit state labels for matrix rows/columns.
// len(labels) must equal the matrix dimension (checked during validation).
func WithLabels(labels ...string) MatrixOption {
	return func(cfg *matrixConfig) { cfg.labels = labels }
}

// WithoutNormalize stores matrix entries as-is instead of dividing each row
// by its sum.
func WithoutNormalize() MatrixOption {
	return func(cfg *matrixConfig) { cfg.normalize = false }
}

// WithoutValidation skips the square/non-negative/zero-row/label-count checks.
// The emptiness check always applies.
func WithoutValidation() MatrixOption {
	return func(cfg *matrixConfig) { cfg.validate = false }
}

// FromAdjacencyMatrix builds a Chain from a square non-negative matrix,
// interpreted row-major: m[i][j] is the weight of the edge i→j. Zero entries
// are omitted (not stored as zero-weight transitions). All row/column labels
// are registered as states up front, in matrix order, so the chain's state
// enumeration matches the matrix even for states with no positive entries.
//
// Validation (on by default) fails with:
//   - ErrEmptyMatrix         — no rows (checked even when validation is off)
//   - ErrNonSquareMatrix     — a row length differs from the row count
//   - ErrStateCountMismatch  — len(labels) != dimension
//   - ErrNegativeEntry       — any entry < 0
//   - ErrZeroRow             — a row sums to zero
//
// Complexity: O(n²).
func FromAdjacencyMatrix(m [][]float64, opts ...MatrixOption) (*Chain, error) {
	cfg := matrixConfig{normalize: true, validate: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(m)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	if cfg.validate {
		if err := validateMatrix(m, cfg.labels); err != nil {
			return nil, err
		}
	}

	labels := cfg.labels
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("%d", i)
		}
	}
	if len(labels) != n {
		return nil, ErrStateCountMismatch
	}

	c := New(WithStates(labels...))

	for i, row := range m {
		total := 0.0
		for _, v := range row {
			total += v
		}
		for j, v := range row {
			if v <= 0 {
				continue
			}
			p := v
			if cfg.normalize {
				p = v / total
			}
			if err := c.AddTransition(labels[i], labels[j], p, nil); err != nil {
				return nil, fmt.Errorf("FromAdjacencyMatrix: %w", err)
			}
		}
	}

	return c, nil
}

// validateMatrix checks squareness, label count, non-negativity, and
// positive row sums.
func validateMatrix(m [][]float64, labels []string) error {
	n := len(m)

	for _, row := range m {
		if len(row) != n {
			return fmt.Errorf("FromAdjacencyMatrix: row length %d vs dimension %d: %w", len(row), n, ErrNonSquareMatrix)
		}
	}

	if labels != nil && len(labels) != n {
		return fmt.Errorf("FromAdjacencyMatrix: %d labels for dimension %d: %w", len(labels), n, ErrStateCountMismatch)
	}

	for i, row := range m {
		total := 0.0
		for _, v := range row {
			if v < 0 {
				return fmt.Errorf("FromAdjacencyMatrix: row %d: %w", i, ErrNegativeEntry)
			}
			total += v
		}
		if total == 0 {
			return fmt.Errorf("FromAdjacencyMatrix: row %d: %w", i, ErrZeroRow)
		}
	}

	return nil
}

// ToMatrix exports the chain as a dense n×n row-major matrix. Row and column
// order follow the given state order; a nil order means the chain's natural
// (insertion) order. Absent edges become 0.0. An unknown label in order
// fails with ErrStateNotFound.
// Complexity: O(n²).
func (c *Chain) ToMatrix(order []string) ([][]float64, error) {
	if order == nil {
		order = c.order
	}
	for _, s := range order {
		if !c.HasState(s) {
			return nil, fmt.Errorf("ToMatrix(%q): %w", s, ErrStateNotFound)
		}
	}

	n := len(order)
	out := make([][]float64, n)
	for i, u := range order {
		out[i] = make([]float64, n)
		for j, v := range order {
			out[i][j] = c.TransitionMass(u, v)
		}
	}

	return out, nil
}

// ToSparse exports the chain as a sparse mapping origin → {target: weight},
// containing only stored transitions. A nil order means all states in
// insertion order; an unknown label fails with ErrStateNotFound.
// Complexity: O(V + E).
func (c *Chain) ToSparse(order []string) (map[string]map[string]float64, error) {
	if order == nil {
		order = c.order
	}

	out := make(map[string]map[string]float64, len(order))
	for _, u := range order {
		nbrs, ok := c.trans[u]
		if !ok {
			return nil, fmt.Errorf("ToSparse(%q): %w", u, ErrStateNotFound)
		}
		row := make(map[string]float64, len(nbrs))
		for v, rec := range nbrs {
			row[v] = rec.P
		}
		out[u] = row
	}

	return out, nil
}
