// Package prepro provides stateless feature scaling for gonum matrices,
// designed for backend services that preprocess data before inference.
//
// Every transform recomputes its column statistics from the matrix it is
// given and returns a new *mat.Dense. Inputs are never modified and no
// state is kept between calls.
//
// # Features
//
//   - Min-max scaling onto [0, 1] or any [lo, hi] range
//   - Standard scaling with the sample standard deviation
//   - Custom affine scaling (x + offset) * factor
//   - Binarization against a threshold
//   - Fluent chaining and composable pipelines
//
// Constant columns never produce NaN or Inf. They are mapped to a fixed
// value and reported through the warning system in pkg/errors.
//
// # Installation
//
//	go get github.com/YuminosukeSato/prepro
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/prepro/preprocessing"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X, err := preprocessing.FromRows([][]float64{{-1, 2}, {-0.5, 6}, {0, 10}, {1, 18}})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := preprocessing.From(X).MinMaxScale().StandardScale().Binarize(0).Result()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(out))
//	}
//
// # Packages
//
//   - preprocessing: Scaling functions, transformer types, Chain and Pipeline
//   - core/model: Transformer interfaces
//   - core/parallel: Parallel processing utilities
//   - pkg/errors: Structured errors, warnings and panic recovery
//   - pkg/log: Structured logging (slog and zerolog)
//
// # Performance
//
// Column statistics are computed in parallel once a matrix has more than
// 64 columns. Each worker owns a disjoint set of columns.
//
// # License
//
// prepro is released under the MIT License.
package prepro
