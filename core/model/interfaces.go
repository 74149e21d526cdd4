// Package model defines the interfaces shared by every transform.
package model

// ParameterGetter is the interface for transforms that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the transform's parameters keyed by their
	// scikit-learn names (e.g. "feature_range", "threshold").
	GetParams() map[string]interface{}
}

// NamedTransformer is a Transformer that can also describe itself,
// which is what Pipeline logs for each step.
type NamedTransformer interface {
	Transformer
	ParameterGetter
	String() string
}
