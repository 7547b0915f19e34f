package expr

import (
	"math"

	"github.com/dcgp-go/dcgp/numeric"
)

// LossKind selects among the loss functions Loss can compute (spec.md
// §4.2).
type LossKind int

const (
	MSE LossKind = iota
	MAE
	CE
)

// Loss evaluates this Expression over points and compares against labels
// under the given loss kind, returning the mean loss across rows. points
// and labels must have equal length and each labels[i] must have length
// topo.M.
func (e *Expression[T]) Loss(kind LossKind, points, labels [][]T) (float64, error) {
	if len(points) != len(labels) || len(points) == 0 {
		return 0, ErrShapeMismatch
	}
	switch kind {
	case MSE, MAE, CE:
	default:
		return 0, ErrUnknownLossKind
	}

	var total float64
	for i, p := range points {
		pred, err := e.Call(p)
		if err != nil {
			return 0, err
		}
		if len(pred) != len(labels[i]) {
			return 0, ErrShapeMismatch
		}
		switch kind {
		case MSE:
			total += meanSquaredError(pred, labels[i])
		case MAE:
			total += meanAbsoluteError(pred, labels[i])
		case CE:
			total += crossEntropy(pred, labels[i])
		}
	}
	return total / float64(len(points)), nil
}

func meanSquaredError[T numeric.Scalar[T]](pred, label []T) float64 {
	var sum float64
	for i := range pred {
		d := pred[i].Float64() - label[i].Float64()
		sum += d * d
	}
	return sum / float64(len(pred))
}

func meanAbsoluteError[T numeric.Scalar[T]](pred, label []T) float64 {
	var sum float64
	for i := range pred {
		d := pred[i].Float64() - label[i].Float64()
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum / float64(len(pred))
}

// crossEntropy applies a softmax to pred before scoring against label,
// which is expected to be a one-hot (or soft) probability vector.
func crossEntropy[T numeric.Scalar[T]](pred, label []T) float64 {
	logits := make([]float64, len(pred))
	maxLogit := pred[0].Float64()
	for i, p := range pred {
		logits[i] = p.Float64()
		if logits[i] > maxLogit {
			maxLogit = logits[i]
		}
	}
	var denom float64
	for i := range logits {
		logits[i] -= maxLogit
		denom += math.Exp(logits[i])
	}
	var loss float64
	const floor = 1e-12
	for i := range logits {
		prob := math.Exp(logits[i]) / denom
		if prob < floor {
			prob = floor
		}
		loss -= label[i].Float64() * math.Log(prob)
	}
	return loss
}
