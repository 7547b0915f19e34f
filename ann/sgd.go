package ann

import "github.com/dcgp-go/dcgp/rng"

// Sgd runs one epoch of mini-batch stochastic gradient descent (spec.md
// §4.3): shuffles the dataset indices via eng, then for each batch of
// batchSize consecutive (post-shuffle) examples computes the averaged
// MseBatch gradient and applies w -= lr*g_w, b -= lr*g_b. Returns the
// mean loss over all batches in the epoch.
//
// Only MSE is supported (ErrUnsupportedLossKind is never returned,
// since Sgd has no loss-kind parameter — see
// ErrUnsupportedLossKind's doc comment for why MAE/CE SGD is out of
// scope here).
func (a *ExpressionANN[T]) Sgd(points, labels [][]T, lr float64, batchSize int, eng *rng.Engine) (float64, error) {
	if len(points) != len(labels) || len(points) == 0 {
		return 0, ErrShapeMismatch
	}
	if lr <= 0 {
		return 0, ErrInvalidLearningRate
	}
	if batchSize <= 0 || batchSize > len(points) {
		return 0, ErrInvalidBatchSize
	}

	order := eng.PermRange(len(points))
	lrT := a.template.Lift(lr)

	var totalLoss float64
	nBatches := 0
	for start := 0; start < len(points); start += batchSize {
		end := start + batchSize
		if end > len(points) {
			end = len(points)
		}
		batchIdx := order[start:end]
		bp := make([][]T, len(batchIdx))
		bl := make([][]T, len(batchIdx))
		for i, idx := range batchIdx {
			bp[i] = points[idx]
			bl[i] = labels[idx]
		}

		loss, gw, gb, err := a.MseBatch(bp, bl)
		if err != nil {
			return 0, err
		}
		totalLoss += loss
		nBatches++

		for i := range a.weights {
			a.weights[i] = a.weights[i].Sub(gw[i].Mul(lrT))
		}
		for i := range a.biases {
			a.biases[i] = a.biases[i].Sub(gb[i].Mul(lrT))
		}
	}
	return totalLoss / float64(nBatches), nil
}
