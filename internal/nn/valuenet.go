package nn

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"deepholdem/internal/poker"
	"deepholdem/internal/value"
)

// ValueNet serves a pretrained ONNX counterfactual-value model behind the
// predictor interface the solver consumes. One net handles one (round,
// phase) pair; the batch dimension is dynamic.
type ValueNet struct {
	round       poker.Round
	phase       value.Phase
	session     *ort.DynamicAdvancedSession
	inputWidth  int
	outputWidth int
}

// ModelFileName is the naming scheme weight files are stored under, e.g.
// "turn_root.onnx" or "flop_leaf.onnx".
func ModelFileName(round poker.Round, phase value.Phase) string {
	return fmt.Sprintf("%s_%s.onnx", round, phase)
}

// NewValueNet loads the weights for (round, phase) from modelDir. A missing
// weight file reports value.ErrWeightsNotFound; session-creation failures
// come back as-is.
func NewValueNet(round poker.Round, phase value.Phase, modelDir string) (*ValueNet, error) {
	path, err := resolveModelPath(modelDir, ModelFileName(round, phase))
	if err != nil {
		return nil, err
	}
	session, err := ort.NewDynamicAdvancedSession(path,
		[]string{"inputs"}, []string{"values"}, nil)
	if err != nil {
		return nil, fmt.Errorf("onnx session for %s: %w", path, err)
	}
	return &ValueNet{
		round:       round,
		phase:       phase,
		session:     session,
		inputWidth:  value.InputWidth(),
		outputWidth: value.OutputWidth(),
	}, nil
}

// Predict runs the model over rows, writing counterfactual values in place
// into outputs. Both slices remain caller-owned; the tensors built here
// alias them only for the duration of the call.
func (n *ValueNet) Predict(inputs, outputs []float32, rows int) error {
	if rows <= 0 {
		return fmt.Errorf("predict needs rows > 0, got %d", rows)
	}
	if len(inputs) < rows*n.inputWidth || len(outputs) < rows*n.outputWidth {
		return fmt.Errorf("predict buffers too small for %d rows", rows)
	}
	in, err := ort.NewTensor(ort.NewShape(int64(rows), int64(n.inputWidth)), inputs[:rows*n.inputWidth])
	if err != nil {
		return err
	}
	defer in.Destroy()
	out, err := ort.NewTensor(ort.NewShape(int64(rows), int64(n.outputWidth)), outputs[:rows*n.outputWidth])
	if err != nil {
		return err
	}
	defer out.Destroy()
	return n.session.Run([]ort.Value{in}, []ort.Value{out})
}

// Close destroys the session.
func (n *ValueNet) Close() error {
	if n.session == nil {
		return nil
	}
	err := n.session.Destroy()
	n.session = nil
	return err
}

// Loader adapts NewValueNet to the solver's model-loader contract for a
// fixed model directory.
func Loader(modelDir string) value.ModelLoader {
	return func(round poker.Round, phase value.Phase) (value.Predictor, error) {
		return NewValueNet(round, phase, modelDir)
	}
}
