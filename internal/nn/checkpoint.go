package nn

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// StateDicter is implemented by modules whose parameters can be
// snapshotted and restored. Stateless modules (activations) simply do
// not implement it and are skipped by containers.
type StateDicter interface {
	// StateDict returns parameter values keyed by name.
	StateDict() map[string]*tensor.Tensor

	// LoadStateDict copies values from a state dictionary into the
	// module's parameters. Shapes must match.
	LoadStateDict(state map[string]*tensor.Tensor) error
}

// Checkpoint is a snapshot of training state: the model parameters plus
// enough metadata to resume or inspect a run.
type Checkpoint struct {
	Epoch     int                       `json:"epoch"`
	Loss      float64                   `json:"loss"`
	CreatedAt time.Time                 `json:"created_at"`
	State     map[string]*tensor.Tensor `json:"state"`
}

// SaveCheckpoint writes the model's state dictionary and metadata to a
// JSON file.
func SaveCheckpoint(path string, model Module, epoch int, loss float64) error {
	sd, ok := model.(StateDicter)
	if !ok {
		return fmt.Errorf("nn: SaveCheckpoint: model %T has no state dict", model)
	}

	checkpoint := Checkpoint{
		Epoch:     epoch,
		Loss:      loss,
		CreatedAt: time.Now().UTC(),
		State:     sd.StateDict(),
	}
	encoded, err := json.MarshalIndent(&checkpoint, "", "  ")
	if err != nil {
		return fmt.Errorf("nn: SaveCheckpoint: encode: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("nn: SaveCheckpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads a checkpoint file and restores the model's
// parameters from it. The returned checkpoint carries the metadata.
func LoadCheckpoint(path string, model Module) (*Checkpoint, error) {
	sd, ok := model.(StateDicter)
	if !ok {
		return nil, fmt.Errorf("nn: LoadCheckpoint: model %T has no state dict", model)
	}

	encoded, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nn: LoadCheckpoint: %w", err)
	}
	var checkpoint Checkpoint
	if err := json.Unmarshal(encoded, &checkpoint); err != nil {
		return nil, fmt.Errorf("nn: LoadCheckpoint: decode: %w", err)
	}
	if err := sd.LoadStateDict(checkpoint.State); err != nil {
		return nil, fmt.Errorf("nn: LoadCheckpoint: %w", err)
	}
	return &checkpoint, nil
}

// prefixInto copies src entries into dst with the given key prefix.
func prefixInto(dst map[string]*tensor.Tensor, prefix string, src map[string]*tensor.Tensor) {
	for name, value := range src {
		dst[prefix+name] = value
	}
}

// subState extracts the entries under the given prefix, with the prefix
// stripped.
func subState(state map[string]*tensor.Tensor, prefix string) map[string]*tensor.Tensor {
	sub := make(map[string]*tensor.Tensor)
	for key, value := range state {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			sub[key[len(prefix):]] = value
		}
	}
	return sub
}
