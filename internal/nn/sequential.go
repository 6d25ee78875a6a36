package nn

import (
	"fmt"

	"github.com/LaviSchlyter/Deep-learning-project/internal/autodiff"
	"github.com/LaviSchlyter/Deep-learning-project/internal/tensor"
)

// Sequential is a container module that chains sub-modules: each module's
// output becomes the next module's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 25),
//	    nn.NewReLU(),
//	    nn.NewLinear(25, 1),
//	    nn.NewSigmoid(),
//	)
type Sequential struct {
	modules []Module
}

// NewSequential creates a Sequential container from the given modules.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward threads the input through every module in order.
func (s *Sequential) Forward(input *autodiff.Node) *autodiff.Node {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters concatenates each sub-module's parameters in module order.
// The order is deterministic; optimizers and checkpoints rely on it.
func (s *Sequential) Parameters() []*autodiff.Node {
	var params []*autodiff.Node
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// At returns the module at the given index.
func (s *Sequential) At(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("nn: Sequential.At: index out of bounds")
	}
	return s.modules[index]
}

// StateDict returns all sub-module parameters, keyed with the module
// index as prefix (e.g. "0.weight", "2.bias").
func (s *Sequential) StateDict() map[string]*tensor.Tensor {
	state := make(map[string]*tensor.Tensor)
	for i, module := range s.modules {
		sd, ok := module.(StateDicter)
		if !ok {
			continue
		}
		for name, value := range sd.StateDict() {
			state[fmt.Sprintf("%d.%s", i, name)] = value
		}
	}
	return state
}

// LoadStateDict loads sub-module parameters from an index-prefixed state
// dictionary.
func (s *Sequential) LoadStateDict(state map[string]*tensor.Tensor) error {
	for i, module := range s.modules {
		sd, ok := module.(StateDicter)
		if !ok {
			continue
		}
		prefix := fmt.Sprintf("%d.", i)
		sub := make(map[string]*tensor.Tensor)
		for key, value := range state {
			if len(key) > len(prefix) && key[:len(prefix)] == prefix {
				sub[key[len(prefix):]] = value
			}
		}
		if err := sd.LoadStateDict(sub); err != nil {
			return fmt.Errorf("nn: Sequential: module %d: %w", i, err)
		}
	}
	return nil
}
