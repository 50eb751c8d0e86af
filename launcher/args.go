package launcher

import (
	"strconv"
	"strings"

	"github.com/ZettaAI/SEAMLeSS/config"
)

// options fixes the order of the argument list the training program
// expects. Each option renders its own tokens; boolean toggles render
// nothing when disabled, so disabling one never shifts the others.
var options = []func(config.Launch) []string{
	func(c config.Launch) []string { return []string{"--num_workers", strconv.Itoa(c.NumWorkers)} },
	func(c config.Launch) []string { return []string{"--gpu_ids", csv(c.GPUIds)} },
	func(c config.Launch) []string { return []string{"start", c.RunName} },
	func(c config.Launch) []string { return []string{"--training_set", c.TrainingSet} },
	func(c config.Launch) []string { return []string{"--validation_set", c.ValidationSet} },
	func(c config.Launch) []string { return []string{"--height", strconv.Itoa(c.Height)} },
	func(c config.Launch) []string { return []string{"--seed", strconv.Itoa(c.Seed)} },
	func(c config.Launch) []string {
		if !c.Update {
			return nil
		}
		return []string{"-u"}
	},
	func(c config.Launch) []string { return []string{"--lr", formatFloat(c.LearningRate)} },
	func(c config.Launch) []string { return []string{"--lambda1", formatFloat(c.Lambda1)} },
	func(c config.Launch) []string { return []string{"--plan", c.Plan} },
	func(c config.Launch) []string {
		if !c.Encodings {
			return nil
		}
		return []string{"--encodings"}
	},
}

// Args renders the ordered argument list passed to the training program.
func Args(c config.Launch) []string {
	var args []string
	for _, opt := range options {
		args = append(args, opt(c)...)
	}
	return args
}

func csv(ids []int) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.Itoa(id)
	}
	return strings.Join(strs, ",")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
