package examples

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ZettaAI/SEAMLeSS/config"
)

// examples maps example names to generators.
var examples = map[string]func() (string, error){
	"config":   exampleConfig,
	"template": exampleTemplate,
}

// Cmd represents the examples command.
var Cmd = &cobra.Command{
	Use:     "examples [name]",
	Aliases: []string{"example"},
	Short:   "Print example configuration files.",
	RunE: func(cmd *cobra.Command, args []string) error {

		// Print a list of example names and exit
		if len(args) == 0 || args[0] == "list" {
			names := make([]string, 0, len(examples))
			for name := range examples {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		}

		gen, ok := examples[args[0]]
		if !ok {
			return fmt.Errorf("no example by the name of %s", args[0])
		}

		out, err := gen()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func exampleConfig() (string, error) {
	b, err := config.ToYaml(config.DefaultConfig())
	return string(b), err
}

func exampleTemplate() (string, error) {
	return config.DefaultConfig().Slurm.Template, nil
}
