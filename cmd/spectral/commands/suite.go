package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spectral/experiment"
)

var suiteFile string

// experimentSpec is the YAML shape of one suite entry; see suite.example.yaml.
type experimentSpec struct {
	Name       string  `mapstructure:"name"`
	Blocks     int     `mapstructure:"blocks"`
	BlockSize  int     `mapstructure:"block_size"`
	Within     float64 `mapstructure:"within"`
	Between    float64 `mapstructure:"between"`
	Components int     `mapstructure:"components"`
	Elbows     int     `mapstructure:"elbows"`
	Seed       int64   `mapstructure:"seed"`
}

// config maps a suite entry onto an experiment configuration.
func (s experimentSpec) config() experiment.Config {
	return experiment.Config{
		Blocks:     s.Blocks,
		BlockSize:  s.BlockSize,
		Within:     s.Within,
		Between:    s.Between,
		Components: s.Components,
		NumElbows:  s.Elbows,
		Seed:       s.Seed,
	}
}

// loadSuite reads and decodes a suite file.
func loadSuite(path string) ([]experimentSpec, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}

	var suite struct {
		Experiments []experimentSpec `mapstructure:"experiments"`
	}
	if err := v.Unmarshal(&suite); err != nil {
		return nil, fmt.Errorf("decode suite file: %w", err)
	}
	if len(suite.Experiments) == 0 {
		return nil, errors.New("suite file contains no experiments")
	}

	return suite.Experiments, nil
}

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run a YAML-described sequence of experiments",
	Long: `Run every experiment listed in a YAML suite file and print one summary
line per experiment. See suite.example.yaml for the expected layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := loadSuite(suiteFile)
		if err != nil {
			return err
		}
		log.Info().Int("experiments", len(specs)).Str("file", suiteFile).Msg("suite loaded")

		for i, spec := range specs {
			name := spec.Name
			if name == "" {
				name = fmt.Sprintf("experiment %d", i+1)
			}

			rep, err := experiment.Run(spec.config())
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			log.Info().
				Str("name", name).
				Int("blocks", spec.Blocks).
				Ints("elbows", rep.Elbows).
				Int("dimension", rep.Dimension).
				Msg("experiment finished")
			fmt.Fprintf(os.Stdout, "%s: blocks=%d elbows=%v dimension=%d\n",
				name, spec.Blocks, rep.Elbows, rep.Dimension)
		}

		return nil
	},
}

func init() {
	suiteCmd.Flags().StringVarP(&suiteFile, "file", "f", "suite.yaml", "path to the suite YAML file")
}
