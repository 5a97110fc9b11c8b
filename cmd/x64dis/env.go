package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "x64dis"

// bindEnvironment sets every flag not given on the command line from its X64DIS_* variable.
func bindEnvironment(cmd *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed || !v.IsSet(key) {
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(key))); err != nil {
			errs = append(errs, err.Error())
		}
	})
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("error mapping environment variables to flags: %s", strings.Join(errs, "; "))
}
