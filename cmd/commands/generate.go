/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/numaproj-labs/kindgen/pkg/generator"
	"github.com/numaproj-labs/kindgen/pkg/shared/logging"
	sharedutil "github.com/numaproj-labs/kindgen/pkg/shared/util"
)

func NewGenerateCommand() *cobra.Command {
	var (
		url        string
		include    []string
		exclude    []string
		pkg        string
		output     string
		configFile string
	)

	command := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go source for the API objects found in a schema document",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger().Named("generate")
			ctx := logging.WithLogger(context.Background(), logger)
			if configFile != "" {
				runs, err := loadRuns(configFile)
				if err != nil {
					return err
				}
				return generator.RunAll(ctx, runs)
			}
			if url == "" {
				cmd.HelpFunc()(cmd, args)
				return fmt.Errorf("either --url or --config is required")
			}
			g := generator.New(generator.Options{
				URL:     url,
				Include: include,
				Exclude: exclude,
				Package: pkg,
				Output:  output,
			})
			return g.Write(ctx)
		},
	}
	command.Flags().StringVar(&url, "url", sharedutil.LookupEnvStringOr("KINDGEN_SCHEMA_URL", ""), "HTTP(S) location or local path of the swagger document.")
	command.Flags().StringSliceVar(&include, "include", []string{}, "Fully-qualified definition names to generate even when a newer version of the kind exists.") // --include=a,b --include=c
	command.Flags().StringSliceVar(&exclude, "exclude", []string{}, "Definition names the type generator skips.")
	command.Flags().StringVar(&pkg, "package", "k8s", "Package name of the generated source.")
	command.Flags().StringVarP(&output, "output", "o", "-", "Output file, '-' for stdout.")
	command.Flags().StringVar(&configFile, "config", "", "Config file listing multiple imports, overrides the other flags.")
	return command
}

// loadRuns reads a yaml config file carrying a list of imports, e.g.
//
//	imports:
//	  - url: https://example.com/swagger.json
//	    package: k8s
//	    output: gen/k8s.go
func loadRuns(configFile string) ([]generator.Options, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	if filepath.Ext(configFile) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration file. %w", err)
	}
	conf := struct {
		Imports []generator.Options `mapstructure:"imports"`
	}{}
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("failed unmarshal configuration file. %w", err)
	}
	if len(conf.Imports) == 0 {
		return nil, fmt.Errorf("configuration file %q lists no imports", configFile)
	}
	return conf.Imports, nil
}
