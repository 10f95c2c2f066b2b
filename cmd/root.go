package cmd

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cdk2env/internal/aws"
	"cdk2env/internal/config"
	"cdk2env/internal/errors"
	"cdk2env/internal/logging"
	"cdk2env/internal/version"
	"cdk2env/pkg/cdk2env"
)

// DefaultInputPath is used when no input argument is given
const DefaultInputPath = "var/outputs.json"

const flagVersion = "version"

// NewRootCommand builds the cdk2env command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cdk2env [input] [output]",
		Short: "Convert AWS CDK outputs.json to shell-sourceable export file",
		Long: `Convert AWS CDK outputs.json to shell-sourceable export file

Arguments:
  input   Input JSON file path or s3://bucket/key URI (default: var/outputs.json)
  output  Output shell file path (default: derived from input)`,
		Example: `  cdk2env
  cdk2env path/to/outputs.json
  cdk2env path/to/outputs.json path/to/exports.sh
  cdk2env --prefix APP_ s3://deploy-artifacts/prod/outputs.json`,
		Args:          positionalArgs,
		RunE:          runConvert,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolP(flagVersion, "V", false, "Show version number")
	config.BindFlags(rootCmd.Flags())
	rootCmd.SetHelpTemplate(getHelpTemplate())

	return rootCmd
}

// Execute runs the root command with os.Args
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// positionalArgs accepts at most input and output. With --version any
// arguments are ignored.
func positionalArgs(cmd *cobra.Command, args []string) error {
	if showVersion, _ := cmd.Flags().GetBool(flagVersion); showVersion {
		return nil
	}
	return cobra.MaximumNArgs(2)(cmd, args)
}

// runConvert handles the root command
func runConvert(cmd *cobra.Command, args []string) error {
	if showVersion, _ := cmd.Flags().GetBool(flagVersion); showVersion {
		if verbose, _ := cmd.Flags().GetBool(config.FlagVerbose); verbose {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersionString())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion())
		}
		return nil
	}

	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), settings.Verbose)
	defer func() { _ = logger.Sync() }()

	inputPath, outputPath, err := resolvePaths(args)
	if err != nil {
		return err
	}

	converter := cdk2env.New(cdk2env.WithLogger(logger))
	err = converter.Convert(cmd.Context(), cdk2env.Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Prefix:     settings.Prefix,
	})
	if err != nil {
		logFailure(logger, err)
		return err
	}

	return nil
}

// resolvePaths applies the positional argument defaults and makes local
// paths absolute
func resolvePaths(args []string) (string, string, error) {
	inputPath := DefaultInputPath
	if len(args) > 0 && args[0] != "" {
		inputPath = args[0]
	}

	outputPath := deriveOutputPath(inputPath)
	if len(args) > 1 && args[1] != "" {
		outputPath = args[1]
	}

	var err error
	if !aws.IsObjectURI(inputPath) {
		if inputPath, err = filepath.Abs(inputPath); err != nil {
			return "", "", errors.InputReadError(err).WithContext("inputPath", inputPath)
		}
	}
	if outputPath, err = filepath.Abs(outputPath); err != nil {
		return "", "", errors.OutputWriteError(err).WithContext("outputPath", outputPath)
	}

	return inputPath, outputPath, nil
}

// deriveOutputPath replaces the extension of the input file with .sh, or
// appends .sh when there is none. Remote inputs are written next to the
// working directory under the object's base name.
func deriveOutputPath(inputPath string) string {
	if aws.IsObjectURI(inputPath) {
		inputPath = path.Base(strings.TrimPrefix(inputPath, aws.URIScheme+"://"))
	}
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".sh"
}

// logFailure writes the error context and suggestions at debug level
func logFailure(logger *zap.SugaredLogger, err error) {
	convErr, ok := err.(*errors.ConversionError)
	if !ok {
		return
	}

	keys := make([]string, 0, len(convErr.Context))
	for key := range convErr.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := []interface{}{"kind", string(convErr.Type)}
	for _, key := range keys {
		fields = append(fields, key, convErr.Context[key])
	}
	if convErr.Cause != nil {
		fields = append(fields, "cause", convErr.Cause.Error())
	}

	logger.Debugw("conversion failed", fields...)
	for _, suggestion := range convErr.Suggestions {
		logger.Debugf("suggestion: %s", suggestion)
	}
}

func getHelpTemplate() string {
	return `{{.Long}}

Usage:
  {{.UseLine}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`
}
