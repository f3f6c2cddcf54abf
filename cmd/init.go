package cmd

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const starterSchemaPerm = 0o644

// starterSchema is written by init next to the config file.
const starterSchema = `version: "1.0.0"
types:
  ButtonProps:
    kind: object
    fields:
      label: string
      variant?: Variant
      disabled?: boolean
      icon?: node
      onClick: {kind: function, params: [MouseEvent], returns: void}
  Variant:
    kind: enum
    options:
      Primary: primary
      Secondary: secondary
      Danger: danger
  ListProps:
    parameters: [T]
    type:
      kind: object
      fields:
        items: {kind: array, items: T}
        selected: {kind: union, types: [T, "null"]}
        renderItem: {kind: function, params: [T], returns: node}
        load: {kind: function, returns: {kind: promise, type: {kind: array, items: T}}}
`

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default previewgen.yaml and a starter schema",
		Long: `Create a previewgen.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually. A starter schema is
written to the configured schema path unless a file already exists there.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return errors.Wrap(err, "failed to write config file")
			}

			cmd.Println("wrote", targetPath)

			schemaPath := viper.GetString(schemaConfigKey)

			written, err := writeStarterSchema(schemaPath)
			if err != nil {
				return err
			}

			if written {
				cmd.Println("wrote", schemaPath)
			} else {
				cmd.Println("kept existing", schemaPath)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// writeStarterSchema creates path with the starter schema. It reports false
// when the file already exists.
func writeStarterSchema(path string) (bool, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return false, errors.Wrapf(err, "create schema directory %s", dir)
		}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, starterSchemaPerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}

	if err != nil {
		return false, errors.Wrapf(err, "create schema %s", path)
	}

	if _, err := file.WriteString(starterSchema); err != nil {
		_ = file.Close()
		return false, errors.Wrapf(err, "write schema %s", path)
	}

	if err := file.Close(); err != nil {
		return false, errors.Wrapf(err, "close schema %s", path)
	}

	return true, nil
}
