package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// readInput returns the value of textFlag or the content of the file named by fileFlag.
// Exactly one of the two must be set. Trailing line breaks of file content are dropped.
func readInput(cmd *cobra.Command, textFlag, fileFlag string) (string, error) {
	text, err := cmd.Flags().GetString(textFlag)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", textFlag, err)
	}
	inputFile, err := cmd.Flags().GetString(fileFlag)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", fileFlag, err)
	}

	textSet := cmd.Flags().Changed(textFlag)
	switch {
	case textSet && inputFile != "":
		return "", fmt.Errorf("--%s and --%s are mutually exclusive", textFlag, fileFlag)
	case textSet:
		return text, nil
	case inputFile != "":
		content, err := os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return strings.TrimRight(string(content), "\r\n"), nil
	default:
		return "", fmt.Errorf("either --%s or --%s is required", textFlag, fileFlag)
	}
}

// writeOutput prints content to stdout, or writes it to outputFile when one is given.
func writeOutput(cmd *cobra.Command, outputFile, content string) error {
	if outputFile == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
		return err
	}

	if err := os.WriteFile(filepath.Clean(outputFile), []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// keyFilePaths joins the configured key file names onto keyDir.
func keyFilePaths(keyDir string, settings config.KeyStoreSettings) (string, string) {
	return filepath.Join(keyDir, settings.PublicKeyFile), filepath.Join(keyDir, settings.PrivateKeyFile)
}
