// Package main is the entry point for the textbook-rsa-cli application.
// It loads the optional configuration, registers the key, cipher and session
// commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/textbook-rsa/cmd/textbook-rsa-cli/internal/commands"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.InitializeConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA demonstration tool",
		Long: `textbook-rsa-cli generates textbook RSA key pairs and encrypts or decrypts
messages over the alphabet A-Z, a-z, 0-9, space, '!', '?' and '.'.

There is no padding and no integrity protection: this tool is for learning only.

Set CONFIG_PATH to a YAML file to change the default bit length, block size,
key directory and logging.`,
		SilenceUsage: true,
	}

	if err := commands.InitTextbookRSACommands(rootCmd, cfg); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
