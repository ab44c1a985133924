package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/spf13/cobra"
)

// TextbookRSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type TextbookRSACommandHandler struct {
	processor cryptoalg.TextbookRSAProcessor
	codec     cryptoalg.BlockCodec
	keyStore  config.KeyStoreSettings
	logger    logger.Logger
}

// NewTextbookRSACommandHandler initializes a new TextbookRSACommandHandler with logging and a processor.
func NewTextbookRSACommandHandler(cfg *config.Config) (*TextbookRSACommandHandler, error) {
	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	processor, err := cryptography.NewTextbookRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}

	return &TextbookRSACommandHandler{
		processor: processor,
		codec:     cryptography.NewBlockCodec(),
		keyStore:  cfg.KeyStore,
		logger:    loggerInstance,
	}, nil
}

func checkBitLength(bitLength int) error {
	if bitLength < validators.MinKeyBitLength || bitLength > validators.MaxKeyBitLength {
		return fmt.Errorf("%w: %d, must be between %d and %d",
			numtheory.ErrInvalidBitLength, bitLength, validators.MinKeyBitLength, validators.MaxKeyBitLength)
	}
	return nil
}

// GenerateKeysCmd generates a key pair, saves it in the key directory and prints its components
func (commandHandler *TextbookRSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	bitLength, err := cmd.Flags().GetInt("bit-length")
	if err != nil {
		return fmt.Errorf("invalid bit-length flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	if err := checkBitLength(bitLength); err != nil {
		return err
	}

	keyPair, err := commandHandler.processor.GenerateKeys(bitLength)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(keyDir, 0700); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}
	publicKeyPath, privateKeyPath := keyFilePaths(keyDir, commandHandler.keyStore)

	if err := commandHandler.processor.SavePublicKeyToFile(keyPair.Public, publicKeyPath); err != nil {
		return err
	}
	if err := commandHandler.processor.SavePrivateKeyToFile(keyPair.Private, privateKeyPath); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "p: %s\nq: %s\nn: %s\ne: %s\nd: %s\n",
		keyPair.P, keyPair.Q, keyPair.Public.N, keyPair.Public.E, keyPair.Private.D)
	fmt.Fprintf(out, "Public key saved to %s\nPrivate key saved to %s\n", publicKeyPath, privateKeyPath)
	return nil
}

// EncryptCmd encrypts a message with a public key file
func (commandHandler *TextbookRSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	message, err := readInput(cmd, "message", "input-file")
	if err != nil {
		return err
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}
	blockSize, err := cmd.Flags().GetInt("block-size")
	if err != nil {
		return fmt.Errorf("invalid block-size flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	publicKey, err := commandHandler.processor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}

	envelope, err := commandHandler.processor.Encrypt(message, publicKey, blockSize)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd, outputFile, envelope.String()); err != nil {
		return err
	}
	if outputFile != "" {
		commandHandler.logger.Info("Encrypted data path ", outputFile)
	}
	return nil
}

// DecryptCmd decrypts ciphertext with a private key file
func (commandHandler *TextbookRSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	ciphertext, err := readInput(cmd, "ciphertext", "input-file")
	if err != nil {
		return err
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	envelope, err := cryptoalg.ParseEnvelope(ciphertext)
	if err != nil {
		return err
	}

	privateKey, err := commandHandler.processor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}

	message, err := commandHandler.processor.Decrypt(envelope, privateKey)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd, outputFile, message); err != nil {
		return err
	}
	if outputFile != "" {
		commandHandler.logger.Info("Decrypted data path ", outputFile)
	}
	return nil
}

// DeleteKeysCmd removes both key files from the key directory
func (commandHandler *TextbookRSACommandHandler) DeleteKeysCmd(cmd *cobra.Command, _ []string) error {
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	publicKeyPath, privateKeyPath := keyFilePaths(keyDir, commandHandler.keyStore)
	removed, err := commandHandler.processor.DeleteKeyFiles(publicKeyPath, privateKeyPath)
	if err != nil {
		return err
	}

	if removed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Key files not found. Nothing to delete.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d key file(s).\n", removed)
	return nil
}

// InitTextbookRSACommands registers the key, cipher and session commands
func InitTextbookRSACommands(rootCmd *cobra.Command, cfg *config.Config) error {
	handler, err := NewTextbookRSACommandHandler(cfg)
	if err != nil {
		return fmt.Errorf("failed to create textbook RSA command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("bit-length", "", cfg.Cipher.KeyBitLength, "Bit length of each prime p and q")
	generateKeysCmd.Flags().StringP("key-dir", "", cfg.KeyStore.Directory, "Directory to store the key files")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message with a public key file",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("message", "", "", "Message to encrypt")
	encryptCmd.Flags().StringP("input-file", "", "", "Path to a file holding the message")
	encryptCmd.Flags().StringP("public-key", "", "", "Path to the public key file")
	encryptCmd.Flags().IntP("block-size", "", cfg.Cipher.BlockSize, "Symbols per block, 0 selects the largest the key admits")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to the ciphertext output file, stdout if empty")
	if err := encryptCmd.MarkFlagRequired("public-key"); err != nil {
		return err
	}
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt ciphertext with a private key file",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("ciphertext", "", "", "Ciphertext in {length};{block size};{blocks} form")
	decryptCmd.Flags().StringP("input-file", "", "", "Path to a file holding the ciphertext")
	decryptCmd.Flags().StringP("private-key", "", "", "Path to the private key file")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to the plaintext output file, stdout if empty")
	if err := decryptCmd.MarkFlagRequired("private-key"); err != nil {
		return err
	}
	rootCmd.AddCommand(decryptCmd)

	var deleteKeysCmd = &cobra.Command{
		Use:   "delete-keys",
		Short: "Delete the key files in a key directory",
		RunE:  handler.DeleteKeysCmd,
	}
	deleteKeysCmd.Flags().StringP("key-dir", "", cfg.KeyStore.Directory, "Directory holding the key files")
	rootCmd.AddCommand(deleteKeysCmd)

	var sessionCmd = &cobra.Command{
		Use:   "session",
		Short: "Walk through key generation, encryption and decryption interactively",
		RunE:  handler.SessionCmd,
	}
	sessionCmd.Flags().IntP("bit-length", "", cfg.Cipher.KeyBitLength, "Bit length of each prime p and q")
	sessionCmd.Flags().StringP("key-dir", "", cfg.KeyStore.Directory, "Directory to store the key files")
	rootCmd.AddCommand(sessionCmd)

	return nil
}
