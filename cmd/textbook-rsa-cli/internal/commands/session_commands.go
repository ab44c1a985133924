package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// interactiveSession walks a user through one encryption or decryption, pausing between stages.
type interactiveSession struct {
	handler        *TextbookRSACommandHandler
	in             *bufio.Reader
	out            io.Writer
	bitLength      int
	publicKeyPath  string
	privateKeyPath string

	prompt  *color.Color
	label   *color.Color
	failure *color.Color
}

// SessionCmd runs the interactive textbook RSA session on stdin and stdout
func (commandHandler *TextbookRSACommandHandler) SessionCmd(cmd *cobra.Command, _ []string) error {
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

	publicKeyPath, privateKeyPath := keyFilePaths(keyDir, commandHandler.keyStore)
	session := &interactiveSession{
		handler:        commandHandler,
		in:             bufio.NewReader(cmd.InOrStdin()),
		out:            cmd.OutOrStdout(),
		bitLength:      bitLength,
		publicKeyPath:  publicKeyPath,
		privateKeyPath: privateKeyPath,
		prompt:         color.New(color.FgCyan, color.Bold),
		label:          color.New(color.FgYellow),
		failure:        color.New(color.FgRed, color.Bold),
	}
	return session.run()
}

func (s *interactiveSession) run() error {
	mode, err := s.ask("Please enter 'encrypt' or 'decrypt' to select mode: ")
	if err != nil {
		return ignoreEOF(err)
	}

	var completed bool
	switch strings.ToLower(mode) {
	case "exit":
		return nil
	case "encrypt":
		completed, err = s.encrypt()
	case "decrypt":
		completed, err = s.decrypt()
	default:
		s.failure.Fprintln(s.out, "Invalid mode selected. Please enter 'encrypt' or 'decrypt'.")
		completed = true
	}
	if err != nil || !completed {
		return ignoreEOF(err)
	}

	answer, err := s.ask("Would you like to generate new public and private key files? (yes/no) ")
	if err != nil {
		return ignoreEOF(err)
	}
	if strings.ToLower(answer) == "yes" {
		s.deleteKeyFiles()
	}
	return nil
}

func (s *interactiveSession) encrypt() (bool, error) {
	message, err := s.readLine("Please enter the message to encrypt: ")
	if err != nil {
		return false, err
	}
	s.show("Original plaintext message", message)
	if proceed, err := s.continuePrompt(); !proceed {
		return false, err
	}

	keyPair, err := s.handler.processor.GenerateKeys(s.bitLength)
	if err != nil {
		return false, err
	}
	s.label.Fprint(s.out, "Generated prime numbers p: ")
	fmt.Fprintf(s.out, "%s and q: %s\n", keyPair.P, keyPair.Q)
	s.show("Calculated n = p * q", keyPair.Public.N)
	if proceed, err := s.continuePrompt(); !proceed {
		return false, err
	}

	s.show("Selected e", keyPair.Public.E)
	s.show("Calculated d", keyPair.Private.D)
	if err := os.MkdirAll(filepath.Dir(s.publicKeyPath), 0700); err != nil {
		return false, fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := s.handler.processor.SavePublicKeyToFile(keyPair.Public, s.publicKeyPath); err != nil {
		return false, err
	}
	if err := s.handler.processor.SavePrivateKeyToFile(keyPair.Private, s.privateKeyPath); err != nil {
		return false, err
	}
	fmt.Fprintf(s.out, "Public and private keys saved to %s and %s\n", s.publicKeyPath, s.privateKeyPath)
	s.show("Public key (n, e)", fmt.Sprintf("(%s, %s)", keyPair.Public.N, keyPair.Public.E))
	s.show("Private key (n, d)", fmt.Sprintf("(%s, %s)", keyPair.Private.N, keyPair.Private.D))
	if proceed, err := s.continuePrompt(); !proceed {
		return false, err
	}

	blockSize := max(cryptography.MaxBlockSize(keyPair.Public.N.BitLen()), 1)
	blocks, err := s.handler.codec.TextToBlocks(message, blockSize)
	if err != nil {
		s.failure.Fprintln(s.out, "Error - invalid character")
		return false, err
	}
	for _, block := range blocks {
		s.show("Created block", block)
	}
	if proceed, err := s.continuePrompt(); !proceed {
		return false, err
	}

	fmt.Fprintln(s.out, "Encrypting...")
	envelope, err := s.handler.processor.Encrypt(message, keyPair.Public, blockSize)
	if err != nil {
		return false, err
	}
	s.label.Fprintln(s.out, "Encrypted text:")
	fmt.Fprintln(s.out, envelope)
	return true, nil
}

func (s *interactiveSession) decrypt() (bool, error) {
	privateKey, err := s.handler.processor.ReadPrivateKey(s.privateKeyPath)
	if err != nil {
		return false, err
	}

	ciphertext, err := s.ask("Please enter the encrypted message: ")
	if err != nil {
		return false, err
	}
	envelope, err := cryptoalg.ParseEnvelope(ciphertext)
	if err != nil {
		return false, err
	}
	s.show("Encrypted blocks", formatBlocks(envelope.Blocks))
	s.show("Message length", envelope.MessageLength)
	s.show("Block size", envelope.BlockSize)
	if proceed, err := s.continuePrompt(); !proceed {
		return false, err
	}

	fmt.Fprintln(s.out, "Decrypting...")
	message, err := s.handler.processor.Decrypt(envelope, privateKey)
	if err != nil {
		return false, err
	}

	// re-encoding the plaintext reproduces the decrypted block values
	plainBlocks, err := s.handler.codec.TextToBlocks(message, envelope.BlockSize)
	if err == nil && len(plainBlocks) == len(envelope.Blocks) {
		for i, block := range envelope.Blocks {
			fmt.Fprintf(s.out, "Block %s decrypted to %s\n", block, plainBlocks[i])
		}
	}

	s.label.Fprintln(s.out, "Decrypted text:")
	fmt.Fprintln(s.out, message)
	return true, nil
}

func (s *interactiveSession) deleteKeyFiles() {
	removed, err := s.handler.processor.DeleteKeyFiles(s.publicKeyPath, s.privateKeyPath)
	switch {
	case err != nil:
		s.failure.Fprintf(s.out, "An error occurred while deleting key files: %v\n", err)
	case removed == 0:
		fmt.Fprintln(s.out, "Key files not found. Nothing to delete.")
	default:
		fmt.Fprintln(s.out, "Key files deleted successfully.")
	}
}

func (s *interactiveSession) continuePrompt() (bool, error) {
	answer, err := s.ask("Do you want to continue? (yes/no): ")
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "yes", nil
}

// ask reads an answer or command with surrounding whitespace removed.
func (s *interactiveSession) ask(prompt string) (string, error) {
	line, err := s.readLine(prompt)
	return strings.TrimSpace(line), err
}

// readLine prints a prompt and reads one line without its line break. Spaces are
// symbols, so the rest of the line is kept as typed.
// io.EOF is returned only when the input ends before any character was read.
func (s *interactiveSession) readLine(prompt string) (string, error) {
	s.prompt.Fprint(s.out, prompt)

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *interactiveSession) show(label string, value interface{}) {
	s.label.Fprintf(s.out, "%s: ", label)
	fmt.Fprintln(s.out, value)
}

func formatBlocks(blocks []*big.Int) string {
	parts := make([]string, len(blocks))
	for i, block := range blocks {
		parts[i] = block.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
