// Command carddemo walks the full encryption flow end to end: it generates
// an RSA key pair (standing in for the API consumer), encrypts a sample card
// number, and decrypts the envelope again to verify the round trip.
package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cardcrypto "github.com/rbaliyan/card-crypto"
)

var (
	cardNumber string
	keyBits    int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "carddemo",
	Short: "Demonstrates card number envelope encryption",
	Long: `carddemo generates an RSA key pair, encrypts a card number with a fresh
AES-256 key wrapped under the public key, and decrypts the resulting
envelope with the private key to verify the round trip.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&cardNumber, "card-number", "4532123456789012", "card number to encrypt")
	rootCmd.Flags().IntVar(&keyBits, "key-bits", 2048, "RSA key size in bits (2048, 3072, or 4096)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run() error {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	log.WithField("bits", keyBits).Info("generating RSA key pair")
	priv, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return fmt.Errorf("generate RSA key pair: %w", err)
	}

	// Consumers ship the public key as hex-encoded SubjectPublicKeyInfo.
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return fmt.Errorf("marshal public key: %w", err)
	}
	publicKeyHex := cardcrypto.EncodeHex(der)
	log.WithField("hex_len", len(publicKeyHex)).Info("public key encoded")

	engine, err := cardcrypto.NewEngine(cardcrypto.WithLogger(log))
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	resp := engine.EncryptCardNumber(context.Background(), cardcrypto.Request{
		RSAPublicKeyHex: publicKeyHex,
		CardNumber:      cardNumber,
	})
	if !resp.Success {
		return fmt.Errorf("encryption failed (%s): %s", resp.Category, resp.ErrorMessage)
	}

	log.WithFields(logrus.Fields{
		"hex_len":   len(resp.EncryptedDataHex),
		"byte_len":  len(resp.EncryptedDataHex) / 2,
		"preview":   resp.EncryptedDataHex[:min(80, len(resp.EncryptedDataHex))],
		"wrapped_b": priv.PublicKey.Size(),
	}).Info("encryption succeeded")
	log.Info("envelope: u32(nonceLen) | nonce | u32(sealedLen) | ciphertext+tag | wrappedKey")

	recovered, err := cardcrypto.Decrypt(resp.EncryptedDataHex, priv)
	if err != nil {
		return fmt.Errorf("decrypt envelope: %w", err)
	}
	if recovered != cardNumber {
		return fmt.Errorf("round trip mismatch: got %q", recovered)
	}
	log.Info("round trip verified: decrypted card number matches")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
