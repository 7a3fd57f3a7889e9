package cardcrypto

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/awnumar/memguard"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Engine performs hybrid encryption of card numbers. It is stateless apart
// from its injected capabilities (random source, logger, telemetry) and is
// safe for concurrent use; every Encrypt call owns its key, nonce, and
// buffers end to end.
type Engine struct {
	random io.Reader
	log    logrus.FieldLogger

	tracer      trace.Tracer
	encryptions metric.Int64Counter
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	random         io.Reader
	log            logrus.FieldLogger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithRandom replaces the cryptographically secure random source used for
// key, nonce, and OAEP seed draws. The default is crypto/rand.Reader, which
// is safe for concurrent use; any replacement must be too.
func WithRandom(r io.Reader) Option {
	return func(o *engineOptions) { o.random = r }
}

// WithLogger sets the logger for per-stage debug output. The default logger
// discards everything. Key material and card numbers are never logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *engineOptions) { o.log = log }
}

// WithTracerProvider sets the tracer provider for per-call spans.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *engineOptions) { o.tracerProvider = tp }
}

// WithMeterProvider sets the meter provider for outcome counters.
// Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *engineOptions) { o.meterProvider = mp }
}

// NewEngine creates an encryption engine. With no options it draws from
// crypto/rand, logs nowhere, and reports telemetry to the global
// OpenTelemetry providers.
func NewEngine(opts ...Option) (*Engine, error) {
	o := &engineOptions{
		random:         rand.Reader,
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.log = discard
	}

	e := &Engine{
		random: o.random,
		log:    o.log,
	}
	if err := e.initTelemetry(o.tracerProvider, o.meterProvider); err != nil {
		return nil, err
	}
	return e, nil
}

// GenerateKey draws a fresh 32-byte AES-256 key from the engine's random
// source. Every call is an independent draw; the engine never reuses a key
// across calls. Exported so callers can exercise the primitive in isolation.
func (e *Engine) GenerateKey() ([]byte, error) {
	key := make([]byte, aesKeySize)
	if _, err := io.ReadFull(e.random, key); err != nil {
		return nil, fmt.Errorf("%w: failed to generate key: %v", ErrCipher, err)
	}
	return key, nil
}

// Encrypt protects req.CardNumber for the holder of the RSA key pair whose
// public half is req.RSAPublicKeyHex.
//
// The pipeline: validate, generate key and nonce, seal the card number's
// UTF-8 bytes with AES-256-GCM, parse the public key, wrap the AES key with
// RSA-OAEP (SHA-256/MGF1-SHA-256), frame the envelope, hex-encode. Nothing
// is retried or cached; a failure at any stage aborts the call and the next
// attempt starts from scratch.
//
// Errors wrap ErrInvalidInput, ErrKeyFormat, ErrCipher, ErrKeyWrap, or
// ErrUnexpected. Encrypt never panics: anything unclassified, including a
// recovered panic, surfaces as ErrUnexpected.
func (e *Engine) Encrypt(ctx context.Context, req Request) (encryptedHex string, err error) {
	ctx, span := e.tracer.Start(ctx, "Engine.Encrypt")
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: recovered panic: %v", ErrUnexpected, r)
		}
		e.recordOutcome(ctx, span, err)
		span.End()
	}()

	if err := validateRequest(req); err != nil {
		return "", err
	}
	e.log.WithField("request", req.String()).Debug("starting encryption")

	key, err := e.generateKeyBuffer()
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	nonce, err := generateNonce(e.random)
	if err != nil {
		return "", err
	}

	sealed, err := sealPayload([]byte(req.CardNumber), key.Bytes(), nonce)
	if err != nil {
		return "", err
	}
	e.log.WithField("sealed_len", len(sealed)).Debug("sealed card number")

	pub, err := ParsePublicKey(req.RSAPublicKeyHex)
	if err != nil {
		return "", err
	}

	wrapped, err := wrapKey(key.Bytes(), pub, e.random)
	if err != nil {
		return "", err
	}
	e.log.WithField("wrapped_len", len(wrapped)).Debug("wrapped key")

	out := EncodeHex(frameEnvelope(nonce, sealed, wrapped))
	e.log.WithField("envelope_hex_len", len(out)).Info("encryption completed")
	return out, nil
}

// EncryptCardNumber is the value-returning facade over Encrypt: it always
// returns a Response and never an error, so callers that cannot handle Go
// errors (foreign-call adapters, request handlers) get a complete outcome in
// one value.
func (e *Engine) EncryptCardNumber(ctx context.Context, req Request) Response {
	encrypted, err := e.Encrypt(ctx, req)
	if err != nil {
		return FailureResponse(err)
	}
	return SuccessResponse(encrypted)
}

// generateKeyBuffer draws the symmetric key into guarded memory. The buffer
// is destroyed by the caller before Encrypt returns; the key never outlives
// the call.
func (e *Engine) generateKeyBuffer() (*memguard.LockedBuffer, error) {
	key, err := e.GenerateKey()
	if err != nil {
		return nil, err
	}
	// NewBufferFromBytes wipes the source slice.
	return memguard.NewBufferFromBytes(key), nil
}

func validateRequest(req Request) error {
	if strings.TrimSpace(req.CardNumber) == "" {
		return fmt.Errorf("%w: card number must not be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(req.RSAPublicKeyHex) == "" {
		return fmt.Errorf("%w: RSA public key must not be empty", ErrInvalidInput)
	}
	return nil
}
