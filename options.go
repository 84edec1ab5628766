package huefy

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TransportMode selects how the client reaches the Huefy backend.
type TransportMode string

const (
	// TransportHTTP sends requests directly over HTTPS.
	TransportHTTP TransportMode = "http"
	// TransportKernel routes requests through the local kernel binary.
	TransportKernel TransportMode = "kernel"
)

// Well-known endpoints per transport kind.
const (
	productionHTTPEndpoint = "https://api.huefy.dev/v1"
	localHTTPEndpoint      = "http://localhost:8080/v1"

	productionKernelEndpoint = "api.huefy.dev:50051"
	localKernelEndpoint      = "localhost:50051"
)

// Environment signals read once at configuration construction. They seed
// the local-endpoint default for both transports; WithLocalEndpoints
// overrides them.
const (
	envHuefyEnv      = "HUEFY_ENV"
	envHuefyUseLocal = "HUEFY_USE_LOCAL"
	envKernelPath    = "HUEFY_KERNEL_PATH"
)

const (
	defaultTimeout        = 30 * time.Second
	defaultConnectTimeout = 10 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL        string
	timeout        time.Duration
	connectTimeout time.Duration
	retry          RetryPolicy
	transportMode  TransportMode
	useLocal       bool
	httpClient     *http.Client
	logger         zerolog.Logger
	kernelDir      string
}

// defaultClientConfig resolves the ambient environment signals once and
// returns the configuration defaults.
func defaultClientConfig() *clientConfig {
	return &clientConfig{
		timeout:        defaultTimeout,
		connectTimeout: defaultConnectTimeout,
		retry:          DefaultRetryPolicy(),
		transportMode:  TransportHTTP,
		useLocal:       localFromEnv(),
		logger:         zerolog.Nop(),
		kernelDir:      kernelDirFromEnv(),
	}
}

// localFromEnv reads the two ambient environment signals that select
// local endpoints by default.
func localFromEnv() bool {
	if v := os.Getenv(envHuefyUseLocal); v == "1" || strings.EqualFold(v, "true") {
		return true
	}
	return strings.EqualFold(os.Getenv(envHuefyEnv), "development")
}

func kernelDirFromEnv() string {
	if dir := os.Getenv(envKernelPath); dir != "" {
		return dir
	}
	return "bin"
}

// validate checks configuration invariants.
func (c *clientConfig) validate() error {
	if c.timeout <= 0 {
		return &ValidationError{Field: "timeout", Message: "timeout must be positive"}
	}
	if c.connectTimeout <= 0 {
		return &ValidationError{Field: "connectTimeout", Message: "connect timeout must be positive"}
	}
	switch c.transportMode {
	case TransportHTTP, TransportKernel:
	default:
		return &ValidationError{Field: "transport", Message: "transport must be http or kernel"}
	}
	return nil
}

// httpEndpoint resolves the HTTP transport endpoint. An explicit base URL
// always wins, for either transport.
func (c *clientConfig) httpEndpoint() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	if c.useLocal {
		return localHTTPEndpoint
	}
	return productionHTTPEndpoint
}

// kernelEndpoint resolves the endpoint passed to the kernel binary.
func (c *clientConfig) kernelEndpoint() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	if c.useLocal {
		return localKernelEndpoint
	}
	return productionKernelEndpoint
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets an explicit endpoint, used by whichever transport is
// selected instead of the well-known production or local endpoint.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTimeout sets the overall per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithConnectTimeout sets the connection-establishment timeout for the
// HTTP transport.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.connectTimeout = timeout
	}
}

// WithRetryPolicy sets the retry policy for the HTTP transport.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *clientConfig) {
		c.retry = policy
	}
}

// WithTransport selects the transport mode. Default: TransportHTTP.
func WithTransport(mode TransportMode) Option {
	return func(c *clientConfig) {
		c.transportMode = mode
	}
}

// WithLocalEndpoints forces local or production well-known endpoints,
// overriding the HUEFY_ENV / HUEFY_USE_LOCAL environment defaults.
func WithLocalEndpoints(local bool) Option {
	return func(c *clientConfig) {
		c.useLocal = local
	}
}

// WithHTTPClient sets a custom HTTP client for the HTTP transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for diagnostic records. Default: no-op.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithKernelPath sets the directory containing the kernel binary,
// overriding the HUEFY_KERNEL_PATH environment variable.
func WithKernelPath(dir string) Option {
	return func(c *clientConfig) {
		c.kernelDir = dir
	}
}
