package httpvalidate

// Config is the environment-driven HTTP validation configuration.
type Config struct {
	// MaxBodySize caps the JSON body read per request, in bytes.
	MaxBodySize int64 `env:"HTTP_MAX_BODY_SIZE" envDefault:"1048576"`
	// ValidateResponses turns response schema checks off when false.
	ValidateResponses bool `env:"HTTP_VALIDATE_RESPONSES" envDefault:"true"`
}

const defaultMaxBodySize int64 = 1 << 20
