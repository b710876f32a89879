package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage" validate:"required"`
	Batching BatchingConfig `mapstructure:"batching" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// StorageConfig selects and configures the object storage batches are flushed to.
type StorageConfig struct {
	Backend    string          `mapstructure:"backend" validate:"required,oneof=s3 file"`
	PutTimeout int             `mapstructure:"put_timeout" validate:"required,min=1"` // seconds
	S3         S3Config        `mapstructure:"s3"`
	File       FileStoreConfig `mapstructure:"file"`
}

// S3Config holds S3-compatible object storage configuration.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region" validate:"required"`
	Bucket          string `mapstructure:"bucket" validate:"required"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key" validate:"required_with=AccessKeyID"`
	ForcePathStyle  bool   `mapstructure:"force_path_style"`
}

// FileStoreConfig holds local file storage configuration.
type FileStoreConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// BatchingConfig holds event buffering and flush configuration.
type BatchingConfig struct {
	BatchSize          int      `mapstructure:"batch_size" validate:"required,min=1"`
	KeyPrefix          string   `mapstructure:"key_prefix"`
	ObjectName         string   `mapstructure:"object_name" validate:"required,excludesall=/"`
	ExcludedEventTypes []string `mapstructure:"excluded_event_types" validate:"dive,oneof=click view purchase signup pray share like"`
	MaxBodyBytes       int      `mapstructure:"max_body_bytes" validate:"required,min=1"`
}
