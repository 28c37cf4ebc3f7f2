package environment

// Config reads the deployment mode from APP_ENV.
type Config struct {
	Env string `env:"APP_ENV" envDefault:"production"`
}

// Mode parses the configured environment name.
func (c Config) Mode() (Mode, error) { return ParseMode(c.Env) }
