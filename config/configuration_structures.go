package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	SecretKey       string `yaml:"secret_key"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
}

// RateLimitClassConfig describes one endpoint class: how many requests fit
// into one fixed window. The keying policy is chosen in code per route group.
type RateLimitClassConfig struct {
	Window string `yaml:"window"`
	Max    int    `yaml:"max"`
}

// RateLimitConfig selects the counter backend ("local" or "redis") and the
// per-class budgets.
type RateLimitConfig struct {
	Backend       string               `yaml:"backend"`
	SweepInterval string               `yaml:"sweep_interval"`
	Auth          RateLimitClassConfig `yaml:"auth"`
	API           RateLimitClassConfig `yaml:"api"`
	Sensitive     RateLimitClassConfig `yaml:"sensitive"`
}
