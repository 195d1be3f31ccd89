package cmd

// Config carries every externally provided setting the application needs.
type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	RedisHost     string
	RedisPassword string
	JWTSecret     string
}
