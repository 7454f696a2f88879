package cmd

// Store backends selectable with STORE_BACKEND.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreDynamoDB = "dynamodb"
)

type Config struct {
	HTTPPort string
	LogLevel string

	StoreBackend string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DynamoDBRegion     string
	DynamoDBEndpoint   string
	DynamoDBTable      string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	// ProgressionFile is an optional YAML file with the status delays and
	// delivery estimates. The built-in table is used when it is empty.
	ProgressionFile string
}
