package config

import "github.com/kelseyhightower/envconfig"

// AppConfig covers the HTTP server and logging surface.
type AppConfig struct {
	Port       string `envconfig:"APP_PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogConsole bool   `envconfig:"LOG_CONSOLE" default:"false"`
}

// AWSConfig carries what the DynamoDB client needs. Local DynamoDB does not
// validate credentials, but the SDK requires them, hence the "local" defaults.
type AWSConfig struct {
	Region           string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
}

// TablesConfig names the DynamoDB tables, overridable per environment.
type TablesConfig struct {
	Jobs           string `envconfig:"JOBS_TABLE" default:"jobs"`
	Inventory      string `envconfig:"INVENTORY_TABLE" default:"inventory"`
	PurchaseOrders string `envconfig:"PURCHASE_ORDERS_TABLE" default:"purchase_orders"`
	Invoices       string `envconfig:"INVOICES_TABLE" default:"invoices"`
}

// PaymentsConfig configures the Mercado Pago gateway. Mock mode short-circuits
// the provider entirely for local development and CI.
type PaymentsConfig struct {
	MercadoPagoAccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock                   bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
}

// BillingConfig carries invoicing defaults.
type BillingConfig struct {
	DefaultTaxCode string `envconfig:"DEFAULT_TAX_CODE" default:"vat11"`
}

type Config struct {
	App      AppConfig
	AWS      AWSConfig
	Tables   TablesConfig
	Payments PaymentsConfig
	Billing  BillingConfig
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
