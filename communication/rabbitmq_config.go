package communication

// RabbitMQConfig parameters used to publish the reports
type RabbitMQConfig struct {
	Enabled                bool                   `yaml:"enabled"`
	URL                    string                 `yaml:"url" validate:"required_if=Enabled true"`
	QueueDeclarationConfig QueueDeclarationConfig `yaml:"queue_declaration_config"`
	PublishingConfig       PublishingConfig       `yaml:"publishing_config"`
	TimeoutSeconds         int                    `yaml:"timeout_seconds" validate:"gte=0"`
}

// QueueDeclarationConfig contains the parameters to declare a RabbitMQ queue
type QueueDeclarationConfig struct {
	Name             string `yaml:"name"`
	Durable          bool   `yaml:"durable"`
	DeleteWhenUnused bool   `yaml:"delete_when_unused"`
	Exclusive        bool   `yaml:"exclusive"`
	NoWait           bool   `yaml:"no_wait"`
}

// PublishingConfig config use it for publishing messages in a RabbitMQ queue
type PublishingConfig struct {
	Exchange    string `yaml:"exchange"`
	RoutingKey  string `yaml:"routing_key"`
	Mandatory   bool   `yaml:"mandatory"`
	Immediate   bool   `yaml:"immediate"`
	ContentType string `yaml:"content_type"`
}
