package global

// AppConfig carries process-level settings resolved at bootstrap.
type AppConfig struct {
	GatewayNodeId string `json:"gateway_node_id"` // chat gateway node id
	Addr          string `json:"addr"`            // http listen address
	Release       bool   `json:"release"`         // production mode (gin release + security headers)

	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`
	MongoUser     string `json:"mongo_user"`
	MongoPassword string `json:"mongo_password"`
	MongoPoolSize int    `json:"mongo_pool_size"`

	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	JwtSecret string `json:"jwt_secret"`
	NodeID    int    `json:"node_id"` // snowflake node
}
