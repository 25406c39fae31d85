package global

import (
	"context"
	"sync"

	"SocialChat/data/database/mgo/mongoutil"
	mgoSrv "SocialChat/service/mgo"
	redisc "SocialChat/service/storage/redis"
	"SocialChat/tools"
	"SocialChat/tools/decode"
	"SocialChat/tools/ids"

	"github.com/golang/glog"
)

var (
	appCfg  *AppConfig
	cfgOnce sync.Once
)

// Config resolves the AppConfig from the environment (lazily, once).
func Config() *AppConfig {
	cfgOnce.Do(func() {
		raw := map[string]any{
			"gateway_node_id": tools.GetEnv("GATEWAY_ID", "chat_gw-1"),
			"addr":            tools.GetEnv("ADDR", ":3000"),
			"release":         tools.GetEnvBool("RELEASE", false),
			"mongo_uri":       tools.GetEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
			"mongo_database":  tools.GetEnv("MONGO_DB", "facebook_clone"),
			"mongo_user":      tools.GetEnv("MONGO_USER", ""),
			"mongo_password":  tools.GetEnv("MONGO_PASSWORD", ""),
			"mongo_pool_size": tools.GetEnvInt("MONGO_POOL_SIZE", 20),
			"redis_addr":      tools.GetEnv("REDIS_ADDR", "127.0.0.1:6379"),
			"redis_password":  tools.GetEnv("REDIS_PASSWORD", ""),
			"redis_db":        tools.GetEnvInt("REDIS_DB", 0),
			"jwt_secret":      tools.GetEnv("SECRET", "mN9b1f8zPq+W2xjX/45sKcVd0TfyoG+3Hp5Z8q9Rj1o="),
			"node_id":         tools.GetEnvInt("NODE_ID", 1),
		}
		cfg, err := decode.DecodeMap[AppConfig](raw)
		if err != nil {
			glog.Fatalf("[Config] decode app config: %v", err)
		}
		appCfg = cfg
	})
	return appCfg
}

func GetJwtSecret() []byte {
	return []byte(Config().JwtSecret)
}

func ConfigAll() {
	ConfigIds()
	ConfigRedis()
	ConfigMgo()
}

func ConfigIds() {
	ids.SetNodeID(int64(Config().NodeID))
}

func ConfigRedis() {
	cfg := Config()
	err := redisc.InitRedis(redisc.Config{
		Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB,
	})
	if err != nil {
		glog.Errorf("[Config] redis init: %v", err)
	}
}

func ConfigMgo() {
	cfg := Config()
	ctx := context.Background()

	mc := &mongoutil.Config{
		Uri:         cfg.MongoURI,
		Database:    cfg.MongoDatabase,
		Username:    cfg.MongoUser,
		Password:    cfg.MongoPassword,
		MaxPoolSize: cfg.MongoPoolSize,
	}

	mgoSrv.StartAsync(ctx, mc)
	go func() {
		if err := mgoSrv.WaitReady(ctx, mgoSrv.Manager()); err != nil {
			glog.Errorf("[Config] mongo not ready: %v", err)
			return
		}
		glog.Infof("[Config] connected to MongoDB %s/%s", cfg.MongoURI, cfg.MongoDatabase)
	}()
}
