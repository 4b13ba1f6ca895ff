package config

import (
	"flag"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RabbitCfg struct {
	URL string `mapstructure:"url"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
type SecurityCfg struct {
	JWTSecret          string `mapstructure:"jwtSecret"`
	TokenTTLHours      int    `mapstructure:"tokenTTLHours"`
	SuperAdminEmail    string `mapstructure:"superAdminEmail"`
	SuperAdminPassword string `mapstructure:"superAdminPassword"`
}

// PlatformCfg carries the commerce-platform defaults applied when a merchant
// channel is provisioned, plus asset storage locations.
type PlatformCfg struct {
	DefaultChannelID      uint64 `mapstructure:"defaultChannelId"`
	DefaultLanguage       string `mapstructure:"defaultLanguage"`
	DefaultCurrency       string `mapstructure:"defaultCurrency"`
	DefaultTaxZoneID      uint64 `mapstructure:"defaultTaxZoneId"`
	DefaultShippingZoneID uint64 `mapstructure:"defaultShippingZoneId"`
	AssetDir              string `mapstructure:"assetDir"`
	QRTempDir             string `mapstructure:"qrTempDir"`
}

type Root struct {
	Server    ServerCfg   `mapstructure:"server"`
	MysqlMain MysqlCfg    `mapstructure:"mysql_main"`
	RabbitMQ  RabbitCfg   `mapstructure:"rabbitmq"`
	Redis     RedisCfg    `mapstructure:"redis"`
	Security  SecurityCfg `mapstructure:"security"`
	Platform  PlatformCfg `mapstructure:"platform"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile("config/config." + *env + ".yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config file failed: %v", err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}

	// sane defaults
	if strings.TrimSpace(C.Server.Port) == "" {
		C.Server.Port = "8080"
	}
	if C.Security.TokenTTLHours <= 0 {
		C.Security.TokenTTLHours = 24
	}
	if C.Platform.DefaultChannelID == 0 {
		C.Platform.DefaultChannelID = 1
	}
	if C.Platform.DefaultLanguage == "" {
		C.Platform.DefaultLanguage = "en"
	}
	if C.Platform.DefaultCurrency == "" {
		C.Platform.DefaultCurrency = "SGD"
	}
	if C.Platform.DefaultTaxZoneID == 0 {
		C.Platform.DefaultTaxZoneID = 1
	}
	if C.Platform.DefaultShippingZoneID == 0 {
		C.Platform.DefaultShippingZoneID = 1
	}
	if C.Platform.AssetDir == "" {
		C.Platform.AssetDir = "./assets"
	}
}
