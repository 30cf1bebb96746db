package config

import (
	"flag"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type ProjectCfg struct {
	Name string `mapstructure:"name"`
}
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
	InternalToken string `mapstructure:"internalToken"`
}

// PayoutCfg 付款求解器的规模与互斥参数
type PayoutCfg struct {
	BudgetConstant    int64 `mapstructure:"budgetConstant"`    // 精确求解实例规模上限（约 250ms 延迟预算）
	MinScaledCapacity int64 `mapstructure:"minScaledCapacity"` // 缩放后容量下限，低于则退化为贪心
	MaxTableCells     int64 `mapstructure:"maxTableCells"`     // DP 表单元格数硬上限
	GuardTTLSec       int   `mapstructure:"guardTtlSec"`       // Redis 付款互斥锁 TTL
}

type Root struct {
	Project   ProjectCfg  `mapstructure:"project"`
	Server    ServerCfg   `mapstructure:"server"`
	MysqlMain MysqlCfg    `mapstructure:"mysql_main"`
	RabbitMQ  RabbitCfg   `mapstructure:"rabbitmq"`
	Redis     RedisCfg    `mapstructure:"redis"`
	Security  SecurityCfg `mapstructure:"security"`
	Payout    PayoutCfg   `mapstructure:"payout"`
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
	if strings.TrimSpace(C.Project.Name) == "" {
		C.Project.Name = "shop-payout"
	}
	if strings.TrimSpace(C.Server.Port) == "" {
		C.Server.Port = "8080"
	}
	if C.Payout.BudgetConstant <= 0 {
		C.Payout.BudgetConstant = 25_000_000
	}
	if C.Payout.MinScaledCapacity <= 0 {
		C.Payout.MinScaledCapacity = 3
	}
	if C.Payout.MaxTableCells <= 0 {
		C.Payout.MaxTableCells = 50_000_000
	}
	if C.Payout.GuardTTLSec <= 0 {
		C.Payout.GuardTTLSec = 30
	}
}
