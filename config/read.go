package config

import (
	log "github.com/sirupsen/logrus"

	ms "github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// AppConfig holds the planner settings loadable from a config file.
type AppConfig struct {
	RegionArea         float64 `mapstructure:"regionarea"`
	TargetConnectivity float64 `mapstructure:"targetconnectivity"`
	TxPowerW           float64 `mapstructure:"txpowerw"`
	DataRateBps        float64 `mapstructure:"dataratebps"`
	Theta1Deg          float64 `mapstructure:"theta1deg"`
	Theta2Deg          float64 `mapstructure:"theta2deg"`
	NodeBudget         int     `mapstructure:"nodebudget"`
}

// DefaultAppConfig returns the planner defaults of Table I.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		RegionArea:         RegionAreaDefault,
		TargetConnectivity: ConnectivityTarget,
		TxPowerW:           PtDefaultW,
		DataRateBps:        RdDefaultBps,
		Theta1Deg:          Theta1DefaultDeg,
		Theta2Deg:          Theta2DefaultDeg,
		NodeBudget:         NodeCountMax,
	}
}

// ReadAppConfig reads uvnlos.json/yaml/toml from indir, falling back to
// the defaults for any key not present in the file.
func ReadAppConfig(indir string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	viper.AddConfigPath(indir)
	viper.SetConfigName("uvnlos")

	viper.SetDefault("RegionArea", cfg.RegionArea)
	viper.SetDefault("TargetConnectivity", cfg.TargetConnectivity)
	viper.SetDefault("TxPowerW", cfg.TxPowerW)
	viper.SetDefault("DataRateBps", cfg.DataRateBps)
	viper.SetDefault("Theta1Deg", cfg.Theta1Deg)
	viper.SetDefault("Theta2Deg", cfg.Theta2Deg)
	viper.SetDefault("NodeBudget", cfg.NodeBudget)

	if err := viper.ReadInConfig(); err != nil {
		log.Print("ReadAppConfig ", err)
	}

	if err := ms.Decode(viper.AllSettings(), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
