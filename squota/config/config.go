package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"os"
)

// DefaultPath 默认配置文件位置，可用--config或SQUOTA_CONFIG覆盖
const DefaultPath = "/etc/squota/config.yaml"

// Config squota的可选配置，文件不存在时全部取默认值
type Config struct {
	// systemctl可执行文件，默认从PATH里找
	Systemctl string `yaml:"systemctl"`
	// 默认以--runtime方式设置，只对本次开机生效
	Runtime bool `yaml:"runtime"`
	// 默认打开逐用户的进度输出
	Verbose bool `yaml:"verbose"`
}

func Default() Config {
	return Config{Systemctl: "systemctl"}
}

// Load 读取yaml配置，文件不存在不算错误，照常返回默认配置
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s err: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s err: %v", path, err)
	}
	if cfg.Systemctl == "" {
		cfg.Systemctl = "systemctl"
	}
	return cfg, nil
}
