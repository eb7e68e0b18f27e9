package systemd

import (
	"fmt"
	"os/exec"
	"strings"
)

const (
	// CPUQuotaProperty 写入slice的属性名，值形如50%，置空表示删除限制
	CPUQuotaProperty = "CPUQuota"
	// CPUQuotaPerSecProperty 查询当前生效配额的属性名，值形如500ms或infinity
	CPUQuotaPerSecProperty = "CPUQuotaPerSecUSec"
)

// Manager 对系统服务管理器的抽象，测试里用假实现拦截真实的系统调用
type Manager interface {
	SetProperty(unit, property, value string) error
	ShowProperty(unit, property string) (string, error)
	SetPropertyCommand(unit, property, value string) string
}

// Systemctl 通过systemctl命令操作systemd
type Systemctl struct {
	Path    string
	Runtime bool
}

// NewSystemctl 定位systemctl可执行文件，依赖缺失时直接报错，整个运行就此中止
func NewSystemctl(path string, runtime bool) (*Systemctl, error) {
	if path == "" {
		path = "systemctl"
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("systemctl not found: %v", err)
	}
	return &Systemctl{Path: resolved, Runtime: runtime}, nil
}

func (s *Systemctl) setPropertyArgs(unit, property, value string) []string {
	args := []string{"set-property"}
	if s.Runtime {
		args = append(args, "--runtime")
	}
	return append(args, unit, property+"="+value)
}

// SetProperty 对指定unit执行set-property，value为空串时systemd会清除该属性
func (s *Systemctl) SetProperty(unit, property, value string) error {
	out, err := exec.Command(s.Path, s.setPropertyArgs(unit, property, value)...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("set property %s on %s err: %s: %w", property, unit, msg, err)
		}
		return fmt.Errorf("set property %s on %s err: %w", property, unit, err)
	}
	return nil
}

// ShowProperty 查询unit上单个属性的当前取值
func (s *Systemctl) ShowProperty(unit, property string) (string, error) {
	out, err := exec.Command(s.Path, "show", "--property="+property, "--value", unit).Output()
	if err != nil {
		return "", fmt.Errorf("show property %s of %s err: %w", property, unit, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// SetPropertyCommand 返回将要执行的完整命令行，dry-run模式只打印这一行
func (s *Systemctl) SetPropertyCommand(unit, property, value string) string {
	return s.Path + " " + strings.Join(s.setPropertyArgs(unit, property, value), " ")
}
