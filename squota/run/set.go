package run

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"sliceQuota/squota/quota"
	"sliceQuota/squota/slice"
	"sliceQuota/squota/systemd"
)

// SetQuota 给每个用户的slice设置CPUQuota，rawQuota为空串时表示删除已有限制
/*
1.先把配额值规范化，补齐%后缀
2.逐个解析用户名，查不到的用户告警后跳过，继续处理剩下的
3.dry-run只打印将要执行的命令，否则真正调用systemctl，一旦失败立即中止，
  前面用户已生效的改动不回滚
*/
func SetQuota(out io.Writer, mgr systemd.Manager, rawQuota string, users []string, dryRun bool) error {
	value := quota.Normalize(rawQuota)
	if value == "" {
		log.Infof("empty quota, removing the CPUQuota limit")
	}

	for _, name := range users {
		u, err := slice.ResolveUser(name)
		if err != nil {
			if slice.IsUnknownUser(err) {
				log.Warnf("user %s not found, skip", name)
				continue
			}
			return fmt.Errorf("resolve user %s err: %v", name, err)
		}

		if dryRun {
			fmt.Fprintln(out, mgr.SetPropertyCommand(u.Name, systemd.CPUQuotaProperty, value))
			continue
		}
		log.Infof("set %s=%s on %s (user %s)", systemd.CPUQuotaProperty, value, u.Name, name)
		if err := mgr.SetProperty(u.Name, systemd.CPUQuotaProperty, value); err != nil {
			return err
		}
	}
	return nil
}
